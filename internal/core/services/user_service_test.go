package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/claimstack/expense_claims_app/internal/apperrors"
	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/core/services"
	"github.com/claimstack/expense_claims_app/internal/dto"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(ctx context.Context, activeOnly bool) portsrepo.ReadResult[[]domain.User] {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).(portsrepo.ReadResult[[]domain.User])
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int) portsrepo.ReadResult[*domain.User] {
	args := m.Called(ctx, userID)
	return args.Get(0).(portsrepo.ReadResult[*domain.User])
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.NewUser) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userID int, user domain.UserUpdate) (int64, error) {
	args := m.Called(ctx, userID, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_TrimsFields() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		UserName: "  Alice Example  ",
		Email:    " alice@example.co.uk ",
		RoleID:   1,
	}

	suite.mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(u domain.NewUser) bool {
		return u.UserName == "Alice Example" && u.Email == "alice@example.co.uk" && u.RoleID == 1
	})).Return(3, nil).Once()

	id, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(3, id)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_RejectsBlankName() {
	ctx := context.Background()
	req := dto.CreateUserRequest{UserName: "   ", Email: "a@b.co", RoleID: 1}

	_, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_RejectsMissingRole() {
	ctx := context.Background()
	req := dto.CreateUserRequest{UserName: "Alice", Email: "a@b.co"}

	_, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestUpdateUser_ZeroRowsIsNotFound() {
	ctx := context.Background()
	req := dto.UpdateUserRequest{UserName: "Alice", Email: "a@b.co", RoleID: 1, IsActive: true}

	suite.mockRepo.On("UpdateUser", ctx, 9, mock.AnythingOfType("domain.UserUpdate")).
		Return(int64(0), nil).Once()

	err := suite.service.UpdateUser(ctx, 9, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteUser", ctx, 2).Return(int64(1), nil).Once()

	suite.Require().NoError(suite.service.DeleteUser(ctx, 2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteUser", ctx, 2).Return(int64(0), assert.AnError).Once()

	err := suite.service.DeleteUser(ctx, 2)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *UserServiceTestSuite) TestListUsers_PassesThroughResult() {
	ctx := context.Background()
	expected := portsrepo.Live([]domain.User{{UserID: 1, UserName: "Alice"}})

	suite.mockRepo.On("ListUsers", ctx, true).Return(expected).Once()

	res := suite.service.ListUsers(ctx, true)

	suite.Equal(expected, res)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
