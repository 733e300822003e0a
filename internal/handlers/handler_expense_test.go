package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimstack/expense_claims_app/internal/apperrors"
	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/core/services"
	"github.com/claimstack/expense_claims_app/internal/handlers"
)

// stubExpenseRepo backs the real service with canned gateway verdicts.
type stubExpenseRepo struct {
	listResult    portsrepo.ReadResult[[]domain.Expense]
	findResult    portsrepo.ReadResult[*domain.Expense]
	createID      int
	createErr     error
	transitionN   int64
	transitionErr error
}

func (s *stubExpenseRepo) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) portsrepo.ReadResult[[]domain.Expense] {
	return s.listResult
}

func (s *stubExpenseRepo) FindExpenseByID(ctx context.Context, expenseID int) portsrepo.ReadResult[*domain.Expense] {
	return s.findResult
}

func (s *stubExpenseRepo) CreateExpense(ctx context.Context, expense domain.NewExpense) (int, error) {
	return s.createID, s.createErr
}

func (s *stubExpenseRepo) UpdateExpense(ctx context.Context, expenseID int, expense domain.ExpenseUpdate) (int64, error) {
	return s.transitionN, s.transitionErr
}

func (s *stubExpenseRepo) DeleteExpense(ctx context.Context, expenseID int) (int64, error) {
	return s.transitionN, s.transitionErr
}

func (s *stubExpenseRepo) SubmitExpense(ctx context.Context, expenseID int) (int64, error) {
	return s.transitionN, s.transitionErr
}

func (s *stubExpenseRepo) ApproveExpense(ctx context.Context, expenseID int, reviewedBy int) (int64, error) {
	return s.transitionN, s.transitionErr
}

func (s *stubExpenseRepo) RejectExpense(ctx context.Context, expenseID int, reviewedBy int) (int64, error) {
	return s.transitionN, s.transitionErr
}

func (s *stubExpenseRepo) ListStatuses(ctx context.Context) portsrepo.ReadResult[[]domain.ExpenseStatus] {
	return portsrepo.Live(domain.AllStatuses())
}

func (s *stubExpenseRepo) Summarize(ctx context.Context) portsrepo.ReadResult[[]domain.ExpenseSummary] {
	return portsrepo.Live([]domain.ExpenseSummary{})
}

func newExpenseRouter(repo *stubExpenseRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rg := r.Group("/api/v1")
	handlers.RegisterExpenseRoutes(rg, services.NewExpenseService(repo))
	return r
}

func TestCreateExpenseReturnsCreated(t *testing.T) {
	r := newExpenseRouter(&stubExpenseRepo{createID: 12})

	body := `{"userId":1,"categoryId":2,"amountMinor":2540,"expenseDate":"2026-01-15T00:00:00Z"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp["expenseId"])
}

func TestCreateExpenseRejectsNonPositiveAmount(t *testing.T) {
	r := newExpenseRouter(&stubExpenseRepo{})

	body := `{"userId":1,"categoryId":2,"amountMinor":0,"expenseDate":"2026-01-15T00:00:00Z"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "amount")
}

func TestApproveExpenseZeroVerdictIsNotFound(t *testing.T) {
	r := newExpenseRouter(&stubExpenseRepo{transitionN: 0})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses/3/approve", bytes.NewBufferString(`{"reviewedBy":2}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Submitted")
}

func TestSubmitExpenseNoContentOnSuccess(t *testing.T) {
	r := newExpenseRouter(&stubExpenseRepo{transitionN: 1})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses/3/submit", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestExpensePathIDMustBeNumeric(t *testing.T) {
	r := newExpenseRouter(&stubExpenseRepo{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/expenses/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetExpenseNotFoundWhenAbsent(t *testing.T) {
	r := newExpenseRouter(&stubExpenseRepo{findResult: portsrepo.Live[*domain.Expense](nil)})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/expenses/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListExpensesDegradedCarriesSourceAndDiagnostic(t *testing.T) {
	diag := apperrors.Diagnostic{Kind: apperrors.FaultIdentity, Op: "GetExpenses", Message: "auth hint"}
	r := newExpenseRouter(&stubExpenseRepo{
		listResult: portsrepo.Fallback([]domain.Expense{{ExpenseID: 1}}, &diag),
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Source     string                `json:"source"`
		Diagnostic *apperrors.Diagnostic `json:"diagnostic"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "fallback", envelope.Source)
	require.NotNil(t, envelope.Diagnostic)
	assert.Equal(t, apperrors.FaultIdentity, envelope.Diagnostic.Kind)
}

// --- Diagnostics endpoint ---

type stubLastError struct {
	diag *apperrors.Diagnostic
}

func (s *stubLastError) LastError() *apperrors.Diagnostic { return s.diag }

func TestDiagnosticsLastErrorEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterDiagnosticsRoutes(r.Group("/api/v1"), &stubLastError{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/diagnostics/last-error", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"lastError":null}`, w.Body.String())
}

func TestDiagnosticsLastErrorPresent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	diag := &apperrors.Diagnostic{Kind: apperrors.FaultGeneric, Op: "GetUsers", Message: "boom"}
	handlers.RegisterDiagnosticsRoutes(r.Group("/api/v1"), &stubLastError{diag: diag})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/diagnostics/last-error", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		LastError *apperrors.Diagnostic `json:"lastError"`
		Message   string                `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LastError)
	assert.Equal(t, "GetUsers", resp.LastError.Op)
	assert.Equal(t, "[GetUsers] boom", resp.Message)
}
