// Package fallback holds the static snapshot served to read operations when
// the live store is unreachable. The records are representative samples
// only: they are never written back, and their ids carry no identity
// continuity with the live store.
package fallback

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
)

// Snapshot is an immutable set of sample records for every entity. All
// accessors return fresh copies so callers can never mutate the snapshot.
type Snapshot struct {
	roles      []domain.Role
	users      []domain.User
	categories []domain.ExpenseCategory
	statuses   []domain.ExpenseStatus
	expenses   []domain.Expense
	summary    []domain.ExpenseSummary
}

// New builds the snapshot. Timestamps are anchored to now so the sample
// claims always look recent; the records respect the workflow invariants
// (the Draft claim has no submission or review fields, the Submitted claim
// has a submission timestamp only).
func New(now time.Time) *Snapshot {
	now = now.UTC()
	days := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	reviewedBy := 2
	reviewerName := "Bob Manager"
	managerID := 2
	managerName := "Bob Manager"
	taxi := "Taxi from airport to client site"
	lunch := "Client lunch meeting"
	stationery := "Office stationery"
	submitted1 := days(9)
	submitted2 := days(44)
	reviewed2 := days(43)

	return &Snapshot{
		roles: []domain.Role{
			{RoleID: 1, RoleName: "Employee", Description: "Regular employee who can submit expenses"},
			{RoleID: 2, RoleName: "Manager", Description: "Can approve/reject submitted expenses"},
		},
		users: []domain.User{
			{UserID: 1, UserName: "Alice Example", Email: "alice@example.co.uk", RoleID: 1, RoleName: "Employee", ManagerID: &managerID, ManagerName: &managerName, IsActive: true, CreatedAt: days(30)},
			{UserID: 2, UserName: "Bob Manager", Email: "bob.manager@example.co.uk", RoleID: 2, RoleName: "Manager", IsActive: true, CreatedAt: days(60)},
		},
		categories: []domain.ExpenseCategory{
			{CategoryID: 1, CategoryName: "Travel", IsActive: true},
			{CategoryID: 2, CategoryName: "Meals", IsActive: true},
			{CategoryID: 3, CategoryName: "Supplies", IsActive: true},
			{CategoryID: 4, CategoryName: "Accommodation", IsActive: true},
			{CategoryID: 5, CategoryName: "Other", IsActive: true},
		},
		statuses: domain.AllStatuses(),
		expenses: []domain.Expense{
			{
				ExpenseID: 1, UserID: 1, UserName: "Alice Example",
				CategoryID: 1, CategoryName: "Travel",
				StatusID: domain.StatusSubmitted, StatusName: "Submitted",
				AmountMinor: 2540, AmountDecimal: decimal.New(2540, -2), Currency: "GBP",
				ExpenseDate: days(10), Description: &taxi,
				SubmittedAt: &submitted1, CreatedAt: days(10),
			},
			{
				ExpenseID: 2, UserID: 1, UserName: "Alice Example",
				CategoryID: 2, CategoryName: "Meals",
				StatusID: domain.StatusApproved, StatusName: "Approved",
				AmountMinor: 1425, AmountDecimal: decimal.New(1425, -2), Currency: "GBP",
				ExpenseDate: days(45), Description: &lunch,
				SubmittedAt: &submitted2, ReviewedBy: &reviewedBy, ReviewerName: &reviewerName, ReviewedAt: &reviewed2,
				CreatedAt: days(45),
			},
			{
				ExpenseID: 3, UserID: 1, UserName: "Alice Example",
				CategoryID: 3, CategoryName: "Supplies",
				StatusID: domain.StatusDraft, StatusName: "Draft",
				AmountMinor: 799, AmountDecimal: decimal.New(799, -2), Currency: "GBP",
				ExpenseDate: days(2), Description: &stationery,
				CreatedAt: days(2),
			},
		},
		summary: []domain.ExpenseSummary{
			{StatusName: "Draft", TotalCount: 1, TotalAmountMinor: 799, TotalAmount: decimal.New(799, -2)},
			{StatusName: "Submitted", TotalCount: 1, TotalAmountMinor: 2540, TotalAmount: decimal.New(2540, -2)},
			{StatusName: "Approved", TotalCount: 1, TotalAmountMinor: 1425, TotalAmount: decimal.New(1425, -2)},
			{StatusName: "Rejected", TotalCount: 0, TotalAmountMinor: 0, TotalAmount: decimal.Zero},
		},
	}
}

func (s *Snapshot) Roles() []domain.Role {
	return append([]domain.Role(nil), s.roles...)
}

func (s *Snapshot) RoleByID(roleID int) *domain.Role {
	for _, r := range s.roles {
		if r.RoleID == roleID {
			role := r
			return &role
		}
	}
	return nil
}

func (s *Snapshot) Users() []domain.User {
	return append([]domain.User(nil), s.users...)
}

func (s *Snapshot) UserByID(userID int) *domain.User {
	for _, u := range s.users {
		if u.UserID == userID {
			user := u
			return &user
		}
	}
	return nil
}

func (s *Snapshot) Categories() []domain.ExpenseCategory {
	return append([]domain.ExpenseCategory(nil), s.categories...)
}

func (s *Snapshot) CategoryByID(categoryID int) *domain.ExpenseCategory {
	for _, c := range s.categories {
		if c.CategoryID == categoryID {
			cat := c
			return &cat
		}
	}
	return nil
}

func (s *Snapshot) Statuses() []domain.ExpenseStatus {
	return append([]domain.ExpenseStatus(nil), s.statuses...)
}

func (s *Snapshot) Expenses() []domain.Expense {
	return append([]domain.Expense(nil), s.expenses...)
}

func (s *Snapshot) ExpenseByID(expenseID int) *domain.Expense {
	for _, e := range s.expenses {
		if e.ExpenseID == expenseID {
			exp := e
			return &exp
		}
	}
	return nil
}

func (s *Snapshot) Summary() []domain.ExpenseSummary {
	return append([]domain.ExpenseSummary(nil), s.summary...)
}
