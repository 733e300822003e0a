package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single claim moving through the approval workflow.
// AmountMinor (pence for GBP) is the authoritative amount; AmountDecimal is
// the derived display value. The review fields are populated only in step
// with the status: a Draft claim has none of them, a Submitted claim has
// SubmittedAt only, and a reviewed claim has all of them.
type Expense struct {
	ExpenseID     int             `json:"expenseId"`
	UserID        int             `json:"userId"`
	UserName      string          `json:"userName"`
	CategoryID    int             `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	StatusID      int             `json:"statusId"`
	StatusName    string          `json:"statusName"`
	AmountMinor   int64           `json:"amountMinor"`
	AmountDecimal decimal.Decimal `json:"amountDecimal"`
	Currency      string          `json:"currency"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Description   *string         `json:"description,omitempty"`
	ReceiptFile   *string         `json:"receiptFile,omitempty"`
	SubmittedAt   *time.Time      `json:"submittedAt,omitempty"`
	ReviewedBy    *int            `json:"reviewedBy,omitempty"`
	ReviewerName  *string         `json:"reviewerName,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewExpense carries the fields needed to create a claim. New claims always
// start in Draft.
type NewExpense struct {
	UserID      int
	CategoryID  int
	AmountMinor int64
	Currency    string
	ExpenseDate time.Time
	Description *string
	ReceiptFile *string
}

// ExpenseUpdate carries the replacement claim details. Only Draft claims may
// be updated; the status itself is never touched by an update.
type ExpenseUpdate struct {
	CategoryID  int
	AmountMinor int64
	Currency    string
	ExpenseDate time.Time
	Description *string
	ReceiptFile *string
}

// ExpenseFilter narrows a claim listing. Nil filters match everything.
type ExpenseFilter struct {
	UserID   *int
	StatusID *int
	Page     int
	PageSize int
}
