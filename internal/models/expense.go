package models

import "time"

// Expense mirrors the result set of the expense read procedures. The
// decimal display amount is not carried here; it is derived from
// AmountMinor when mapping to the domain.
type Expense struct {
	ExpenseID    int
	UserID       int
	UserName     string
	CategoryID   int
	CategoryName string
	StatusID     int
	StatusName   string
	AmountMinor  int64
	Currency     string
	ExpenseDate  time.Time
	Description  *string
	ReceiptFile  *string
	SubmittedAt  *time.Time
	ReviewedBy   *int
	ReviewerName *string
	ReviewedAt   *time.Time
	CreatedAt    time.Time
}

// ExpenseStatus mirrors the result set of the status read procedure.
type ExpenseStatus struct {
	StatusID   int
	StatusName string
}

// ExpenseSummary mirrors the result set of the summary procedure.
type ExpenseSummary struct {
	StatusName       string
	TotalCount       int
	TotalAmountMinor int64
}
