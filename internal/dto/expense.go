package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for creating a claim. Callers supply
// either the authoritative minor-unit amount or a decimal amount; the
// decimal form is converted at the boundary and never stored as-is.
type CreateExpenseRequest struct {
	UserID      int              `json:"userId" binding:"required"`
	CategoryID  int              `json:"categoryId" binding:"required"`
	AmountMinor int64            `json:"amountMinor"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    string           `json:"currency"`
	ExpenseDate time.Time        `json:"expenseDate" binding:"required"`
	Description *string          `json:"description"`
	ReceiptFile *string          `json:"receiptFile"`
}

// UpdateExpenseRequest is the replacement payload for a Draft claim.
type UpdateExpenseRequest struct {
	CategoryID  int              `json:"categoryId" binding:"required"`
	AmountMinor int64            `json:"amountMinor"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    string           `json:"currency"`
	ExpenseDate time.Time        `json:"expenseDate" binding:"required"`
	Description *string          `json:"description"`
	ReceiptFile *string          `json:"receiptFile"`
}

// ReviewRequest identifies the reviewer approving or rejecting a claim.
type ReviewRequest struct {
	ReviewedBy int `json:"reviewedBy" binding:"required"`
}

// ListExpensesParams are the query parameters for a claim listing.
type ListExpensesParams struct {
	UserID   *int `form:"userId"`
	StatusID *int `form:"statusId"`
	Page     int  `form:"page,default=1"`
	PageSize int  `form:"pageSize,default=50"`
}
