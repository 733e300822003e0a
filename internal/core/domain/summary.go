package domain

import "github.com/shopspring/decimal"

// ExpenseSummary is the derived per-status aggregate. It is recomputed on
// demand and never persisted.
type ExpenseSummary struct {
	StatusName       string          `json:"statusName"`
	TotalCount       int             `json:"totalCount"`
	TotalAmountMinor int64           `json:"totalAmountMinor"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}
