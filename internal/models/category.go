package models

// ExpenseCategory mirrors the result set of the category read procedures.
type ExpenseCategory struct {
	CategoryID   int
	CategoryName string
	IsActive     bool
}
