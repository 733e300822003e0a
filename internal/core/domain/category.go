package domain

// ExpenseCategory classifies a claim. Categories are deactivated rather than
// deleted so historic claims keep a valid reference.
type ExpenseCategory struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	IsActive     bool   `json:"isActive"`
}

// NewCategory carries the fields needed to create a category.
type NewCategory struct {
	CategoryName string
}

// CategoryUpdate carries the replacement state for an existing category.
type CategoryUpdate struct {
	CategoryName string
	IsActive     bool
}
