package dto

// CreateCategoryRequest is the payload for creating an expense category.
type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required"`
}

// UpdateCategoryRequest is the replacement payload for a category.
type UpdateCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required"`
	IsActive     bool   `json:"isActive"`
}

// ListCategoriesParams are the query parameters for a category listing.
type ListCategoriesParams struct {
	ActiveOnly bool `form:"activeOnly,default=true"`
}
