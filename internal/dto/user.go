package dto

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	UserName  string `json:"userName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	RoleID    int    `json:"roleId" binding:"required"`
	ManagerID *int   `json:"managerId"`
}

// UpdateUserRequest is the full replacement payload for an existing user.
type UpdateUserRequest struct {
	UserName  string `json:"userName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	RoleID    int    `json:"roleId" binding:"required"`
	ManagerID *int   `json:"managerId"`
	IsActive  bool   `json:"isActive"`
}

// ListUsersParams are the query parameters for a user listing.
type ListUsersParams struct {
	ActiveOnly bool `form:"activeOnly,default=true"`
}
