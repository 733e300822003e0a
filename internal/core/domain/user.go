package domain

import "time"

// User represents an employee who can raise expense claims. ManagerID is a
// self-referential reference to the user's approver and may be absent.
type User struct {
	UserID      int       `json:"userId"`
	UserName    string    `json:"userName"`
	Email       string    `json:"email"`
	RoleID      int       `json:"roleId"`
	RoleName    string    `json:"roleName"`
	ManagerID   *int      `json:"managerId,omitempty"`
	ManagerName *string   `json:"managerName,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser carries the fields needed to create a user.
type NewUser struct {
	UserName  string
	Email     string
	RoleID    int
	ManagerID *int
}

// UserUpdate carries the full replacement state for an existing user.
type UserUpdate struct {
	UserName  string
	Email     string
	RoleID    int
	ManagerID *int
	IsActive  bool
}
