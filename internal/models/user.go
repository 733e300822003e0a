package models

import "time"

// User mirrors the result set of the user read procedures, including the
// role and manager display names the procedures join in.
type User struct {
	UserID      int
	UserName    string
	Email       string
	RoleID      int
	RoleName    string
	ManagerID   *int
	ManagerName *string
	IsActive    bool
	CreatedAt   time.Time
}
