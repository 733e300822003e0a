package models

// Role mirrors the result set of the role read procedures.
type Role struct {
	RoleID      int
	RoleName    string
	Description string
}
