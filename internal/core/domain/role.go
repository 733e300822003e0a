package domain

// Role is one of the fixed approval roles (Employee, Manager).
type Role struct {
	RoleID      int    `json:"roleId"`
	RoleName    string `json:"roleName"`
	Description string `json:"description"`
}
