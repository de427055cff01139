package request

// CreateUserRequest creates a staff account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin cashier"`
}

// UpdateUserRequest updates a staff account. Absent fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=2,max=255"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=admin cashier"`
	IsActive *bool   `json:"is_active,omitempty"`
}
