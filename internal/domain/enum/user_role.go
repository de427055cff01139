package enum

// UserRole represents a user's role in the system
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCashier UserRole = "cashier"
)

// Valid reports whether the value is one of the known roles
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleCashier:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}
