package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
