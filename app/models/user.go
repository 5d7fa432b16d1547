package models

// Role names understood by the permission table.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is an administrator account. Accounts are built in; there is no
// registration flow.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}
