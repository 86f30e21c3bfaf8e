package model

// User roles as stored in the role column. The role is recorded at
// registration but does not gate any route.
const (
	RoleAdmin     = "admin"
	RoleDoctor    = "doctor"
	RoleAssistant = "assistant"
)

// User represents a registered account. The plaintext password is never
// stored; only the bcrypt hash is retained and it is excluded from JSON.
type User struct {
	Base
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
	Name         string `json:"name" db:"name"`
	Lastname     string `json:"lastname" db:"lastname"`
	CI           string `json:"ci" db:"ci"`
	Phone        string `json:"phone" db:"phone"`
}

// RegisterForm carries the registration submission. Validation is
// all-or-nothing: any failing field re-renders the form without mutation.
type RegisterForm struct {
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required"`
	PasswordConfirm string `form:"password_confirm" binding:"required,eqfield=Password"`
	Role            string `form:"role" binding:"required"`
	Name            string `form:"name" binding:"required"`
	Lastname        string `form:"lastname" binding:"required"`
	CI              string `form:"ci" binding:"required"`
	Phone           string `form:"phone" binding:"required"`
}

// LoginForm carries the login submission.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// UpdateUserForm carries a full-overwrite profile update. Every field is
// copied onto the stored record. A non-empty password is re-hashed before
// storage; an empty one keeps the current hash.
type UpdateUserForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password"`
	Role     string `form:"role" binding:"required"`
	Name     string `form:"name" binding:"required"`
	Lastname string `form:"lastname" binding:"required"`
	CI       string `form:"ci" binding:"required"`
	Phone    string `form:"phone" binding:"required"`
}
