package models

// User represents a user in the database. The password hash never
// leaves the process: it is excluded from every JSON representation.
type User struct {
	ID           string `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Name         string `db:"name" json:"name"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// CreateUserRequest defines the structure for a user registration request.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required"`
}
