package models

import "time"

// User represents an account entity used for authentication and resource
// ownership. PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Comparison is case-sensitive
	// as stored.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserView is the public projection of a user returned by the auth endpoints.
type UserView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// View returns the public projection of u.
func (u User) View() UserView {
	return UserView{ID: u.UserID, Email: u.Email, Name: u.Name}
}

// Caller is the authenticated identity attached to a request context after
// a bearer token has been validated.
type Caller struct {
	UserID int64
	Email  string
	// Token is the raw bearer credential the caller authenticated with.
	Token string
}
