package models

import "time"

// UserRoleDefault is the role assigned to every account created through
// the public signup endpoint.
const UserRoleDefault = "user"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, generated at signup.
	ID string `json:"id"`

	// Email is the unique login key. It is normalised to lowercase before
	// it is persisted, so lookups are effectively case-insensitive.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and it is never
	// serialised to JSON.
	PasswordHash string `json:"-"`

	// FirstName is an optional display string.
	FirstName string `json:"firstName"`

	// LastName is an optional display string.
	LastName string `json:"lastName"`

	// Role is an enum-like string; defaults to "user".
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the public projection of a User returned by the auth endpoints.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// ProfileOf builds the public projection of u.
func ProfileOf(u User) Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
