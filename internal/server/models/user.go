// Package models defines server-side data models persisted in the database.
package models

// User is an identity record. PasswordHash is only populated by lookups that
// need it for credential checks and is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// UserUpdate carries the mutable fields of a user. A nil field is left unchanged.
type UserUpdate struct {
	Username *string
	Email    *string
}
