package model

import (
	"errors"
	"time"
)

// User is created on first successful Google login and refreshed
// (email/name/picture) on every subsequent login. Users are never deleted.
type User struct {
	ID        int64     `db:"id" json:"id"`
	GoogleSub string    `db:"google_sub" json:"-"`
	Email     *string   `db:"email" json:"email"`
	Name      *string   `db:"name" json:"name"`
	Picture   *string   `db:"picture" json:"picture"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserSummary is the author payload embedded in comment nodes.
type UserSummary struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name"`
	Picture *string `json:"picture"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidProfile is returned when the identity provider hands back a
	// profile without a subject ID
	ErrInvalidProfile = errors.New("invalid identity profile")

	// ErrEmailTaken is returned when a login's email already belongs to a
	// different Google subject
	ErrEmailTaken = errors.New("email already in use")
)
