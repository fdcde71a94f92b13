// Package models defines the persistent records of the Q&A service.
package models

import "time"

// User is an identity record. The password hash is opaque to every layer
// above the repository and is never serialized outward.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
