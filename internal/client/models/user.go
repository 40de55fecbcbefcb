// Package models holds the data types shared by the herbalist client core.
package models

// UserRecord is a stored credential. Password is kept as given: the
// credential store is a local development mock.
type UserRecord struct {
	ID       string `json:"id" validate:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Users maps a lowercased email to its record.
type Users map[string]UserRecord
