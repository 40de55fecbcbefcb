// Package common contains shared constants, sentinel errors and small helpers
// used across herbalist components.
package common

// Storage keys of the two persisted blobs. The names are kept stable so that
// data written by earlier builds stays readable.
const (
	UsersKey   = "mock_auth_users_v1"
	SessionKey = "mock_auth_session_v1"
)

// Demo account seeded for local development.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "pass1234"
)
