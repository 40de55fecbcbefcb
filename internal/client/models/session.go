package models

// AuthUser is the signed-in identity. Anonymous users carry no email; a
// registered one carries whatever email it signed up with, "" included.
type AuthUser struct {
	ID          string `json:"id" validate:"required"`
	Email       string `json:"email,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
	Token       string `json:"token" validate:"required"`
}

// Session is the single per-device authentication state.
type Session struct {
	User *AuthUser `json:"user"`
}

// SignedIn reports whether s holds a user.
func (s Session) SignedIn() bool {
	return s.User != nil
}
