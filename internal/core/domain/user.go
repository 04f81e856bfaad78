package domain

import "time"

// User models a registered account. PasswordHash is never serialized and is
// stripped from every outward projection.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns a copy safe to hand to callers: identical to the user but
// with the credential digest cleared.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// Identity is the authenticated caller derived from a verified token. It is
// threaded explicitly into every protected operation; there is no ambient
// request-scoped identity state.
type Identity struct {
	UserID int64
	Email  string
}
