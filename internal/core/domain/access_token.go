package domain

import "time"

// AccessToken is the server-side record of an issued login token. The
// abilities column is a snapshot taken at issuance; it is never updated.
// Logout deletes the row, which revokes the token ahead of its expiry.
type AccessToken struct {
	TokenID   string    `json:"token_id"`
	UserID    string    `json:"user_id"`
	Abilities []string  `json:"abilities"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired checks if the token has passed its expiry.
func (t *AccessToken) IsExpired() bool {
	return t.ExpiresAt.Before(time.Now())
}
