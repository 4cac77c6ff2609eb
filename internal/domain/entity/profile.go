package entity

import "time"

// Profile is a named diary owner. Every profile is gated by its own
// password; PasswordHash holds the bcrypt verifier, never the plaintext.
//
// Names are unique and case-sensitive.
type Profile struct {
	ID           string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
