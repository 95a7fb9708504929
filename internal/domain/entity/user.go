// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and own projects.
// Username is the natural key and is matched case-sensitively.
type User struct {
	ID              uuid.UUID // Surrogate key.
	Username        string    // Unique login name.
	FirstName       string
	LastName        string
	PasswordSalt    string    // Hex-encoded random salt, replaced on every password change.
	PasswordHash    string    // Hex-encoded derived key; plaintext is never stored.
	ProfileImageRef string    // Blob id inside the profile image bucket.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AuthToken is the session credential issued to a user at registration.
// There is at most one per username and it is never rotated.
type AuthToken struct {
	ID        uuid.UUID
	Username  string
	Token     string
	CreatedAt time.Time
}
