package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a piece of user-submitted work with an image and a like counter.
type Project struct {
	ID            uuid.UUID
	Title         string
	Details       string
	ImageRef      string // Blob id inside the project image bucket.
	OwnerUsername string
	Likes         int
	CreatedAt     time.Time
}
