package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthTokenModel mirrors the 'auth_tokens' table. The unique username keeps one token per account.
type AuthTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Token     string    `gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}
