package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName       string    `gorm:"type:varchar(255)"`
	LastName        string    `gorm:"type:varchar(255)"`
	PasswordSalt    string    `gorm:"type:varchar(64);not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	ProfileImageRef string    `gorm:"type:varchar(64)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
