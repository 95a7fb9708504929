package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Details       string    `gorm:"type:text"`
	ImageRef      string    `gorm:"type:varchar(64)"`
	OwnerUsername string    `gorm:"type:varchar(255);index;not null"`
	Likes         int       `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
