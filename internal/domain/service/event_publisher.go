package service

import (
	"context"
	"time"
)

// Event types emitted after state changes.
const (
	EventUserRegistered      = "user.registered"
	EventUserPasswordChanged = "user.password_changed"
	EventRecordsWiped        = "records.wiped"
	EventProjectCreated      = "project.created"
	EventProjectLiked        = "project.liked"
)

// MediaEvent is a notification about an account or project change.
type MediaEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	Username   string    `json:"username,omitempty"`
	ProjectID  string    `json:"project_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	Publish(ctx context.Context, event *MediaEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
