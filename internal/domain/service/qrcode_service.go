package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for projects.
type QRCodeService interface {
	// GenerateProjectQR returns a PNG whose payload points at shareURL.
	GenerateProjectQR(projectID uuid.UUID, shareURL string) ([]byte, error)
}
