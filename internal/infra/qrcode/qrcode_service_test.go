package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"soundflow/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel)
			require.NotNil(t, svc)

			qrBytes, err := svc.GenerateProjectQR(uuid.New(), "https://soundflow.test/project/1")
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(qrBytes, pngMagic))
		})
	}
}

func TestQRCodeService_GenerateProjectQR_Size(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GenerateProjectQR(uuid.New(), "https://soundflow.test/project/x")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestNew_FallsBackToDefaults(t *testing.T) {
	svc := New(&config.Config{})

	qrBytes, err := svc.GenerateProjectQR(uuid.New(), "")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}
