// Package qr renders the pairing URL as a QR code.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// PNG encodes payload as a QR code PNG of the given edge size in pixels.
func PNG(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}

// Terminal renders payload as a half-block QR code suitable for a monospace
// terminal, the form shown on the TV screen.
func Terminal(payload string) (string, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return q.ToSmallString(false), nil
}
