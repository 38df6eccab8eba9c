// Package qr renders QR codes as PNG images.
package qr

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultURL  = "https://forla-research.github.io/"
	DefaultFile = "forla_qr.png"
	DefaultSize = 256
)

// ParseLevel parses an error recovery level name: low, medium, high or highest.
func ParseLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return qrcode.Low, nil
	case "", "medium":
		return qrcode.Medium, nil
	case "high":
		return qrcode.High, nil
	case "highest":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("unknown recovery level %q", s)
}

// Encode writes content to w as a size x size PNG QR code.
func Encode(w io.Writer, content string, size int, level qrcode.RecoveryLevel) error {
	q, err := qrcode.New(content, level)
	if err != nil {
		return err
	}
	return q.Write(size, w)
}

func WriteFile(path, content string, size int, level qrcode.RecoveryLevel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, content, size, level); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
