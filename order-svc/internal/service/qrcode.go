package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(link string) ([]byte, error)
}

// DefaultQRGenerator renders the WhatsApp hand-off link as a PNG so the order
// can be opened from another device.
type DefaultQRGenerator struct{}

func (g DefaultQRGenerator) Generate(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, 256)
}
