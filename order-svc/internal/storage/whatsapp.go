package storage

import (
	"errors"
	"net/url"
	"strings"

	"luciafood-express/order-svc/internal/service"
)

var (
	ErrBadDestination = errors.New("whatsapp destination must be a phone number")
	ErrEmptyMessage   = errors.New("whatsapp message is empty")
)

// WhatsAppLinker builds wa.me deep links. Opening the link is the client's
// job; this side only guarantees the link is well formed.
type WhatsAppLinker struct {
	BaseURL string
}

func NewWhatsAppLinker() *WhatsAppLinker {
	return &WhatsAppLinker{BaseURL: "https://wa.me"}
}

var _ service.ChatLinker = (*WhatsAppLinker)(nil)

func (l *WhatsAppLinker) ChatLink(destination, message string) (string, error) {
	digits := strings.TrimPrefix(strings.ReplaceAll(destination, " ", ""), "+")
	if len(digits) < 8 || len(digits) > 15 {
		return "", ErrBadDestination
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", ErrBadDestination
		}
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	return l.BaseURL + "/" + digits + "?text=" + url.QueryEscape(message), nil
}
