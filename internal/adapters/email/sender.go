// Package email delivers contact-form messages to the restaurant's inbox
// via an external provider.
package email

import (
	"context"
	"time"
)

// SendRequest contains the data needed to send one email.
type SendRequest struct {
	To      []string // recipient addresses
	From    string   // sender address (e.g. "Taps & Takeout <noreply@tapsandtakeout.com>")
	Subject string
	HTML    string // HTML body
	ReplyTo string // reply-to address (the visitor's, for contact messages)
}

// SendResult contains the response from the provider.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender is the interface for sending email via an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
