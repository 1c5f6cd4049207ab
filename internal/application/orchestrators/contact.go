package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"unicode/utf8"

	"tapsandtakeout/internal/adapters/email"
	"tapsandtakeout/internal/domain/sanitize"
)

// Contact form limits.
const (
	MaxContactNameLength    = 80
	MaxContactEmailLength   = 254
	MaxContactMessageLength = 2000
)

// ContactMessage is a cleaned contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// ParseContactForm sanitizes and validates raw contact form fields. The
// map is keyed "name" / "email" / "message"; empty means valid.
// PRE: inputs are the already-decoded form values, untrusted
// POST: no side effects
func ParseContactForm(name, emailAddr, message string) (ContactMessage, map[string]string) {
	m := ContactMessage{
		Name:    sanitize.Text(name, false),
		Email:   sanitize.Text(emailAddr, false),
		Message: sanitize.Text(message, true),
	}
	errs := make(map[string]string)

	if m.Name == "" {
		errs["name"] = "Name is required."
	} else if utf8.RuneCountInString(m.Name) > MaxContactNameLength {
		errs["name"] = fmt.Sprintf("Name must be %d characters or fewer.", MaxContactNameLength)
	}

	if m.Email == "" || !strings.Contains(m.Email, "@") || utf8.RuneCountInString(m.Email) > MaxContactEmailLength {
		errs["email"] = "Enter a valid email address."
	}

	if m.Message == "" {
		errs["message"] = "Message is required."
	} else if utf8.RuneCountInString(m.Message) > MaxContactMessageLength {
		errs["message"] = fmt.Sprintf("Message must be %d characters or fewer.", MaxContactMessageLength)
	}

	return m, errs
}

// ContactDeps holds dependencies for SendContact.
type ContactDeps struct {
	Sender email.Sender
	To     string // the restaurant's inbox
	From   string // verified sender address
}

// ExecuteSendContact delivers a contact-form message to the restaurant's
// inbox, with the visitor's address as reply-to.
// PRE: m passed ParseContactForm
// POST: one email is queued via the configured sender
func ExecuteSendContact(ctx context.Context, m ContactMessage, deps ContactDeps) error {
	body := fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
		html.EscapeString(m.Name),
		html.EscapeString(m.Email),
		strings.ReplaceAll(html.EscapeString(m.Message), "\n", "<br>"))

	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.To},
		From:    deps.From,
		Subject: fmt.Sprintf("Website contact from %s", m.Name),
		HTML:    body,
		ReplyTo: m.Email,
	})
	if err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}

	slog.Info("admin_event", "event", "contact_message_sent", "from", m.Email)
	return nil
}
