package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// Sender delivers transactional email messages.
type Sender interface {
	// Send delivers msg and returns the Message-ID assigned to it.
	Send(ctx context.Context, msg Message) (string, error)
	// Verify checks connectivity to the upstream without sending anything.
	Verify(ctx context.Context) error
}

// Attachment is a file carried by a message. Content is the raw bytes;
// encoding happens during message assembly.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
	// ContentID marks the attachment as inline, referenced from the HTML
	// body via cid. Empty means a regular attachment.
	ContentID string
}

// Message is a single outbound email.
type Message struct {
	From        string
	FromName    string
	To          []string
	Cc          []string
	Bcc         []string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	TextBody    string
	Headers     map[string]string
	Attachments []Attachment
}

// Validate reports whether the message is deliverable. All failures are
// wrapped with ErrInvalidMessage.
func (m Message) Validate() error {
	if m.From == "" {
		return fmt.Errorf("%w: from address is required", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddress(m.From); err != nil {
		return fmt.Errorf("%w: from address %q: %v", ErrInvalidMessage, m.From, err)
	}
	if len(m.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidMessage)
	}
	for _, set := range [][]string{m.To, m.Cc, m.Bcc} {
		for _, addr := range set {
			if _, err := mail.ParseAddress(addr); err != nil {
				return fmt.Errorf("%w: recipient %q: %v", ErrInvalidMessage, addr, err)
			}
		}
	}
	if m.ReplyTo != "" {
		if _, err := mail.ParseAddress(m.ReplyTo); err != nil {
			return fmt.Errorf("%w: reply-to %q: %v", ErrInvalidMessage, m.ReplyTo, err)
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if m.HTMLBody == "" && m.TextBody == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidMessage)
	}
	return nil
}

// Recipients returns the deduplicated envelope recipient list across
// To, Cc, and Bcc, lowercased for comparison.
func (m Message) Recipients() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range [][]string{m.To, m.Cc, m.Bcc} {
		for _, addr := range set {
			addr = strings.ToLower(strings.TrimSpace(addr))
			if addr == "" {
				continue
			}
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}
			out = append(out, addr)
		}
	}
	return out
}
