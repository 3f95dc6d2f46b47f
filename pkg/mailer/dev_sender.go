package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. It saves each message
// as an HTML file plus a JSON metadata file in a directory instead of
// delivering it upstream.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that writes messages to dir.
// The directory is created on first send if it does not exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devMetadata struct {
	Timestamp string   `json:"timestamp"`
	MessageID string   `json:"message_id"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	Cc        []string `json:"cc,omitempty"`
	Bcc       []string `json:"bcc,omitempty"`
	Subject   string   `json:"subject"`
}

// Send writes the message body and metadata to the configured directory and
// returns a generated Message-ID.
func (d *DevSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	msgID := newMessageID("localhost")
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))

	body := msg.HTMLBody
	if body == "" {
		body = msg.TextBody
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("%w: write body: %v", ErrSendFailed, err)
	}

	meta := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		MessageID: msgID,
		From:      msg.From,
		To:        msg.To,
		Cc:        msg.Cc,
		Bcc:       msg.Bcc,
		Subject:   msg.Subject,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal metadata: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write metadata: %v", ErrSendFailed, err)
	}

	return msgID, nil
}

// Verify checks that the target directory is writable.
func (d *DevSender) Verify(ctx context.Context) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject line into a safe lowercase filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
