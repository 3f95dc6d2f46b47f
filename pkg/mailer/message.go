package mailer

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"mime"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newMessageID returns an RFC 5322 Message-ID value scoped to host.
func newMessageID(host string) string {
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}

func randomBoundary(prefix string) string {
	buf := make([]byte, 12)
	rand.Read(buf)
	return fmt.Sprintf("%s-%x", prefix, buf)
}

// buildMessage assembles the full RFC 5322 wire form of msg, including the
// given Message-ID. Attachments with a ContentID are emitted as inline parts
// related to the HTML body; the rest go into a top-level multipart/mixed.
func buildMessage(msg Message, msgID string) string {
	var b strings.Builder

	from := mail.Address{Name: msg.FromName, Address: msg.From}
	fmt.Fprintf(&b, "From: %s\r\n", from.String())
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if len(msg.Cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(msg.Cc, ", "))
	}
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", msgID)
	b.WriteString("MIME-Version: 1.0\r\n")
	// Sorted so the wire form of a message is stable across sends.
	keys := make([]string, 0, len(msg.Headers))
	for k := range msg.Headers {
		if strings.EqualFold(k, "Content-Type") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\r\n", k, msg.Headers[k])
	}

	var inline, regular []Attachment
	for _, att := range msg.Attachments {
		if att.ContentID != "" {
			inline = append(inline, att)
		} else {
			regular = append(regular, att)
		}
	}

	if len(regular) > 0 {
		mixed := randomBoundary("mixed")
		fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", mixed)
		fmt.Fprintf(&b, "--%s\r\n", mixed)
		writeBody(&b, msg, inline)
		for _, att := range regular {
			writeAttachment(&b, att, mixed, false)
		}
		fmt.Fprintf(&b, "--%s--\r\n", mixed)
		return b.String()
	}

	writeBody(&b, msg, inline)
	return b.String()
}

func writeBody(b *strings.Builder, msg Message, inline []Attachment) {
	hasInline := len(inline) > 0 && msg.HTMLBody != ""

	switch {
	case hasInline && msg.TextBody != "":
		alt := randomBoundary("alt")
		fmt.Fprintf(b, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", alt)
		fmt.Fprintf(b, "--%s\r\n", alt)
		writeTextPart(b, msg.TextBody)
		fmt.Fprintf(b, "--%s\r\n", alt)
		writeRelatedHTML(b, msg.HTMLBody, inline)
		fmt.Fprintf(b, "--%s--\r\n", alt)

	case hasInline:
		writeRelatedHTML(b, msg.HTMLBody, inline)

	case msg.HTMLBody != "" && msg.TextBody != "":
		alt := randomBoundary("alt")
		fmt.Fprintf(b, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", alt)
		fmt.Fprintf(b, "--%s\r\n", alt)
		writeTextPart(b, msg.TextBody)
		fmt.Fprintf(b, "--%s\r\n", alt)
		writeHTMLPart(b, msg.HTMLBody)
		fmt.Fprintf(b, "--%s--\r\n", alt)

	case msg.HTMLBody != "":
		writeHTMLPart(b, msg.HTMLBody)

	default:
		writeTextPart(b, msg.TextBody)
	}
}

func writeRelatedHTML(b *strings.Builder, html string, inline []Attachment) {
	rel := randomBoundary("rel")
	fmt.Fprintf(b, "Content-Type: multipart/related; boundary=%s\r\n\r\n", rel)
	fmt.Fprintf(b, "--%s\r\n", rel)
	writeHTMLPart(b, html)
	for _, att := range inline {
		writeAttachment(b, att, rel, true)
	}
	fmt.Fprintf(b, "--%s--\r\n", rel)
}

func writeTextPart(b *strings.Builder, body string) {
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n\r\n")
}

func writeHTMLPart(b *strings.Builder, body string) {
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n\r\n")
}

func writeAttachment(b *strings.Builder, att Attachment, boundary string, inline bool) {
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fmt.Fprintf(b, "--%s\r\n", boundary)
	fmt.Fprintf(b, "Content-Type: %s; name=%q\r\n", contentType, att.Filename)
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	if inline {
		fmt.Fprintf(b, "Content-ID: <%s>\r\n", att.ContentID)
		fmt.Fprintf(b, "Content-Disposition: inline; filename=%q\r\n\r\n", att.Filename)
	} else {
		fmt.Fprintf(b, "Content-Disposition: attachment; filename=%q\r\n\r\n", att.Filename)
	}

	encoded := base64.StdEncoding.EncodeToString(att.Content)
	// RFC 2045 limits encoded lines to 76 characters.
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")
}
