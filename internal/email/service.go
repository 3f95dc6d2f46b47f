package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/huyche/email-service/internal/email/templates"
	"github.com/huyche/email-service/pkg/logger"
	"github.com/huyche/email-service/pkg/mailer"
)

// DefaultSender is the registry name used when a request names no identity.
const DefaultSender = "default"

// Service orchestrates email dispatch. It holds no locks; all
// synchronization lives inside the senders.
type Service struct {
	senders *mailer.Registry
	cfg     Config
	log     *slog.Logger
}

// NewService wires the dispatch service to a sender registry.
func NewService(senders *mailer.Registry, cfg Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{senders: senders, cfg: cfg, log: log}
}

// Send delivers one message. Transport failures are reported in the Result,
// never as an error.
func (s *Service) Send(ctx context.Context, req SendRequest) Result {
	msg, err := s.buildMessage(req)
	if err != nil {
		return failResult(err)
	}
	return s.deliver(ctx, req.Sender, msg)
}

// SendBulk processes recipients one at a time, in order. A failed recipient
// does not stop the rest of the batch.
func (s *Service) SendBulk(ctx context.Context, req BulkRequest) BulkResult {
	out := BulkResult{Results: make([]Result, 0, len(req.To))}
	for _, recipient := range req.To {
		result := s.Send(ctx, SendRequest{
			Sender:      req.Sender,
			To:          recipient,
			Subject:     req.Subject,
			Text:        req.Text,
			HTML:        req.HTML,
			Attachments: req.Attachments,
		})
		if result.Success {
			out.Sent++
		} else {
			out.Failed++
		}
		out.Results = append(out.Results, result)
	}
	out.Success = out.Failed == 0

	s.log.InfoContext(ctx, "bulk send processed",
		slog.Int("sent", out.Sent),
		slog.Int("failed", out.Failed))
	return out
}

// SendTemplate renders the named generic template and delivers the result.
// An unknown template name returns templates.ErrTemplateNotFound before any
// network activity; transport failures after rendering are soft like Send.
func (s *Service) SendTemplate(ctx context.Context, req TemplateRequest) (Result, error) {
	subject, body, err := templates.Render(req.Template, req.Variables)
	if err != nil {
		return Result{}, err
	}
	if req.Subject != "" {
		subject = req.Subject
	}

	return s.Send(ctx, SendRequest{
		Sender:  req.Sender,
		To:      req.To,
		Cc:      req.Cc,
		Bcc:     req.Bcc,
		Subject: subject,
		HTML:    body,
	}), nil
}

// SendPortfolioResponse sends the acknowledgement to the requester and the
// operator notification concurrently. Both legs must succeed; the returned
// MessageID is the acknowledgement's. Any leg failure surfaces as an error
// wrapping the transport failure, with no partial result exposed.
func (s *Service) SendPortfolioResponse(ctx context.Context, req PortfolioRequest) (Result, error) {
	sender, err := s.senders.Get(DefaultSender)
	if err != nil {
		return Result{}, err
	}

	ack := mailer.Message{
		To:      []string{req.Email},
		Subject: templates.PortfolioResponseSubject(),
		HTMLBody: templates.RenderPortfolioResponse(templates.PortfolioResponseData{
			Name:    req.Name,
			MyPhone: s.cfg.OperatorPhone,
			MyEmail: s.cfg.OperatorEmail,
		}),
	}
	notify := mailer.Message{
		To:       []string{s.cfg.OperatorEmail},
		Subject:  fmt.Sprintf("Portfolio Contact: %s", req.Name),
		HTMLBody: operatorNotificationBody(req),
	}

	var ackID string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		id, err := sender.Send(gctx, ack)
		ackID = id
		return err
	})
	g.Go(func() error {
		_, err := sender.Send(gctx, notify)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "portfolio email delivery failed", logger.Error(err))
		return Result{}, fmt.Errorf("portfolio email delivery failed: %w", err)
	}

	s.log.InfoContext(ctx, "portfolio emails sent",
		slog.String("requester", req.Email),
		slog.String("message_id", ackID))
	return Result{
		Success:   true,
		MessageID: ackID,
		Message:   "Portfolio response and notification emails sent successfully",
	}, nil
}

// SendWelcome delivers the fixed welcome notification. Transport failures
// surface as errors.
func (s *Service) SendWelcome(ctx context.Context, req WelcomeRequest) (Result, error) {
	sender, err := s.senders.Get(DefaultSender)
	if err != nil {
		return Result{}, err
	}

	msg := mailer.Message{
		To:      []string{req.Email},
		Subject: templates.WelcomeUserSubject(),
		HTMLBody: templates.RenderWelcomeUser(templates.WelcomeUserData{
			Name:     req.Name,
			LoginURL: req.LoginURL,
		}),
	}

	id, err := sender.Send(ctx, msg)
	if err != nil {
		s.log.ErrorContext(ctx, "welcome email delivery failed", logger.Error(err))
		return Result{}, fmt.Errorf("welcome email delivery failed: %w", err)
	}

	return Result{
		Success:   true,
		MessageID: id,
		Message:   "Welcome email sent successfully",
	}, nil
}

// TestConnection verifies the default transport. It never returns an error;
// the failure reason is embedded in the result.
func (s *Service) TestConnection(ctx context.Context) ConnectionTestResult {
	sender, err := s.senders.Get(DefaultSender)
	if err != nil {
		return ConnectionTestResult{Message: "Email service is not configured: " + err.Error()}
	}
	if err := sender.Verify(ctx); err != nil {
		s.log.WarnContext(ctx, "connection test failed", logger.Error(err))
		return ConnectionTestResult{Message: "Email service connection failed: " + err.Error()}
	}
	return ConnectionTestResult{Success: true, Message: "Email service connection verified"}
}

// Templates returns the registered generic template names.
func (s *Service) Templates() []string {
	return templates.Names()
}

func (s *Service) deliver(ctx context.Context, senderName string, msg mailer.Message) Result {
	if senderName == "" {
		senderName = DefaultSender
	}
	sender, err := s.senders.Get(senderName)
	if err != nil {
		return failResult(err)
	}

	id, err := sender.Send(ctx, msg)
	if err != nil {
		s.log.ErrorContext(ctx, "email delivery failed",
			slog.String("sender", senderName),
			logger.Error(err))
		return failResult(err)
	}

	s.log.InfoContext(ctx, "email sent",
		slog.String("sender", senderName),
		slog.String("message_id", id))
	return Result{Success: true, MessageID: id, Message: "Email sent successfully"}
}

func (s *Service) buildMessage(req SendRequest) (mailer.Message, error) {
	msg := mailer.Message{
		To:       []string{req.To},
		Cc:       req.Cc,
		Bcc:      req.Bcc,
		Subject:  req.Subject,
		TextBody: req.Text,
		HTMLBody: req.HTML,
	}
	for _, att := range req.Attachments {
		content, err := base64.StdEncoding.DecodeString(att.Content)
		if err != nil {
			return mailer.Message{}, fmt.Errorf("attachment %q: invalid base64 content", att.Filename)
		}
		msg.Attachments = append(msg.Attachments, mailer.Attachment{
			Filename:    att.Filename,
			Content:     content,
			ContentType: att.ContentType,
		})
	}
	return msg, nil
}

func failResult(err error) Result {
	return Result{
		Success: false,
		Message: "Failed to send email",
		Error:   err.Error(),
	}
}

// operatorNotificationBody builds the internal copy of a portfolio contact.
// The requester's fields are escaped since they arrive from the public form.
func operatorNotificationBody(req PortfolioRequest) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #667eea; margin-bottom: 20px;">New Portfolio Contact</h2>
	<div style="background: #f8f9fa; padding: 20px; border-radius: 10px; margin: 20px 0;">
		<p style="margin: 0 0 10px 0;"><strong>Name:</strong> %s</p>
		<p style="margin: 0 0 10px 0;"><strong>Email:</strong> %s</p>
		<p style="margin: 0 0 10px 0;"><strong>Message:</strong></p>
		<div style="background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #667eea;">%s</div>
	</div>
	<p style="color: #666; font-size: 14px; margin-top: 20px;">Received at: %s</p>
</div>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Message),
		time.Now().Format(time.RFC1123))
}
