package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/huyche/email-service/internal/email"
	"github.com/huyche/email-service/pkg/validator"
)

var errMalformedBody = errors.New("malformed request body")

// decode binds the JSON request body into v, rejecting unknown fields the
// way the original API rejected non-whitelisted properties.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errMalformedBody
	}
	return nil
}

func validateSend(req email.SendRequest) error {
	rules := []validator.Rule{
		validator.Required("to", req.To),
		validator.ValidEmail("to", req.To),
		validator.ValidEmailList("cc", req.Cc),
		validator.ValidEmailList("bcc", req.Bcc),
		validator.Required("subject", req.Subject),
	}
	for _, att := range req.Attachments {
		rules = append(rules,
			validator.Required("attachments.filename", att.Filename),
			validator.ValidBase64("attachments.content", att.Content),
		)
	}
	return validator.Apply(rules...)
}

func validateBulk(req email.BulkRequest) error {
	rules := []validator.Rule{
		validator.NonEmptyList("to", req.To),
		validator.ValidEmailList("to", req.To),
		validator.Required("subject", req.Subject),
	}
	for _, att := range req.Attachments {
		rules = append(rules,
			validator.Required("attachments.filename", att.Filename),
			validator.ValidBase64("attachments.content", att.Content),
		)
	}
	return validator.Apply(rules...)
}

func validateTemplate(req email.TemplateRequest) error {
	return validator.Apply(
		validator.Required("to", req.To),
		validator.ValidEmail("to", req.To),
		validator.ValidEmailList("cc", req.Cc),
		validator.ValidEmailList("bcc", req.Bcc),
		validator.Required("template", req.Template),
		validator.Required("subject", req.Subject),
	)
}

func validatePortfolio(req email.PortfolioRequest) error {
	return validator.Apply(
		validator.Required("email", req.Email),
		validator.ValidEmail("email", req.Email),
		validator.Required("name", req.Name),
		validator.Required("message", req.Message),
	)
}

func validateWelcome(req email.WelcomeRequest) error {
	return validator.Apply(
		validator.Required("email", req.Email),
		validator.ValidEmail("email", req.Email),
		validator.Required("name", req.Name),
		validator.Required("loginUrl", req.LoginURL),
		validator.ValidURL("loginUrl", req.LoginURL),
	)
}
