// Package mailer provides transactional email delivery over SMTP with
// connection pooling, outbound throttling, and per-send timeouts.
//
// The central abstraction is Sender:
//
//	type Sender interface {
//	    Send(ctx context.Context, msg Message) (string, error)
//	    Verify(ctx context.Context) error
//	}
//
// Send delivers a single message and returns its Message-ID. Verify checks
// that the transport can reach its upstream without sending anything.
//
// NewSMTPSender builds the production implementation. It maintains a bounded
// pool of SMTP connections, reuses each connection for a configurable number
// of messages before reconnecting, and paces outbound sends to a configured
// messages-per-second rate. Every send races against the configured timeout;
// a send that overruns is abandoned and its connection discarded rather than
// returned to the pool.
//
// NewDevSender writes messages to a local directory as HTML plus JSON
// metadata instead of delivering them, for development environments without
// SMTP credentials.
//
// Registry maps sender identities by name, letting a service route different
// notification kinds through different upstream accounts:
//
//	reg := mailer.NewRegistry()
//	reg.Register("default", defaultSender)
//	reg.Register("gmail", gmailSender)
//	s, err := reg.Get("gmail")
//
// All errors are wrapped with package sentinels (ErrInvalidConfig,
// ErrInvalidMessage, ErrSendFailed, ErrSendTimeout, ErrVerifyFailed) for
// errors.Is checks.
package mailer
