package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"sync"
	"sync/atomic"
	"time"
)

// SMTPSender delivers messages through a pooled SMTP connection set.
type SMTPSender struct {
	cfg   Config
	addr  string
	log   *slog.Logger
	pace  *throttle
	slots chan struct{}
	idle  chan *pooledConn

	closeOnce sync.Once
}

type pooledConn struct {
	client *smtp.Client
	sent   int
}

// Option configures an SMTPSender.
type Option func(*SMTPSender)

// WithLogger supplies a logger for send diagnostics. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *SMTPSender) { s.log = l }
}

// NewSMTPSender validates cfg and returns a pooled SMTP sender. No network
// activity happens until the first Send or Verify call.
func NewSMTPSender(cfg Config, opts ...Option) (*SMTPSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &SMTPSender{
		cfg:   cfg,
		addr:  fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		pace:  newThrottle(cfg.RatePerSecond),
		slots: make(chan struct{}, cfg.MaxConnections),
		idle:  make(chan *pooledConn, cfg.MaxConnections),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	return s, nil
}

// Send delivers msg and returns its Message-ID. The From header falls back
// to the configured sender identity when msg leaves it empty. A delivery
// that overruns the send timeout is abandoned, its connection discarded, and
// ErrSendTimeout returned; the in-flight SMTP transaction is left to finish
// in the background rather than interrupted mid-protocol.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if msg.From == "" {
		msg.From = s.cfg.FromEmail
		if msg.FromName == "" {
			msg.FromName = s.cfg.FromName
		}
	}
	if err := msg.Validate(); err != nil {
		return "", err
	}

	if err := s.pace.wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	pc, err := s.acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	msgID := newMessageID(s.cfg.Host)
	wire := buildMessage(msg, msgID)

	var abandoned atomic.Bool
	done := make(chan error, 1)
	go func() {
		err := transact(pc.client, msg.From, msg.Recipients(), wire)
		pc.sent++
		if err != nil || abandoned.Load() {
			s.discard(pc)
		} else {
			s.release(pc)
		}
		done <- err
	}()

	timer := time.NewTimer(s.cfg.SendTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
		}
		s.log.DebugContext(ctx, "message delivered",
			slog.String("message_id", msgID),
			slog.Int("recipients", len(msg.Recipients())))
		return msgID, nil
	case <-timer.C:
		abandoned.Store(true)
		s.log.WarnContext(ctx, "send abandoned after timeout",
			slog.String("message_id", msgID),
			slog.Duration("timeout", s.cfg.SendTimeout))
		return "", fmt.Errorf("%w: after %s", ErrSendTimeout, s.cfg.SendTimeout)
	case <-ctx.Done():
		abandoned.Store(true)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, ctx.Err())
	}
}

// Verify dials the upstream, performs a NOOP, and closes the connection.
// Failures are wrapped with ErrVerifyFailed.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	if err := client.Quit(); err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	return nil
}

// Close quits all idle connections. In-flight sends finish on their own
// connections and release them afterwards.
func (s *SMTPSender) Close() {
	s.closeOnce.Do(func() {
		for {
			select {
			case pc := <-s.idle:
				_ = pc.client.Quit()
				<-s.slots
			default:
				return
			}
		}
	})
}

func transact(client *smtp.Client, from string, recipients []string, wire string) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(wire)); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// acquire returns an idle connection or dials a new one within the pool bound.
func (s *SMTPSender) acquire(ctx context.Context) (*pooledConn, error) {
	select {
	case pc := <-s.idle:
		return pc, nil
	default:
	}

	select {
	case pc := <-s.idle:
		return pc, nil
	case s.slots <- struct{}{}:
		client, err := s.dial(ctx)
		if err != nil {
			<-s.slots
			return nil, err
		}
		return &pooledConn{client: client}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// release returns the connection to the pool, or retires it once it has
// carried its share of messages.
func (s *SMTPSender) release(pc *pooledConn) {
	if pc.sent >= s.cfg.MaxMessages {
		_ = pc.client.Quit()
		<-s.slots
		return
	}
	select {
	case s.idle <- pc:
	default:
		_ = pc.client.Quit()
		<-s.slots
	}
}

func (s *SMTPSender) discard(pc *pooledConn) {
	_ = pc.client.Close()
	<-s.slots
}

func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: s.cfg.ConnectTimeout}

	var conn net.Conn
	var err error
	if s.cfg.Secure {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.cfg.Host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", s.addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", s.addr)
	}
	if err != nil {
		return nil, err
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if !s.cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
				client.Close()
				return nil, err
			}
		}
	}

	if s.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
			if err := client.Auth(auth); err != nil {
				client.Close()
				return nil, err
			}
		}
	}

	return client, nil
}

// throttle paces sends to a minimum gap between consecutive messages.
type throttle struct {
	mu     sync.Mutex
	minGap time.Duration
	next   time.Time
}

func newThrottle(ratePerSecond int) *throttle {
	if ratePerSecond <= 0 {
		return &throttle{}
	}
	return &throttle{minGap: time.Second / time.Duration(ratePerSecond)}
}

// wait blocks until the caller may send, or until ctx is done.
func (t *throttle) wait(ctx context.Context) error {
	if t.minGap == 0 {
		return nil
	}

	t.mu.Lock()
	now := time.Now()
	var delay time.Duration
	if t.next.After(now) {
		delay = t.next.Sub(now)
		t.next = t.next.Add(t.minGap)
	} else {
		t.next = now.Add(t.minGap)
	}
	t.mu.Unlock()

	if delay == 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
