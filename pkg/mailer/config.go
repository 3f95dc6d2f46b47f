package mailer

import (
	"fmt"
	"time"
)

// Config holds SMTP transport configuration. Secure selects implicit TLS on
// connect; when false the sender upgrades via STARTTLS if the server offers it.
type Config struct {
	Host     string `env:"SMTP_HOST,required"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Secure   bool   `env:"SMTP_SECURE" envDefault:"false"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`

	FromEmail string `env:"SMTP_FROM_EMAIL,required"` // Sender address placed in the From header.
	FromName  string `env:"SMTP_FROM_NAME"`           // Optional display name for the From header.

	MaxConnections int           `env:"SMTP_MAX_CONNECTIONS" envDefault:"5"`  // Upper bound on concurrent SMTP connections.
	MaxMessages    int           `env:"SMTP_MAX_MESSAGES" envDefault:"100"`   // Messages sent per connection before reconnecting.
	RatePerSecond  int           `env:"SMTP_RATE_PER_SECOND" envDefault:"10"` // Outbound pacing; 0 disables throttling.
	ConnectTimeout time.Duration `env:"SMTP_CONNECT_TIMEOUT" envDefault:"10s"`
	SendTimeout    time.Duration `env:"SMTP_SEND_TIMEOUT" envDefault:"30s"`
}

// Validate reports configuration errors wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("%w: from email is required", ErrInvalidConfig)
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("%w: max connections must be positive", ErrInvalidConfig)
	}
	if c.MaxMessages <= 0 {
		return fmt.Errorf("%w: max messages per connection must be positive", ErrInvalidConfig)
	}
	if c.RatePerSecond < 0 {
		return fmt.Errorf("%w: rate per second cannot be negative", ErrInvalidConfig)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: connect timeout must be positive", ErrInvalidConfig)
	}
	if c.SendTimeout <= 0 {
		return fmt.Errorf("%w: send timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
