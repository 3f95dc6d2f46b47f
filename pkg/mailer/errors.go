package mailer

import "errors"

var (
	// ErrInvalidConfig indicates missing or inconsistent transport configuration.
	ErrInvalidConfig = errors.New("mailer: invalid config")
	// ErrInvalidMessage indicates the message failed validation before any network activity.
	ErrInvalidMessage = errors.New("mailer: invalid message")
	// ErrSendFailed indicates the upstream rejected or aborted the delivery.
	ErrSendFailed = errors.New("mailer: send failed")
	// ErrSendTimeout indicates the delivery exceeded the configured send timeout.
	ErrSendTimeout = errors.New("mailer: send timed out")
	// ErrVerifyFailed indicates the transport could not be verified against its upstream.
	ErrVerifyFailed = errors.New("mailer: verification failed")
	// ErrSenderNotFound indicates no sender is registered under the requested name.
	ErrSenderNotFound = errors.New("mailer: sender not found")
)
