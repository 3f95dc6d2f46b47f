package mailer_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huyche/email-service/pkg/mailer"
)

func TestDevSender(t *testing.T) {
	t.Parallel()

	t.Run("writes html and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := mailer.NewDevSender(dir)

		msg := mailer.Message{
			From:     "sender@example.com",
			To:       []string{"user@example.com"},
			Subject:  "Welcome aboard!",
			HTMLBody: "<h1>Welcome</h1>",
		}
		msgID, err := sender.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.NotEmpty(t, msgID)

		htmlFiles, err := filepath.Glob(filepath.Join(dir, "*.html"))
		require.NoError(t, err)
		require.Len(t, htmlFiles, 1)
		assert.Contains(t, htmlFiles[0], "welcome_aboard")

		body, err := os.ReadFile(htmlFiles[0])
		require.NoError(t, err)
		assert.Equal(t, "<h1>Welcome</h1>", string(body))

		jsonFiles, err := filepath.Glob(filepath.Join(dir, "*.json"))
		require.NoError(t, err)
		require.Len(t, jsonFiles, 1)

		var meta map[string]any
		data, err := os.ReadFile(jsonFiles[0])
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &meta))
		assert.Equal(t, msgID, meta["message_id"])
		assert.Equal(t, "Welcome aboard!", meta["subject"])
		assert.Equal(t, []any{"user@example.com"}, meta["to"])
	})

	t.Run("rejects invalid message", func(t *testing.T) {
		t.Parallel()

		sender := mailer.NewDevSender(t.TempDir())
		_, err := sender.Send(context.Background(), mailer.Message{})
		assert.ErrorIs(t, err, mailer.ErrInvalidMessage)
	})

	t.Run("verify creates directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "outbox")
		sender := mailer.NewDevSender(dir)
		require.NoError(t, sender.Verify(context.Background()))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("register and get", func(t *testing.T) {
		t.Parallel()

		reg := mailer.NewRegistry()
		def := mailer.NewDevSender(t.TempDir())
		gmail := mailer.NewDevSender(t.TempDir())

		require.NoError(t, reg.Register("default", def))
		require.NoError(t, reg.Register("Gmail", gmail))

		got, err := reg.Get("gmail")
		require.NoError(t, err)
		assert.Same(t, gmail, got)

		assert.Equal(t, []string{"default", "gmail"}, reg.List())
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		reg := mailer.NewRegistry()
		_, err := reg.Get("missing")
		assert.ErrorIs(t, err, mailer.ErrSenderNotFound)
	})

	t.Run("rejects empty name and nil sender", func(t *testing.T) {
		t.Parallel()

		reg := mailer.NewRegistry()
		assert.ErrorIs(t, reg.Register("", mailer.NewDevSender(t.TempDir())), mailer.ErrInvalidConfig)
		assert.ErrorIs(t, reg.Register("default", nil), mailer.ErrInvalidConfig)
	})
}
