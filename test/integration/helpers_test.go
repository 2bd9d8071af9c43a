package integration

import (
	"io"
	"testing"

	rbdblog "github.com/msto63/rbdb/internal/core/log"
	"github.com/msto63/rbdb/internal/session"
)

// newSession creates a session whose logger stays out of test output
func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(session.Options{
		Logger: rbdblog.NewWithConfig(rbdblog.Config{
			Level:  rbdblog.LevelError,
			Output: io.Discard,
		}),
	})
}

func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

func requireError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected an error", msg)
	}
}

func requireEqual(t *testing.T, expected, actual string, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %q, got %q", msg, expected, actual)
	}
}
