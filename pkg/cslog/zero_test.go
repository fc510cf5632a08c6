package cslog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewZeroLoggerLevel(t *testing.T) {
	logger := NewZeroLogger("debug")
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got: %v", logger.GetLevel())
	}

	logger = NewZeroLogger("bogus")
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected fallback to info level, got: %v", logger.GetLevel())
	}
}

func TestZeroLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := NewZeroLogger("info")
	l := logger.Output(&buf)
	l.Info().Msg("test message")

	out := buf.String()

	if !strings.Contains(out, `"level":"info"`) {
		t.Fatalf("expected JSON output with level field, got: %s", out)
	}
	if !strings.Contains(out, `"message":"test message"`) {
		t.Fatalf("expected JSON output with message field, got: %s", out)
	}
}

func TestUpdateZeroLogLevel(t *testing.T) {
	if err := UpdateZeroLogLevel("error"); err != nil {
		t.Fatal(err)
	}
	if Zero.GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("expected error level, got: %v", Zero.GetLevel())
	}
	if err := UpdateZeroLogLevel("info"); err != nil {
		t.Fatal(err)
	}
}
