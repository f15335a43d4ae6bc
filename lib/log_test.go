package lib

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevelFiltering(t *testing.T) {
	// capture the logger output in a buffer
	out := new(bytes.Buffer)
	logger := NewLogger(LoggerConfig{Level: WarnLevel, Out: out})
	// below the configured level nothing is written
	logger.Info("hidden")
	logger.Debugf("hidden %d", 1)
	require.Empty(t, out.String())
	// at or above the configured level the message is written with its tag
	logger.Warnf("shown %d", 1)
	require.Contains(t, out.String(), "WARN")
	require.Contains(t, out.String(), "shown 1")
	logger.Error("broken")
	require.Contains(t, out.String(), "ERROR")
}

func TestNewDefaultLogger(t *testing.T) {
	// pre-define expected
	expected := NewLogger(LoggerConfig{
		Level: DebugLevel,
		Out:   os.Stdout,
	})
	// execute the function call
	got := NewDefaultLogger()
	// compare got vs expected
	require.Equal(t, got, expected)
}

func TestNewNullLogger(t *testing.T) {
	// pre-define expected
	expected := NewLogger(LoggerConfig{
		Level: DebugLevel,
		Out:   io.Discard,
	})
	// execute the function call
	got := NewNullLogger()
	// compare got vs expected
	require.Equal(t, got, expected)
}
