package frp

import (
	"bytes"
	"log/slog"
	"testing"
)

// newTestEngine returns an engine logging into the returned buffer.
func newTestEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewEngine(WithLogger(logger)), &buf
}
