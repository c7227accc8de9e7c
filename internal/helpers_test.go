package internal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRuntime(t *testing.T) (*Runtime, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewRuntime(WithLogger(logger)), &buf
}

func newNode(t *testing.T, r *Runtime) *Node {
	t.Helper()

	n, err := r.NewNode(KindStream, Identity)
	require.NoError(t, err)
	return n
}

func sum(acc, v any) any { return acc.(int) + v.(int) }
