package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerCarriesRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetBase(zap.New(core))
	t.Cleanup(func() { SetBase(nil) })

	ctx := WithRequestID(context.Background(), "rid-42")
	NewLogger(ctx).LogError("estimate", errors.New("boom"))
	NewLogger(context.Background()).LogInfof("plan", "sent %d bytes", 12)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "rid-42", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "estimate", entries[0].ContextMap()["operation"])
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])

	assert.Equal(t, "unknown", entries[1].ContextMap()["request_id"])
	assert.Equal(t, "sent 12 bytes", entries[1].Message)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.Error(t, err)

	l, err := New("production", "WARN")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
}
