package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	l := NewLogger("test")

	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()

	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_ReturnsIndependentInstance(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached_ReturnsNonNil(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
}

func TestFromContext_RoundTrip(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	got := FromContext(ctx)

	require.NotNil(t, got)
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}

func TestFromRequest_ReturnsContextLogger(t *testing.T) {
	parent := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(parent.WithContext(req.Context()))

	got := FromRequest(req)

	require.NotNil(t, got)
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}
