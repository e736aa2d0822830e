package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	SetLevel("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("nonsense")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestWithContextWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	Logger = zerolog.New(&buf)

	WithContext(context.Background()).Info().Msg("hello")

	require.Contains(t, buf.String(), `"hello"`)
	assert.NotContains(t, buf.String(), "trace_id")
}
