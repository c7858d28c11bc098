package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.WarnLevel,
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"error":   zerolog.ErrorLevel,
		"garbage": zerolog.WarnLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Str("user", "fabmazz").Msg("shown")
	assert.Contains(t, buf.String(), `"user":"fabmazz"`)
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestFromContext(t *testing.T) {
	var ctxBuf, fallbackBuf bytes.Buffer
	fallback := NewWithWriter(&fallbackBuf, zerolog.InfoLevel)

	fromBackground := FromContext(context.Background(), fallback)
	fromBackground.Info().Msg("no context logger")
	assert.Contains(t, fallbackBuf.String(), "no context logger")

	attached := NewWithWriter(&ctxBuf, zerolog.InfoLevel).With().Str("run_id", "r1").Logger()
	ctx := attached.WithContext(context.Background())
	fromCtx := FromContext(ctx, fallback)
	fromCtx.Info().Msg("with context logger")

	assert.Contains(t, ctxBuf.String(), `"run_id":"r1"`)
	assert.NotContains(t, fallbackBuf.String(), "with context logger")
}
