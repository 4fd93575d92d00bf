package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/runcheck/pkg/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format  string
		wantErr error
	}{
		"text":    {format: "text"},
		"logfmt":  {format: "logfmt"},
		"json":    {format: "json"},
		"empty":   {format: ""},
		"unknown": {format: "xml", wantErr: log.ErrUnknownFormat},
	}
	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			h, err := log.CreateHandler(buf, "info", tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
		})
	}
}

func TestCreateHandlerLevels(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	h, err := log.CreateHandler(buf, "warn", "logfmt")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("quiet")
	assert.Empty(t, buf.String())

	logger.Error("boom")
	assert.Contains(t, buf.String(), "boom")
}

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level string
		want  slog.Level
	}{
		"debug":   {level: "debug", want: slog.LevelDebug},
		"trace":   {level: "trace", want: slog.LevelDebug},
		"info":    {level: "info", want: slog.LevelInfo},
		"warn":    {level: "warn", want: slog.LevelWarn},
		"warning": {level: "WARNING", want: slog.LevelWarn},
		"error":   {level: "error", want: slog.LevelError},
		"fatal":   {level: "fatal", want: slog.LevelError},
		"panic":   {level: "panic", want: slog.LevelError},
		"default": {level: "bogus", want: slog.LevelInfo},
		"empty":   {level: "", want: slog.LevelInfo},
	}
	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, log.GetLevel(tc.level))
		})
	}
}
