package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/parmst/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"Error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	require.NoError(t, err)
	l.Info("round", "components", 4)
	assert.Contains(t, buf.String(), `"components":4`)

	buf.Reset()
	l, err = logging.New(&buf, slog.LevelWarn, "")
	require.NoError(t, err)
	l.Info("hidden")
	assert.Empty(t, buf.String()) // below level

	_, err = logging.New(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
