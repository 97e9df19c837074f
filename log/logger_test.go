package log

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, WithLevel(zerolog.InfoLevel))

	logger.Info().Str("topic", "ai").Msg("articles refreshed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "articles refreshed", entry["message"])
	assert.Equal(t, "ai", entry["topic"])
}

func TestWithLevelFiltersBelow(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, WithLevel(zerolog.WarnLevel))

	logger.Debug().Msg("dropped")
	logger.Info().Msg("dropped too")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, WithService("newswire"))

	logger.Info().Msg("up")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "newswire", entry["service"])
}

func TestNewFileSizeRotate(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewFile(FileConfig{
		Filepath:   dir,
		Filename:   "test",
		RotateMode: 1, // size
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info().Msg("to file")

	assert.FileExists(t, filepath.Join(dir, "test.log"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestGlobalLogger(t *testing.T) {
	require.NotNil(t, G)

	old := G
	defer SetGlobalLogger(old)

	var buf bytes.Buffer
	SetGlobalLogger(newLogger(&buf))
	Info().Msg("global")
	assert.Contains(t, buf.String(), "global")
}
