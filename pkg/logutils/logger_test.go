package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "roster.log")

	l, closer, err := New("info", path)
	require.NoError(t, err)
	l.Debug().Msg("hidden")
	l.Info().Str("collection", "users").Msg("first")
	closer()

	l, closer, err = New("info", path)
	require.NoError(t, err)
	l.Info().Msg("second")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"collection":"users"`)
	assert.Contains(t, out, `"message":"first"`)
	assert.Contains(t, out, `"message":"second"`)
}

func TestNew_Level(t *testing.T) {
	l, closer, err := New("warn", "")
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	_, _, err = New("loud", "")
	assert.Error(t, err)
}
