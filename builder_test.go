// File: inicfg/builder_test.go
package inicfg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("NoSource", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := NewBuilder().WithLogger(zerolog.New(&buf)).Build()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSource))
		assert.Contains(t, buf.String(), "no config source provided")
	})

	t.Run("WithFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.ini")
		require.NoError(t, os.WriteFile(path, []byte(sampleINI), 0644))

		store, err := NewBuilder().WithFile(path).Build()
		require.NoError(t, err)
		assert.True(t, store.HasSection("db"))
	})

	t.Run("WithReader", func(t *testing.T) {
		store, err := NewBuilder().
			WithReader(strings.NewReader(sampleINI), "in-memory").
			WithFormat(FormatINI).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "in-memory", store.Name())
		assert.True(t, store.HasSection("api"))
	})

	t.Run("WithSourceTakesPrecedence", func(t *testing.T) {
		src, err := newINISource([]byte("[only]\nk = v\n"))
		require.NoError(t, err)

		store, err := NewBuilder().
			WithSource(src, "plugged").
			WithReader(strings.NewReader(sampleINI), "ignored").
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"only"}, store.Sections())
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := NewBuilder().
			WithReader(strings.NewReader(sampleINI), "x").
			WithFormat("xml").
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config format")
	})

	t.Run("ForcedFormatOverridesExtension", func(t *testing.T) {
		// TOML content behind a .ini name parses once the format is forced.
		store, err := NewBuilder().
			WithReader(strings.NewReader("[db]\nhost = \"localhost\"\n"), "misnamed.ini").
			WithFormat(FormatTOML).
			Build()
		require.NoError(t, err)
		host, ok := store.String("db", "host")
		require.True(t, ok)
		assert.Equal(t, "localhost", host)
	})
}

func TestMustBuild(t *testing.T) {
	t.Run("Succeeds", func(t *testing.T) {
		store := NewBuilder().
			WithReader(strings.NewReader(sampleINI), "test.ini").
			MustBuild()
		assert.NotNil(t, store)
	})

	t.Run("PanicsWithoutSource", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Panics(t, func() {
			NewBuilder().WithLogger(zerolog.New(&buf)).MustBuild()
		})
	})
}
