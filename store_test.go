// File: inicfg/store_test.go
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

// newTestStore builds a Store from INI text with logging captured in the
// returned buffer.
func newTestStore(t *testing.T, content string) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	store, err := NewBuilder().
		WithReader(strings.NewReader(content), "test.ini").
		WithLogger(zerolog.New(&buf)).
		Build()
	require.NoError(t, err)
	return store, &buf
}

const sampleINI = `[db]
host = localhost
port = 5432
debug = Yes

[api]
listen = :8080
debug = no
`

func TestLoad(t *testing.T) {
	t.Run("ExistingFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.ini")
		require.NoError(t, os.WriteFile(path, []byte(sampleINI), 0644))

		store, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, store.Name())
		assert.Equal(t, []string{"db", "api"}, store.Sections())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigNotFound))
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigNotFound))
	})
}

func TestParse(t *testing.T) {
	t.Run("Reader", func(t *testing.T) {
		store, err := Parse(strings.NewReader(sampleINI), "stream.ini")
		require.NoError(t, err)
		assert.Equal(t, "stream.ini", store.Name())
		assert.True(t, store.HasSection("db"))
	})

	t.Run("NilReader", func(t *testing.T) {
		_, err := Parse(nil, "stream.ini")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSource))
	})
}

func TestValidateSections(t *testing.T) {
	store, _ := newTestStore(t, sampleINI)

	tests := []struct {
		name    string
		input   []string
		invalid []string
	}{
		{"AllValid", []string{"db", "api"}, nil},
		{"AllInvalid", []string{"cache", "queue"}, []string{"cache", "queue"}},
		{"MixedPreservesOrder", []string{"queue", "db", "cache"}, []string{"queue", "cache"}},
		{"CaseSensitive", []string{"DB"}, []string{"DB"}},
		{"Empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, store.ValidateSections(tt.input))
		})
	}
}

func TestLogInvalidSections(t *testing.T) {
	store, buf := newTestStore(t, sampleINI)

	store.LogInvalidSections([]string{"cache", "queue"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], `"section":"cache"`)
	assert.Contains(t, lines[1], `"section":"queue"`)
}

func TestSectionOf(t *testing.T) {
	store, _ := newTestStore(t, sampleINI)

	t.Run("UniqueOption", func(t *testing.T) {
		section, ok := store.SectionOf("listen")
		require.True(t, ok)
		assert.Equal(t, "api", section)
	})

	t.Run("FirstMatchInStoredOrder", func(t *testing.T) {
		// "debug" exists in both sections; [db] comes first.
		section, ok := store.SectionOf("debug")
		require.True(t, ok)
		assert.Equal(t, "db", section)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, ok := store.SectionOf("missing")
		assert.False(t, ok)
	})
}

func TestSectionsOf(t *testing.T) {
	store, _ := newTestStore(t, sampleINI)

	assert.Equal(t, []string{"db", "api"}, store.SectionsOf("debug"))
	assert.Equal(t, []string{"api"}, store.SectionsOf("listen"))
	assert.Nil(t, store.SectionsOf("missing"))
}

func TestFromSource(t *testing.T) {
	src, err := newINISource([]byte(sampleINI))
	require.NoError(t, err)

	store := FromSource(src, "custom")
	assert.Equal(t, "custom", store.Name())
	assert.True(t, store.HasOption("db", "host"))
	assert.False(t, store.HasOption("db", "listen"))
}

func TestConcurrentReads(t *testing.T) {
	store, _ := newTestStore(t, sampleINI)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				store.Sections()
				store.SectionOf("debug")
				store.Lookup("db", "port", KindNumber, true)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
