// File: inicfg/builder.go
package inicfg

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for constructing a Store from a file,
// an open reader, or a caller-supplied Source, with an optional explicit
// format and logger.
type Builder struct {
	file   string
	reader io.Reader
	src    Source
	name   string
	format string
	logger *zerolog.Logger
	err    error
}

// NewBuilder creates a new Store builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithFile sets the configuration file path to load.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithReader sets an already-open reader as the source. The name is used in
// diagnostics and extension-based format detection.
func (b *Builder) WithReader(r io.Reader, name string) *Builder {
	b.reader = r
	b.name = name
	return b
}

// WithSource sets an already-parsed Source, bypassing file handling.
func (b *Builder) WithSource(src Source, name string) *Builder {
	b.src = src
	b.name = name
	return b
}

// WithFormat forces the source format instead of detecting it.
func (b *Builder) WithFormat(format string) *Builder {
	switch format {
	case FormatINI, FormatTOML, FormatJSON, FormatYAML:
		b.format = format
	default:
		b.err = fmt.Errorf("unsupported config format %q", format)
	}
	return b
}

// WithLogger replaces the default stderr logger.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = &logger
	return b
}

// Build constructs the Store. Exactly one source must have been configured;
// a Source takes precedence over a reader, which takes precedence over a
// file path. With none configured, Build fails with ErrInvalidSource.
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := defaultLogger()
	if b.logger != nil {
		logger = *b.logger
	}

	switch {
	case b.src != nil:
		return &Store{src: b.src, name: b.name, logger: logger}, nil
	case b.reader != nil:
		return parse(b.reader, b.name, b.format, logger)
	case b.file != "":
		return load(b.file, b.format, logger)
	}

	logger.Error().Msg("no config source provided")
	return nil, ErrInvalidSource
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config construction failed: %v", err))
	}
	return s
}
