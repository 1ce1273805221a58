// File: inicfg/store.go
package inicfg

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Store is an immutable typed accessor over a parsed section/option store.
// All methods are pure reads over data frozen at construction, so a Store
// is safe for concurrent use without locking.
type Store struct {
	src    Source
	name   string
	logger zerolog.Logger
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().
		Timestamp().
		Str("component", "inicfg").
		Logger()
}

// Load parses the configuration file at path. The path must reference an
// existing regular file; otherwise an error is logged and ErrConfigNotFound
// returned. The file is consumed eagerly and no handle is kept open.
func Load(path string) (*Store, error) {
	return load(path, "", defaultLogger())
}

func load(path, format string, logger zerolog.Logger) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		logger.Error().Str("file", path).Msg("config file does not exist")
		return nil, fmt.Errorf("config file %q: %w", path, ErrConfigNotFound)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	src, err := parseData(data, format, path)
	if err != nil {
		logger.Error().Str("file", path).Err(err).Msg("config file could not be parsed")
		return nil, err
	}

	return &Store{src: src, name: path, logger: logger}, nil
}

// Parse consumes an already-open reader. The name is only used in
// diagnostics (and for format detection by extension, if it has one).
// A nil reader yields ErrInvalidSource.
func Parse(r io.Reader, name string) (*Store, error) {
	return parse(r, name, "", defaultLogger())
}

func parse(r io.Reader, name, format string, logger zerolog.Logger) (*Store, error) {
	if r == nil {
		logger.Error().Str("name", name).Msg("invalid config source")
		return nil, fmt.Errorf("config source %q: %w", name, ErrInvalidSource)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config source %q: %w", name, err)
	}

	src, err := parseData(data, format, name)
	if err != nil {
		logger.Error().Str("name", name).Err(err).Msg("config source could not be parsed")
		return nil, err
	}

	return &Store{src: src, name: name, logger: logger}, nil
}

// FromSource wraps an already-parsed Source, letting callers plug in their
// own key/value-section parser.
func FromSource(src Source, name string) *Store {
	return &Store{src: src, name: name, logger: defaultLogger()}
}

// Name returns the display name of the underlying source (file path or the
// name given at construction).
func (s *Store) Name() string {
	return s.name
}

// Sections lists section names in stored order.
func (s *Store) Sections() []string {
	return s.src.Sections()
}

// HasSection reports whether the named section exists. Case-sensitive.
func (s *Store) HasSection(section string) bool {
	return s.src.HasSection(section)
}

// HasOption reports whether the section exists and contains the option.
func (s *Store) HasOption(section, option string) bool {
	return s.src.HasOption(section, option)
}

// ValidateSections checks each requested name for existence, preserving
// input order. It returns nil when every name exists, otherwise the ordered
// subset of names that do not.
func (s *Store) ValidateSections(names []string) []string {
	var invalid []string
	for _, name := range names {
		if !s.src.HasSection(name) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

// LogInvalidSections emits one warning per given name. Side effect only;
// it never halts the caller.
func (s *Store) LogInvalidSections(names []string) {
	for _, name := range names {
		s.logger.Warn().Str("section", name).Str("file", s.name).Msg("invalid section")
	}
}

// SectionOf returns the first section in stored order containing option.
func (s *Store) SectionOf(option string) (string, bool) {
	for _, section := range s.src.Sections() {
		if s.src.HasOption(section, option) {
			return section, true
		}
	}
	return "", false
}

// SectionsOf returns every section containing option, in stored order.
// Empty when none does.
func (s *Store) SectionsOf(option string) []string {
	var sections []string
	for _, section := range s.src.Sections() {
		if s.src.HasOption(section, option) {
			sections = append(sections, section)
		}
	}
	return sections
}
