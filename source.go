// File: inicfg/source.go
package inicfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Supported source formats for Load, Parse, and Builder.WithFormat.
const (
	FormatINI  = "ini"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Source is the parsed key/value-section collaborator a Store reads from.
// Implementations must be immutable once handed to a Store: every method is
// a pure lookup and may be called concurrently.
//
// Value returns the raw text exactly as stored, without trimming beyond what
// the source format itself defines, and the empty string for a missing
// option (callers are expected to guard with HasOption).
type Source interface {
	// Sections lists section names in stable stored order.
	Sections() []string
	HasSection(section string) bool
	HasOption(section, option string) bool
	// Options lists the option names of a section in stable stored order.
	Options(section string) []string
	Value(section, option string) string
}

// parseData builds a Source from raw file content. An empty format triggers
// detection by file extension first, then by content, with INI as the final
// fallback since its grammar accepts almost any key/value text.
func parseData(data []byte, format, name string) (Source, error) {
	if format == "" {
		format = detectFormat(name)
	}
	if format == "" {
		format = detectFormatFromContent(data)
	}
	if format == "" {
		format = FormatINI
	}

	switch format {
	case FormatINI:
		return newINISource(data)
	case FormatTOML:
		nested := make(map[string]any)
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse TOML source %q: %w", name, err)
		}
		return newMapSource(nested), nil
	case FormatJSON:
		nested := make(map[string]any)
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("failed to parse JSON source %q: %w", name, err)
		}
		return newMapSource(nested), nil
	case FormatYAML:
		nested := make(map[string]any)
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse YAML source %q: %w", name, err)
		}
		return newMapSource(nested), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// detectFormat determines format from the file extension.
func detectFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ini", ".cfg":
		return FormatINI
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		// .conf/.config and friends: detect from content
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing. Strictest
// grammar first; INI is never detected here, it is the caller's fallback.
func detectFormatFromContent(data []byte) string {
	var jsonTest map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	if decoder.Decode(&jsonTest) == nil {
		return FormatJSON
	}

	var tomlTest map[string]any
	if toml.Unmarshal(data, &tomlTest) == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if yaml.Unmarshal(data, &yamlTest) == nil {
		return FormatYAML
	}

	return ""
}

// iniSource adapts gopkg.in/ini.v1 to the Source contract. The synthetic
// DEFAULT section is hidden, matching the section model where every option
// lives in an explicitly named section.
type iniSource struct {
	file *ini.File
}

func newINISource(data []byte) (*iniSource, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI source: %w", err)
	}
	return &iniSource{file: f}, nil
}

func (s *iniSource) Sections() []string {
	all := s.file.SectionStrings()
	names := make([]string, 0, len(all))
	for _, name := range all {
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// section resolves a named section, treating the hidden DEFAULT section as
// absent. ini.v1 maps the empty name to DEFAULT, so the guard also keeps an
// unresolved discovery from landing there.
func (s *iniSource) section(name string) *ini.Section {
	if name == "" || name == ini.DefaultSection {
		return nil
	}
	sec, err := s.file.GetSection(name)
	if err != nil {
		return nil
	}
	return sec
}

func (s *iniSource) HasSection(section string) bool {
	return s.section(section) != nil
}

func (s *iniSource) HasOption(section, option string) bool {
	sec := s.section(section)
	return sec != nil && sec.HasKey(option)
}

func (s *iniSource) Options(section string) []string {
	sec := s.section(section)
	if sec == nil {
		return nil
	}
	return sec.KeyStrings()
}

func (s *iniSource) Value(section, option string) string {
	sec := s.section(section)
	if sec == nil {
		return ""
	}
	key, err := sec.GetKey(option)
	if err != nil {
		return ""
	}
	return key.Value()
}

// mapSource serves TOML, JSON, and YAML content through the flat section
// model: top-level tables become sections, nested tables flatten into
// dot-joined option names, scalars are rendered back to their raw text.
// Top-level scalar keys have no section and are dropped.
//
// Map iteration order is not stable in Go, so section and option names are
// sorted once at construction to keep discovery deterministic.
type mapSource struct {
	names   []string
	options map[string][]string
	values  map[string]map[string]string
}

func newMapSource(nested map[string]any) *mapSource {
	ms := &mapSource{
		options: make(map[string][]string),
		values:  make(map[string]map[string]string),
	}

	for key, value := range nested {
		table, isMap := value.(map[string]any)
		if !isMap {
			continue
		}
		flat := make(map[string]string)
		flattenSection(table, "", flat)

		opts := make([]string, 0, len(flat))
		for opt := range flat {
			opts = append(opts, opt)
		}
		sort.Strings(opts)

		ms.names = append(ms.names, key)
		ms.options[key] = opts
		ms.values[key] = flat
	}
	sort.Strings(ms.names)

	return ms
}

// flattenSection walks a section table, joining nested keys with dots and
// stringifying every leaf value.
func flattenSection(table map[string]any, prefix string, flat map[string]string) {
	for key, value := range table {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nestedMap, isMap := value.(map[string]any); isMap {
			flattenSection(nestedMap, name, flat)
		} else {
			flat[name] = stringifyValue(value)
		}
	}
}

// stringifyValue renders a decoded scalar back to raw option text. Floats
// keep a fractional part ("5.0", never "5") so that number coercion returns
// a float for float-typed source values.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case json.Number:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (s *mapSource) Sections() []string {
	return s.names
}

func (s *mapSource) HasSection(section string) bool {
	_, ok := s.values[section]
	return ok
}

func (s *mapSource) HasOption(section, option string) bool {
	opts, ok := s.values[section]
	if !ok {
		return false
	}
	_, ok = opts[option]
	return ok
}

func (s *mapSource) Options(section string) []string {
	return s.options[section]
}

func (s *mapSource) Value(section, option string) string {
	return s.values[section][option]
}
