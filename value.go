// File: inicfg/value.go
package inicfg

// Kind selects the coercion applied to a raw option value. Exactly one kind
// applies per lookup; contradictory flag combinations cannot be expressed.
type Kind int

const (
	// KindRaw returns the raw string unchanged.
	KindRaw Kind = iota
	// KindNumber parses int64, or float64 when the text contains a decimal
	// point.
	KindNumber
	// KindBool matches the fixed truthy/falsy token table,
	// case-insensitively.
	KindBool
	// KindPath resolves the value to an absolute, normalized path.
	KindPath
)

// Lookup resolves option within section and applies the requested coercion.
//
// An empty section triggers unique-option discovery: the first section in
// stored order containing the option is used. Missing section, missing
// option, empty raw value, and failed coercion all return (nil, false) —
// never an error. Unless silent is set, those conditions are logged (error
// level, except empty values which only warrant a warning).
//
// On success the value is a string (KindRaw, KindPath), int64 or float64
// (KindNumber), or bool (KindBool).
func (s *Store) Lookup(section, option string, kind Kind, silent bool) (any, bool) {
	if section == "" {
		section, _ = s.SectionOf(option)
	}
	if !s.src.HasSection(section) {
		if !silent {
			s.logger.Error().Str("section", section).Str("file", s.name).Msg("missing section")
		}
		return nil, false
	}
	if !s.src.HasOption(section, option) {
		if !silent {
			s.logger.Error().Str("section", section).Str("option", option).Str("file", s.name).Msg("missing option")
		}
		return nil, false
	}

	raw := s.src.Value(section, option)
	if raw == "" {
		if !silent {
			s.logger.Warn().Str("section", section).Str("option", option).Str("file", s.name).Msg("empty value")
		}
		return nil, false
	}

	switch kind {
	case KindNumber:
		n, err := parseNumber(raw)
		if err != nil {
			if !silent {
				s.logger.Error().Str("section", section).Str("option", option).Str("value", raw).Msg("invalid numeric value")
			}
			return nil, false
		}
		return n, true
	case KindBool:
		b, ok := parseBool(raw)
		if !ok {
			if !silent {
				s.logger.Error().Str("section", section).Str("option", option).Str("value", raw).Msg("invalid bool value")
			}
			return nil, false
		}
		return b, true
	case KindPath:
		return absolutePath(raw), true
	default:
		return raw, true
	}
}

// String returns the raw value of option in section. An empty section
// triggers unique-option discovery, as with all typed accessors.
func (s *Store) String(section, option string) (string, bool) {
	v, ok := s.Lookup(section, option, KindRaw, false)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Int64 returns the numeric value of option in section. A raw value with a
// decimal point is parsed as float and truncated.
func (s *Store) Int64(section, option string) (int64, bool) {
	v, ok := s.Lookup(section, option, KindNumber, false)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// Float64 returns the numeric value of option in section as a float.
func (s *Store) Float64(section, option string) (float64, bool) {
	v, ok := s.Lookup(section, option, KindNumber, false)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Bool returns the boolean value of option in section.
func (s *Store) Bool(section, option string) (bool, bool) {
	v, ok := s.Lookup(section, option, KindBool, false)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// Path returns the value of option in section resolved to an absolute,
// normalized filesystem path.
func (s *Store) Path(section, option string) (string, bool) {
	v, ok := s.Lookup(section, option, KindPath, false)
	if !ok {
		return "", false
	}
	return v.(string), true
}
