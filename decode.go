// File: inicfg/decode.go
package inicfg

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DecodeSection decodes one section's options into the target struct using
// `ini` tags. Conversion is weakly typed, with hooks for time.Duration and
// comma-separated slices. Unlike Lookup, decoding is a strict operation: a
// missing section is an error.
func (s *Store) DecodeSection(section string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	if !s.src.HasSection(section) {
		return fmt.Errorf("section %q not found in %q", section, s.name)
	}

	data := make(map[string]any)
	for _, option := range s.src.Options(section) {
		data[option] = s.src.Value(section, option)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "ini",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("decode failed for section %q: %w", section, err)
	}

	return nil
}
