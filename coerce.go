// File: inicfg/coerce.go
package inicfg

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// boolTokens is the fixed set of recognized boolean spellings, matched
// case-insensitively. Anything outside the table is not a boolean.
var boolTokens = map[string]bool{
	"yes": true, "true": true, "on": true, "y": true, "t": true,
	"no": false, "false": false, "off": false, "n": false, "f": false,
}

// parseNumber turns raw text into int64 or float64: a decimal point selects
// float parsing, otherwise the text must be a base-10 integer.
func parseNumber(raw string) (any, error) {
	if strings.Contains(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// parseBool looks raw text up in the boolean token table.
func parseBool(raw string) (bool, bool) {
	b, ok := boolTokens[strings.ToLower(raw)]
	return b, ok
}

// absolutePath resolves raw text to an absolute, normalized filesystem path.
// A bare filename that does not exist in the working directory is probed
// against each $PATH entry (quotes stripped) and replaced by the first hit;
// no hit leaves the value unchanged. A leading "~" expands to the home
// directory. This never fails: an unresolvable relative reference still
// comes back as a normalized absolute path.
func absolutePath(value string) string {
	dir, filename := filepath.Split(value)
	if dir == "" && !isRegularFile(value) {
		for _, entry := range filepath.SplitList(os.Getenv("PATH")) {
			entry = strings.Trim(entry, `"`)
			if entry == "" {
				continue
			}
			candidate := filepath.Join(entry, filename)
			if isRegularFile(candidate) {
				value = candidate
				break
			}
		}
	}

	value = expandHome(value)
	value = filepath.Clean(value)
	if abs, err := filepath.Abs(value); err == nil {
		value = abs
	}
	return value
}

func expandHome(value string) string {
	if value != "~" && !strings.HasPrefix(value, "~"+string(filepath.Separator)) {
		return value
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return value
	}
	if value == "~" {
		return home
	}
	return filepath.Join(home, value[2:])
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
