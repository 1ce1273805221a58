// File: inicfg/doc.go

// Package inicfg provides a typed accessor layer over section-keyed
// key/value configuration sources (INI-style sections of option=value
// pairs), with on-demand coercion and graceful degradation: missing or
// malformed values yield a comma-ok absence result, never a panic.
//
// Features:
//   - On-demand coercion: raw string, integer-or-float, boolean,
//     absolute filesystem path
//   - Unique-option discovery: resolve which section owns an option
//     without naming the section
//   - Section-name validation against a required list
//   - INI sources via gopkg.in/ini.v1, plus TOML, JSON, and YAML sources
//     served through the same flat section model
//   - Struct decoding of whole sections via mapstructure
//   - Structured diagnostics via zerolog, suppressible per lookup
//   - Immutable after construction; safe for concurrent reads
//
// Quick Start:
//
//	store, err := inicfg.Load("app.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, ok := store.String("db", "host")
//	port, ok := store.Int64("db", "port")
//	debug, ok := store.Bool("db", "debug")
//
// Passing an empty section resolves it by scanning sections in stored
// order for the first one containing the option:
//
//	host, ok := store.String("", "host")
//
// Full control over coercion and logging goes through Lookup:
//
//	v, ok := store.Lookup("db", "timeout", inicfg.KindNumber, true)
//
// Absence Semantics:
// Missing section, missing option, empty raw value, and failed coercion
// all return ok=false. Errors are reserved for construction (missing file,
// no usable source) and explicit DecodeSection calls. Unless a lookup is
// silent, degraded conditions are logged: error level for missing data and
// bad coercions, warning level for empty values.
package inicfg
