// File: inicfg/errors.go
package inicfg

import "errors"

var (
	// ErrConfigNotFound indicates the configuration file path does not
	// reference an existing regular file.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidSource indicates construction was attempted without a valid
	// file path, reader, or Source implementation.
	ErrInvalidSource = errors.New("invalid config source")
)
