package domain

import "errors"

var (
	// ErrSourceNotFound means neither the configured nor the default vocabulary file exists
	ErrSourceNotFound = errors.New("vocabulary file not found")
	// ErrNoDataFound means the file exists but holds no dated vocabulary keys
	ErrNoDataFound = errors.New("no vocabulary data found in file")
	// ErrParse means the outer or inner JSON could not be decoded
	ErrParse = errors.New("malformed vocabulary data")
	// ErrPersistence means the window-state file could not be read or written
	ErrPersistence = errors.New("window state persistence failed")
)
