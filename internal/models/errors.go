package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInput ErrorType = iota
	ErrExternalTool
	ErrConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInput:
		return "Input"
	case ErrExternalTool:
		return "ExternalTool"
	case ErrConfig:
		return "Config"
	default:
		return "Unknown"
	}
}

// FontPkgError represents an error during font packaging
type FontPkgError struct {
	Type ErrorType
	File string
	Err  error
}

// Error implements the error interface
func (e *FontPkgError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.File, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *FontPkgError) Unwrap() error {
	return e.Err
}
