package models

// PackageDescriptor holds the validated metadata for one packaging run.
// It is assembled once during validation and consumed by the recipe and
// install-hook generators; fields are never mutated after creation.
type PackageDescriptor struct {
	// Per-file metadata, index-aligned
	FontTypes []string // "TTF" or "OTF"
	FontFiles []string // base filenames, pairwise distinct
	FontNames []string // filename stems

	// Package identity
	Name        string
	Version     string
	Release     string
	Description string

	// Architecture is always "any" for font packages
	Arch string
}
