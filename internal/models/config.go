package models

// BuildConfig contains configuration for a packaging run
type BuildConfig struct {
	// Input font files
	FontPaths []string

	// Package metadata
	Name        string // overrides the derived package name when set
	VersionSpec string // VER or VER-REL
	Description string

	// Build mode (mutually exclusive)
	Install    bool // build and install immediately
	SourceOnly bool // produce a source archive instead of a binary package
}
