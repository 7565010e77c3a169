package font

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Type represents the type of font file
type Type int

const (
	TypeUnknown Type = iota
	TypeTTF
	TypeOTF
)

// String returns the string representation of Type
func (t Type) String() string {
	switch t {
	case TypeTTF:
		return "TTF"
	case TypeOTF:
		return "OTF"
	default:
		return "unknown"
	}
}

// File represents a validated input font file
type File struct {
	Path string // path as supplied on the command line
	Base string // base filename
	Stem string // base filename without extension
	Type Type
}

// TypeFromExt determines the font type from a filename extension,
// case-insensitively. Returns TypeUnknown for anything else.
func TypeFromExt(ext string) Type {
	switch strings.ToUpper(strings.TrimPrefix(ext, ".")) {
	case "TTF":
		return TypeTTF
	case "OTF":
		return TypeOTF
	default:
		return TypeUnknown
	}
}

// ValidateFiles derives and checks per-file metadata for each input path.
// Extensions must be TTF or OTF and base filenames must be pairwise
// distinct; the first violation aborts validation.
func ValidateFiles(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	seen := make(map[string]bool)

	for _, path := range paths {
		base := filepath.Base(path)
		ext := filepath.Ext(base)

		t := TypeFromExt(ext)
		if t == TypeUnknown {
			return nil, fmt.Errorf("%s is not a recognized font type (expected .ttf or .otf)", base)
		}

		if seen[base] {
			return nil, fmt.Errorf("duplicate font filename: %s", base)
		}
		seen[base] = true

		files = append(files, File{
			Path: path,
			Base: base,
			Stem: strings.TrimSuffix(base, ext),
			Type: t,
		})
	}

	return files, nil
}
