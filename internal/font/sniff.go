package font

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Magic bytes for sfnt container detection
var sfntMagics = [][]byte{
	{0x00, 0x01, 0x00, 0x00}, // TrueType outlines
	[]byte("OTTO"),           // CFF outlines
	[]byte("true"),           // legacy Apple TrueType
	[]byte("ttcf"),           // TrueType collection
}

// SniffFamily reads a font file, checks its sfnt magic bytes and returns
// the family name recorded in its name table. The extension remains the
// authority for packaging decisions; this is informational only.
func SniffFamily(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	valid := false
	for _, magic := range sfntMagics {
		if bytes.HasPrefix(data, magic) {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("%s does not start with an sfnt magic number", path)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse font: %w", err)
	}

	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return "", fmt.Errorf("failed to read family name: %w", err)
	}

	return family, nil
}
