package recipe

import (
	"bytes"
	"fmt"

	"mvdan.cc/sh/v3/syntax"
)

// validateShell parses rendered text as bash before it is written out.
// A parse failure means the templating produced text the package builder
// could misinterpret, so it is treated as fatal.
func validateShell(name string, data []byte) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(bytes.NewReader(data), name); err != nil {
		return fmt.Errorf("generated %s is not valid shell: %w", name, err)
	}
	return nil
}
