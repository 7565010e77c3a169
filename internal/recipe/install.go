package recipe

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ralt/fontpkg/internal/models"
	"github.com/ralt/fontpkg/internal/utils"
	"github.com/sirupsen/logrus"
)

// InstallScript renders the pacman install hook for desc. The font cache
// is refreshed once, then the scale/dir indexes are rebuilt once per
// distinct font type, in alphabetical order.
func InstallScript(desc models.PackageDescriptor) ([]byte, error) {
	types := distinctTypes(desc.FontTypes)

	var buf bytes.Buffer
	buf.WriteString("post_install() {\n")
	buf.WriteString("\tfc-cache -s\n")
	for _, t := range types {
		fmt.Fprintf(&buf, "\tmkfontscale /usr/share/fonts/%s\n", t)
		fmt.Fprintf(&buf, "\tmkfontdir /usr/share/fonts/%s\n", t)
	}
	buf.WriteString("}\n")
	buf.WriteString("\npost_upgrade() {\n\tpost_install\n}\n")
	buf.WriteString("\npost_remove() {\n\tpost_install\n}\n")

	filename := InstallFilename(desc)
	if err := validateShell(filename, buf.Bytes()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// InstallFilename returns the install-hook filename for desc
func InstallFilename(desc models.PackageDescriptor) string {
	return desc.Name + ".install"
}

// WriteInstallScript renders the install hook and writes it into the
// current working directory.
func WriteInstallScript(desc models.PackageDescriptor) error {
	data, err := InstallScript(desc)
	if err != nil {
		return err
	}

	filename := InstallFilename(desc)
	logrus.Debugf("Writing %s (%d bytes)", filename, len(data))
	return utils.WriteFile(filename, data, 0644)
}

// distinctTypes deduplicates and sorts font type names so the hook is
// deterministic for identical inputs.
func distinctTypes(types []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
