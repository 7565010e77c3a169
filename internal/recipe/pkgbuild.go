// Package recipe renders the PKGBUILD and install-hook text consumed by
// the external package builder.
package recipe

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ralt/fontpkg/internal/models"
	"github.com/ralt/fontpkg/internal/shell"
	"github.com/ralt/fontpkg/internal/utils"
	"github.com/sirupsen/logrus"
)

// RecipeFilename is the fixed name the package builder expects
const RecipeFilename = "PKGBUILD"

// PKGBUILD renders the build recipe for desc. The sha256sums array is
// left empty for the external checksum updater to fill in.
func PKGBUILD(desc models.PackageDescriptor) ([]byte, error) {
	name, err := shell.Escape(desc.Name, shell.DoubleQuote)
	if err != nil {
		return nil, err
	}
	pkgdesc, err := shell.Escape(desc.Description, shell.DoubleQuote)
	if err != nil {
		return nil, err
	}

	sources := make([]string, len(desc.FontFiles))
	for i, f := range desc.FontFiles {
		escaped, err := shell.Escape(f, shell.DoubleQuote)
		if err != nil {
			return nil, err
		}
		sources[i] = `"` + escaped + `"`
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "pkgname=%s\n", desc.Name)
	fmt.Fprintf(&buf, "pkgver=%s\n", desc.Version)
	fmt.Fprintf(&buf, "pkgrel=%s\n", desc.Release)
	fmt.Fprintf(&buf, "pkgdesc=\"%s\"\n", pkgdesc)
	fmt.Fprintf(&buf, "arch=('%s')\n", desc.Arch)
	fmt.Fprintf(&buf, "source=(%s)\n", strings.Join(sources, " "))
	buf.WriteString("sha256sums=()\n")
	fmt.Fprintf(&buf, "install=\"%s.install\"\n", name)
	buf.WriteString("\nPKGEXT='.pkg.tar.zst'\n")

	buf.WriteString("\npackage() {\n")
	for i, f := range desc.FontFiles {
		escaped, err := shell.Escape(f, shell.DoubleQuote)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "\tinstall -Dm644 \"%s\" \"$pkgdir/usr/share/fonts/%s/%s\"\n",
			escaped, desc.FontTypes[i], escaped)
	}
	buf.WriteString("}\n")

	if err := validateShell(RecipeFilename, buf.Bytes()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WritePKGBUILD renders the recipe and writes it into the current
// working directory, overwriting any previous one.
func WritePKGBUILD(desc models.PackageDescriptor) error {
	data, err := PKGBUILD(desc)
	if err != nil {
		return err
	}

	logrus.Debugf("Writing %s (%d bytes)", RecipeFilename, len(data))
	return utils.WriteFile(RecipeFilename, data, 0644)
}
