package recipe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ralt/fontpkg/internal/models"
	"mvdan.cc/sh/v3/syntax"
)

func testDescriptor() models.PackageDescriptor {
	return models.PackageDescriptor{
		FontTypes:   []string{"TTF", "OTF"},
		FontFiles:   []string{"A.ttf", "B.otf"},
		FontNames:   []string{"A", "B"},
		Name:        "ttf-a",
		Version:     "1.0",
		Release:     "1",
		Description: "Custom font",
		Arch:        "any",
	}
}

func TestPKGBUILD(t *testing.T) {
	data, err := PKGBUILD(testDescriptor())
	if err != nil {
		t.Fatalf("PKGBUILD failed: %v", err)
	}

	text := string(data)
	required := []string{
		"pkgname=ttf-a",
		"pkgver=1.0",
		"pkgrel=1",
		`pkgdesc="Custom font"`,
		"arch=('any')",
		`source=("A.ttf" "B.otf")`,
		"sha256sums=()",
		`install="ttf-a.install"`,
		"PKGEXT='.pkg.tar.zst'",
		`install -Dm644 "A.ttf" "$pkgdir/usr/share/fonts/TTF/A.ttf"`,
		`install -Dm644 "B.otf" "$pkgdir/usr/share/fonts/OTF/B.otf"`,
	}

	for _, want := range required {
		if !strings.Contains(text, want) {
			t.Errorf("PKGBUILD missing %q:\n%s", want, text)
		}
	}
}

func TestPKGBUILDEscapesDescription(t *testing.T) {
	desc := testDescriptor()
	desc.Description = `Say "hi"; $(rm -rf /) and ` + "`boom`!"

	data, err := PKGBUILD(desc)
	if err != nil {
		t.Fatalf("PKGBUILD failed: %v", err)
	}

	text := string(data)
	for _, want := range []string{`\"hi\"`, `\$(rm -rf /)`, "\\`boom\\`", `"'!'"`} {
		if !strings.Contains(text, want) {
			t.Errorf("Description not escaped, missing %q:\n%s", want, text)
		}
	}
}

func TestPKGBUILDEscapesFilenames(t *testing.T) {
	desc := testDescriptor()
	desc.FontTypes = []string{"TTF"}
	desc.FontFiles = []string{`Weird "Font" $1.ttf`}
	desc.FontNames = []string{`Weird "Font" $1`}

	data, err := PKGBUILD(desc)
	if err != nil {
		t.Fatalf("PKGBUILD failed: %v", err)
	}

	if !strings.Contains(string(data), `Weird \"Font\" \$1.ttf`) {
		t.Errorf("Filename not escaped:\n%s", data)
	}
}

func TestPKGBUILDIsValidShell(t *testing.T) {
	desc := testDescriptor()
	desc.Description = `tricky! "desc" with $vars and 'quotes'`

	data, err := PKGBUILD(desc)
	if err != nil {
		t.Fatalf("PKGBUILD failed: %v", err)
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(bytes.NewReader(data), "PKGBUILD"); err != nil {
		t.Errorf("Generated PKGBUILD does not parse as bash: %v\n%s", err, data)
	}
}

func TestWritePKGBUILDOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	desc := testDescriptor()
	if err := WritePKGBUILD(desc); err != nil {
		t.Fatalf("WritePKGBUILD failed: %v", err)
	}

	desc.Version = "2.0"
	if err := WritePKGBUILD(desc); err != nil {
		t.Fatalf("Second WritePKGBUILD failed: %v", err)
	}

	data, err := readFile(RecipeFilename)
	if err != nil {
		t.Fatalf("Failed to read recipe: %v", err)
	}
	if !strings.Contains(string(data), "pkgver=2.0") {
		t.Error("Recipe was not overwritten")
	}
	if strings.Contains(string(data), "pkgver=1.0") {
		t.Error("Stale recipe content left behind")
	}
}
