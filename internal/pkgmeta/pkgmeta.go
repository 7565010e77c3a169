// Package pkgmeta validates and normalizes package name, version and
// release strings before they reach the generated recipe.
package pkgmeta

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// NamePlaceholder replaces a package name whose sanitization stripped
// every character.
const NamePlaceholder = "_"

var (
	nameRunPattern = regexp.MustCompile(`[a-z0-9@._+]+`)
	versionPattern = regexp.MustCompile(`^[a-z0-9._]+$`)
	releasePattern = regexp.MustCompile(`^[0-9]+$`)
)

// SanitizeName lower-cases raw, keeps the maximal runs of characters
// valid in a package name and joins them with hyphens. Sanitizing an
// already-sanitized name is a no-op.
func SanitizeName(raw string) string {
	lowered := strings.ToLower(raw)
	name := strings.Join(nameRunPattern.FindAllString(lowered, -1), "-")
	if name == "" {
		name = NamePlaceholder
	}
	if name != lowered {
		logrus.Warnf("package name sanitized: %q -> %q", raw, name)
	}
	return name
}

// ParseVersion splits a VER or VER-REL spec into its version and release
// components. The release defaults to "1" and must be a positive integer.
func ParseVersion(spec string) (string, string, error) {
	parts := strings.Split(spec, "-")
	if len(parts) > 2 {
		return "", "", fmt.Errorf("too many hyphens in version %q", spec)
	}

	version := strings.ToLower(parts[0])
	if !versionPattern.MatchString(version) {
		return "", "", fmt.Errorf("invalid version %q", parts[0])
	}

	release := "1"
	if len(parts) == 2 {
		release = parts[1]
	}
	if !releasePattern.MatchString(release) {
		return "", "", fmt.Errorf("invalid release %q", release)
	}
	if release == "0" {
		return "", "", fmt.Errorf("release cannot be zero")
	}

	return version, release, nil
}
