// Package builder orchestrates a packaging run: input validation,
// staging, artifact generation and the external tool invocations.
package builder

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ralt/fontpkg/internal/font"
	"github.com/ralt/fontpkg/internal/models"
	"github.com/ralt/fontpkg/internal/pkgmeta"
	"github.com/ralt/fontpkg/internal/recipe"
	"github.com/ralt/fontpkg/internal/utils"
	"github.com/sirupsen/logrus"
)

// Builder runs the packaging pipeline. The external command names are
// fields so tests can point them at stubs.
type Builder struct {
	UpdSums string // checksum updater
	MakePkg string // package builder
}

// New creates a Builder wired to the standard external tools
func New() *Builder {
	return &Builder{
		UpdSums: "updpkgsums",
		MakePkg: "makepkg",
	}
}

// Run executes the full pipeline for config. Validation failures surface
// as ErrInput before any filesystem side effect; the staging directory
// and working directory are restored on every exit path.
func (b *Builder) Run(ctx context.Context, config *models.BuildConfig) error {
	files, err := font.ValidateFiles(config.FontPaths)
	if err != nil {
		return &models.FontPkgError{Type: models.ErrInput, Err: err}
	}

	for _, f := range files {
		if family, err := font.SniffFamily(f.Path); err != nil {
			logrus.Warnf("Could not read font metadata from %s: %v", f.Base, err)
		} else {
			logrus.Infof("Packaging %s (%s)", family, f.Base)
		}
	}

	desc, err := describe(files, config)
	if err != nil {
		return &models.FontPkgError{Type: models.ErrInput, Err: err}
	}

	origDir, err := os.Getwd()
	if err != nil {
		return &models.FontPkgError{Type: models.ErrExternalTool, Err: err}
	}

	restore, stagingDir, err := stage()
	if err != nil {
		return &models.FontPkgError{Type: models.ErrExternalTool, Err: err}
	}
	defer restore()

	logrus.Debugf("Staging directory: %s", stagingDir)

	for _, f := range files {
		src := f.Path
		if !filepath.IsAbs(src) {
			src = filepath.Join(origDir, src)
		}
		if err := utils.CopyFile(src, f.Base); err != nil {
			return &models.FontPkgError{
				Type: models.ErrExternalTool,
				File: f.Base,
				Err:  fmt.Errorf("failed to copy font file: %w", err),
			}
		}
	}

	if err := recipe.WritePKGBUILD(desc); err != nil {
		return &models.FontPkgError{Type: models.ErrConfig, Err: err}
	}
	if err := recipe.WriteInstallScript(desc); err != nil {
		return &models.FontPkgError{Type: models.ErrConfig, Err: err}
	}

	if err := b.runTool(ctx, b.UpdSums); err != nil {
		return &models.FontPkgError{Type: models.ErrExternalTool, Err: err}
	}

	if err := b.runTool(ctx, b.MakePkg, makePkgArgs(config)...); err != nil {
		return &models.FontPkgError{Type: models.ErrExternalTool, Err: err}
	}

	artifact := artifactName(desc, config.SourceOnly)
	if err := verifyArtifact(artifact); err != nil {
		return &models.FontPkgError{
			Type: models.ErrExternalTool,
			File: artifact,
			Err:  err,
		}
	}

	if err := utils.CopyFile(artifact, filepath.Join(origDir, artifact)); err != nil {
		return &models.FontPkgError{
			Type: models.ErrExternalTool,
			File: artifact,
			Err:  fmt.Errorf("failed to copy artifact: %w", err),
		}
	}

	if sum, err := utils.SHA256Sum(filepath.Join(origDir, artifact)); err == nil {
		logrus.Debugf("Artifact sha256: %s", sum)
	}

	logrus.Infof("Created %s", artifact)
	return nil
}

// describe assembles the package descriptor from the validated files and
// the user-supplied metadata.
func describe(files []font.File, config *models.BuildConfig) (models.PackageDescriptor, error) {
	name := config.Name
	if name == "" {
		// Derived from the first font file
		name = fmt.Sprintf("%s-%s", strings.ToLower(files[0].Type.String()), files[0].Stem)
	}
	name = pkgmeta.SanitizeName(name)

	version, release, err := pkgmeta.ParseVersion(config.VersionSpec)
	if err != nil {
		return models.PackageDescriptor{}, err
	}

	desc := models.PackageDescriptor{
		FontTypes:   make([]string, len(files)),
		FontFiles:   make([]string, len(files)),
		FontNames:   make([]string, len(files)),
		Name:        name,
		Version:     version,
		Release:     release,
		Description: config.Description,
		Arch:        "any",
	}
	for i, f := range files {
		desc.FontTypes[i] = f.Type.String()
		desc.FontFiles[i] = f.Base
		desc.FontNames[i] = f.Stem
	}

	return desc, nil
}

// makePkgArgs selects the package builder mode
func makePkgArgs(config *models.BuildConfig) []string {
	switch {
	case config.Install:
		return []string{"-i"}
	case config.SourceOnly:
		return []string{"-S"}
	default:
		return nil
	}
}

// artifactName returns the deterministic filename the package builder
// produces for desc.
func artifactName(desc models.PackageDescriptor, sourceOnly bool) string {
	if sourceOnly {
		return fmt.Sprintf("%s-%s-%s.src.tar.gz", desc.Name, desc.Version, desc.Release)
	}
	return fmt.Sprintf("%s-%s-%s-%s.pkg.tar.zst", desc.Name, desc.Version, desc.Release, desc.Arch)
}

// runTool runs an external command in the current (staging) directory,
// passing the terminal through so interactive builders keep working.
func (b *Builder) runTool(ctx context.Context, name string, args ...string) error {
	logrus.Infof("Running %s...", strings.TrimSpace(name+" "+strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
