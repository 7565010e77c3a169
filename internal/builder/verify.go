package builder

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// verifyArtifact checks that the file the package builder produced is a
// readable compressed stream before it is copied back to the caller.
func verifyArtifact(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("artifact missing: %w", err)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("artifact is not a valid zstd stream: %w", err)
		}
		defer zr.Close()
		if _, err := io.Copy(io.Discard, zr); err != nil {
			return fmt.Errorf("artifact is truncated or corrupt: %w", err)
		}
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return fmt.Errorf("artifact is not a valid xz stream: %w", err)
		}
		if _, err := io.Copy(io.Discard, xr); err != nil {
			return fmt.Errorf("artifact is truncated or corrupt: %w", err)
		}
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("artifact is not a valid gzip stream: %w", err)
		}
		defer gr.Close()
		if _, err := io.Copy(io.Discard, gr); err != nil {
			return fmt.Errorf("artifact is truncated or corrupt: %w", err)
		}
	}

	return nil
}
