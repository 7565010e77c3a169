package builder

import (
	"os"

	"github.com/sirupsen/logrus"
)

// stage creates a fresh temporary directory and makes it the working
// directory. The returned cleanup restores the original working
// directory and removes the temporary one; callers must defer it so the
// restore runs on every exit path.
func stage() (func(), string, error) {
	orig, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}

	dir, err := os.MkdirTemp("", "fontpkg-")
	if err != nil {
		return nil, "", err
	}

	if err := os.Chdir(dir); err != nil {
		os.RemoveAll(dir)
		return nil, "", err
	}

	cleanup := func() {
		if err := os.Chdir(orig); err != nil {
			logrus.Warnf("Failed to restore working directory: %v", err)
		}
		if err := os.RemoveAll(dir); err != nil {
			logrus.Warnf("Failed to remove staging directory: %v", err)
		}
	}
	return cleanup, dir, nil
}
