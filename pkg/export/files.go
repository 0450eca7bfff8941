package export

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(data []byte, path string) (err error) {
	// Ensure output directory exists
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", dir)
		return err
	}

	// Write file
	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write file: %s", path)
		return err
	}

	return err
}

// RemoveFiles deletes every path, stopping at the first failure.
func RemoveFiles(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove file: %s", path)
			return err
		}
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}
