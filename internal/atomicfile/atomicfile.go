// Package atomicfile replaces files in a single rename so readers never
// observe a partially written file.
package atomicfile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile streams the output of write into a temporary file next to path
// and renames it over path once write, Sync and Close have all succeeded.
// On any failure the temporary file is removed and path is left untouched.
//
// A missing or unwritable directory is reported as the *fs.PathError from
// creating the temporary file.
func WriteFile(path string, write func(io.Writer) error, perm fs.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
