// Package filex contains small filesystem helpers shared by the credential
// and entry stores. All helpers work on a billy.Filesystem so callers can
// swap the OS filesystem for an in-memory one.
package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

const (
	DirPerm  fs.FileMode = 0o770
	FilePerm fs.FileMode = 0o600
)

// EnsureDir creates dir (and any missing parents) inside fsys.
func EnsureDir(fsys billy.Filesystem, dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := fsys.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// Exists reports whether name exists inside fsys.
func Exists(fsys billy.Filesystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// ReadFile returns the full contents of name.
func ReadFile(fsys billy.Filesystem, name string) ([]byte, error) {
	return util.ReadFile(fsys, name)
}

// WriteFile opens name for writing, creating or truncating it, and writes
// data verbatim.
func WriteFile(fsys billy.Filesystem, name string, data []byte) (err error) {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// IsNotExist reports whether err means the file or directory is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
