package auth

import (
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/cryptox"
	"github.com/dmitrijs2005/gophdiary/internal/filex"
	"github.com/go-git/go-billy/v5"
)

// DefaultPasswordFile is the credential path used when none is configured.
const DefaultPasswordFile = "data/password.dat"

// Authenticator stores and verifies the diary password.
//
// It keeps no state between calls: every method goes back to the file.
type Authenticator struct {
	fs   billy.Filesystem
	path string
}

// NewAuthenticator returns an Authenticator whose credential file lives at
// path inside fsys. An empty path selects DefaultPasswordFile.
func NewAuthenticator(fsys billy.Filesystem, path string) *Authenticator {
	if path == "" {
		path = DefaultPasswordFile
	}
	return &Authenticator{fs: fsys, path: path}
}

// Path returns the credential file location inside the filesystem.
func (a *Authenticator) Path() string {
	return a.path
}

// IsFirstRun reports whether no credential file exists yet.
func (a *Authenticator) IsFirstRun() bool {
	return !filex.Exists(a.fs, a.path)
}

// SavePassword hashes password and writes the digest as the entire content
// of the credential file, replacing anything that was there.
func (a *Authenticator) SavePassword(password []byte) error {
	if err := filex.EnsureDir(a.fs, filepath.Dir(a.path)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIO, err)
	}
	if err := filex.WriteFile(a.fs, a.path, cryptox.HexDigest(password)); err != nil {
		return fmt.Errorf("%w: save password: %w", common.ErrIO, err)
	}
	return nil
}

// CheckPassword reports whether password matches the stored digest.
// A missing or unreadable credential file never matches.
func (a *Authenticator) CheckPassword(password []byte) bool {
	stored, err := filex.ReadFile(a.fs, a.path)
	if err != nil {
		return false
	}
	return cryptox.Match(stored, password)
}
