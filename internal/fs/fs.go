// Package fs provides the filesystem abstraction used by sniperctl.
package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// FS is the subset of filesystem operations sniperctl needs.
type FS interface {
	Stat(path string) (iofs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(path string) error
}

// RealFS implements FS on the host filesystem.
type RealFS struct{}

// NewRealFS returns the host filesystem.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (RealFS) Stat(path string) (iofs.FileInfo, error)     { return os.Stat(path) }
func (RealFS) ReadFile(path string) ([]byte, error)        { return os.ReadFile(path) }
func (RealFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (RealFS) Rename(oldpath, newpath string) error        { return os.Rename(oldpath, newpath) }
func (RealFS) Remove(path string) error                    { return os.Remove(path) }

func (RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Exists reports whether path exists. Errors other than not-exist are returned.
func Exists(fsys FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// CopyFile copies src to dst, keeping the source permission bits.
// The copy is written next to dst and renamed into place so a partially
// written dst is never observed.
func CopyFile(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	tmp := dst + ".tmp"
	if err := fsys.WriteFile(tmp, data, info.Mode().Perm()); err != nil {
		return err
	}
	if err := fsys.Rename(tmp, dst); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}

// Verify RealFS implements FS (compile-time check)
var _ FS = (*RealFS)(nil)
