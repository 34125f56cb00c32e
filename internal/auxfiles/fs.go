package auxfiles

import (
	"os"
	"path/filepath"
)

// FS abstracts the filesystem operations the auxiliary file writer needs.
// The default implementation is backed by the os package; tests
// substitute an in-memory fake.
type FS interface {
	GetDirectoryName(path string) string
	TestForDirectory(path string) bool
	CreateDirectory(path string) error
	TestForExecute(path string) bool
	WriteFile(path string, contents []byte) error
	Chmod(path string, mode os.FileMode) error
}

// OSFS is the real, os-backed implementation of FS.
type OSFS struct{}

func (OSFS) GetDirectoryName(path string) string {
	return filepath.Dir(path)
}

func (OSFS) TestForDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFS) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (OSFS) TestForExecute(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&0o111 != 0
}

func (OSFS) WriteFile(path string, contents []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(contents)
	return err
}

func (OSFS) Chmod(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}
