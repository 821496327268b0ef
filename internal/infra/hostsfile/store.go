package hostsfile

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/astromechza/eha/internal/domain"
)

// Store reads and writes one hosts file on disk.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "hostsfile.read",
			Kind: kind,
			Path: s.path,
			Err:  err,
		}
	}
	return b, nil
}

// Write replaces the file contents via a temp file in the same directory
// followed by a rename, keeping the original permissions. Rename is atomic
// on POSIX so a crash mid-write never leaves a half-written hosts file.
func (s *Store) Write(b []byte) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".eha-*.tmp")
	if err != nil {
		return s.wrap(err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		return s.wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return s.wrap(err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return s.wrap(err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return s.wrap(err)
	}
	return nil
}

func (s *Store) wrap(err error) error {
	return &domain.OpError{
		Op:   "hostsfile.write",
		Kind: domain.KindExecution,
		Path: s.path,
		Err:  err,
	}
}
