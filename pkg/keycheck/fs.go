package keycheck

import (
	"io/fs"
	"os"
)

// FileStater abstracts file presence probes for testability.
type FileStater interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileStater uses the actual file system.
type RealFileStater struct{}

func (r *RealFileStater) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// MockFileStater is a test double reporting the configured paths as
// existing regular files.
type MockFileStater struct {
	Existing map[string]bool
}

func (m *MockFileStater) Stat(name string) (fs.FileInfo, error) {
	if m.Existing[name] {
		// Only presence matters to the key check.
		return nil, nil
	}
	return nil, os.ErrNotExist
}
