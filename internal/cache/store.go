package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"aochelper/internal/aocerr"
)

// Store persists raw inputs by key. Load reports ok=false on a miss.
type Store interface {
	Load(key Key) (data []byte, ok bool, err error)
	Save(key Key, data []byte) error
}

// FileStore keeps one file per key at {Dir}/{year}/day{day}.txt.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file backing key.
func (s *FileStore) Path(key Key) string {
	return filepath.Join(s.Dir, fmt.Sprint(key.Year), fmt.Sprintf("day%d.txt", key.Day))
}

// Load reads the cached file. A missing or empty file is a miss.
func (s *FileStore) Load(key Key) ([]byte, bool, error) {
	path := s.Path(key)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, aocerr.CacheIO("read", path, err)
	}
	if len(b) == 0 {
		return nil, false, nil
	}
	return b, true, nil
}

// Save writes data via a temp file in the same directory, then renames it
// into place so readers never see a partial file.
func (s *FileStore) Save(key Key, data []byte) error {
	path := s.Path(key)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return aocerr.CacheIO("mkdir", dir, err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return aocerr.CacheIO("create temp", dir, err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return aocerr.CacheIO("write", tmp, err)
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return aocerr.CacheIO("chmod", tmp, err)
	}
	if err := f.Close(); err != nil {
		return aocerr.CacheIO("close", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return aocerr.CacheIO("rename", path, err)
	}
	return nil
}

// MemoryStore is an in-process Store, mainly for tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[Key][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Key][]byte)}
}

func (s *MemoryStore) Load(key Key) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.entries[key]
	if !ok || len(b) == 0 {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (s *MemoryStore) Save(key Key, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = append([]byte(nil), data...)
	return nil
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
