// Package fsio defines the narrow filesystem surface the engine reads
// through. Status and glob logic never touch the os package directly, so
// tests can run against the in-memory implementation.
package fsio

import (
	"os"
	"sort"
	"strings"
)

// Entry is one directory entry.
type Entry struct {
	Name string
	Dir  bool
}

// FS is the read-only filesystem view consumed by the engine.
type FS interface {
	// Exists reports whether path exists (file or directory).
	Exists(path string) bool
	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool
	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]Entry, error)
	// ReadFile returns the contents of a file.
	ReadFile(path string) ([]byte, error)
}

type osFS struct{}

// OS returns an FS backed by the real filesystem.
func OS() FS {
	return osFS{}
}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (osFS) ReadDir(path string) ([]Entry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, Entry{Name: e.Name(), Dir: e.IsDir()})
	}
	return result, nil
}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MemFS is an in-memory FS for tests. Paths use forward slashes.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
}

// WriteFile stores content at path, creating parent directories.
func (m *MemFS) WriteFile(path, content string) {
	m.files[path] = []byte(content)
	for dir := parent(path); dir != ""; dir = parent(dir) {
		m.dirs[dir] = struct{}{}
	}
}

// MkdirAll records a directory and its parents.
func (m *MemFS) MkdirAll(path string) {
	for dir := path; dir != ""; dir = parent(dir) {
		m.dirs[dir] = struct{}{}
	}
}

func parent(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx <= 0 {
		return ""
	}
	return path[:idx]
}

// Exists reports whether path is a stored file or directory.
func (m *MemFS) Exists(path string) bool {
	if _, ok := m.files[path]; ok {
		return true
	}
	_, ok := m.dirs[path]
	return ok
}

// DirExists reports whether path is a stored directory.
func (m *MemFS) DirExists(path string) bool {
	_, ok := m.dirs[path]
	return ok
}

// ReadDir lists immediate children of path in sorted order.
func (m *MemFS) ReadDir(path string) ([]Entry, error) {
	if !m.DirExists(path) {
		return nil, &os.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}
	seen := make(map[string]bool)
	var result []Entry
	prefix := path + "/"

	add := func(full string, dir bool) {
		rest := strings.TrimPrefix(full, prefix)
		name, _, nested := strings.Cut(rest, "/")
		if seen[name] {
			return
		}
		seen[name] = true
		result = append(result, Entry{Name: name, Dir: dir || nested})
	}

	for f := range m.files {
		if strings.HasPrefix(f, prefix) {
			add(f, false)
		}
	}
	for d := range m.dirs {
		if strings.HasPrefix(d, prefix) {
			add(d, true)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ReadFile returns the stored content of path.
func (m *MemFS) ReadFile(path string) ([]byte, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return content, nil
}
