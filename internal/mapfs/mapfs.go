/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// keep marks an otherwise empty directory.
const keep = ".keep"

// MapFileSystem is a FileSystem over fstest.MapFS. Paths are rooted: "/a/b"
// and "a/b" name the same file.
type MapFileSystem struct {
	mu      sync.RWMutex
	files   fstest.MapFS
	tempDir string
	temps   int
	modTime time.Time
}

// New returns an empty filesystem whose temp directory is /tmp.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:   make(fstest.MapFS),
		tempDir: "/tmp",
		modTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile seeds a file.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(p)] = m.file([]byte(content), mode)
}

// AddDir seeds an empty directory.
func (m *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirLocked(clean(p), mode)
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if f, ok := m.files[path.Dir(name)]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("not a directory")}
	}
	m.files[name] = m.file(append([]byte(nil), data...), perm)
	return nil
}

func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = clean(p)
	if f, ok := m.files[p]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}
	m.mkdirLocked(p, perm)
	return nil
}

// MkdirTemp creates dir/pattern<n> with a counter suffix, so names are
// predictable in tests. A "*" in pattern is replaced by the counter.
func (m *MapFileSystem) MkdirTemp(dir, pattern string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if dir == "" {
		dir = m.tempDir
	}
	m.temps++
	n := fmt.Sprint(m.temps)
	name := pattern + n
	if strings.Contains(pattern, "*") {
		name = strings.Replace(pattern, "*", n, 1)
	}
	p := path.Join(dir, name)
	m.mkdirLocked(clean(p), 0o700)
	return p, nil
}

// RemoveAll deletes path and everything below it. A missing path is not an
// error.
func (m *MapFileSystem) RemoveAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = clean(p)
	prefix := p + "/"
	for name := range m.files {
		if name == p || strings.HasPrefix(name, prefix) {
			delete(m.files, name)
		}
	}
	return nil
}

func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, clean(name))
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

// Exists reports whether p is a file or a directory holding anything.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true
	}
	prefix := p + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

// Files returns the rooted paths of every regular file, sorted. Directory
// markers are omitted.
func (m *MapFileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.files))
	for name := range m.files {
		if path.Base(name) == keep {
			continue
		}
		out = append(out, "/"+name)
	}
	sort.Strings(out)
	return out
}

func (m *MapFileSystem) file(data []byte, mode fs.FileMode) *fstest.MapFile {
	return &fstest.MapFile{Data: data, Mode: mode, ModTime: m.modTime}
}

func (m *MapFileSystem) mkdirLocked(p string, perm fs.FileMode) {
	m.files[path.Join(p, keep)] = m.file(nil, perm.Perm())
}

// clean maps p onto the unrooted key space of fstest.MapFS.
func clean(p string) string {
	cleaned := path.Clean("/" + p)
	return strings.TrimPrefix(cleaned, "/")
}
