/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stratumfs "bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/internal/mapfs"
)

var _ stratumfs.FileSystem = (*mapfs.MapFileSystem)(nil)

func TestRootedAndUnrootedPathsAgree(t *testing.T) {
	m := mapfs.New()
	m.AddFile("/a/b.css", "x", 0o644)

	data, err := m.ReadFile("a/b.css")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
	assert.True(t, m.Exists("/a"))
	assert.False(t, m.Exists("/b"))
}

func TestWalkDir(t *testing.T) {
	m := mapfs.New()
	m.AddFile("/out/one.css", "1", 0o644)
	m.AddFile("/out/nested/two.css", "2", 0o644)

	var seen []string
	err := fs.WalkDir(m, "out", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			seen = append(seen, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"out/nested/two.css", "out/one.css"}, seen)
}

func TestMkdirTempAndRemoveAll(t *testing.T) {
	m := mapfs.New()

	first, err := m.MkdirTemp("", "verify-")
	require.NoError(t, err)
	second, err := m.MkdirTemp("/work", "run-*-dir")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/verify-1", first)
	assert.Equal(t, "/work/run-2-dir", second)

	require.NoError(t, m.WriteFile(first+"/a.css", []byte("a"), 0o644))
	require.NoError(t, m.WriteFile(first+"/deep/b.css", []byte("b"), 0o644))
	require.NoError(t, m.RemoveAll(first))
	assert.False(t, m.Exists(first))
	assert.True(t, m.Exists(second))
	require.NoError(t, m.RemoveAll("/never/there"))
}

func TestFilesOmitsDirectoryMarkers(t *testing.T) {
	m := mapfs.New()
	m.AddDir("/empty", 0o755)
	require.NoError(t, m.MkdirAll("/out", 0o755))
	require.NoError(t, m.WriteFile("/out/x.css", []byte("x"), 0o644))

	assert.Equal(t, []string{"/out/x.css"}, m.Files())
}

func TestWriteFileUnderFile(t *testing.T) {
	m := mapfs.New()
	m.AddFile("/a", "file", 0o644)
	assert.Error(t, m.WriteFile("/a/b", []byte("x"), 0o644))
	assert.Error(t, m.MkdirAll("/a", 0o755))
}
