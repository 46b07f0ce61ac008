/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compare

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	stratumfs "bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/parser/common"
	"bennypowers.dev/stratum/token"
)

// readConcurrency bounds concurrent file reads per directory.
const readConcurrency = 8

// File is one CSS file of a compared directory.
type File struct {
	// Path is the file path as walked.
	Path string

	// Rel is the path relative to the directory root, slash separated.
	Rel string

	Content string
}

// Directory is a loaded directory of CSS files.
type Directory struct {
	Root   string
	Files  []File
	Tokens *token.Map
}

// LoadDirectory lists every .css file under root (extension matched
// case-insensitively, paths sorted), skips files whose relative path
// matches an exclude glob, reads them concurrently and builds the token map.
// Within the map the first declaration of a name wins.
func LoadDirectory(ctx context.Context, filesystem stratumfs.FileSystem, root string, exclude []string, log *zap.Logger) (*Directory, error) {
	if log == nil {
		log = zap.NewNop()
	}
	info, err := filesystem.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, root)
	}

	var paths []string
	err = fs.WalkDir(filesystem, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".css") {
			return nil
		}
		if excluded(exclude, relPath(root, p)) {
			log.Debug("excluded", zap.String("file", p))
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCSSFiles, root)
	}
	slices.Sort(paths)

	files := make([]File, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := filesystem.ReadFile(p)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", p, err)
			}
			files[i] = File{Path: p, Rel: relPath(root, p), Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tokens := token.NewMap()
	for _, f := range files {
		for _, d := range common.ParseCustomProperties(f.Content) {
			tokens.Add(&token.Token{Name: d.Name, Value: d.Value, SourceFile: f.Path})
		}
	}
	log.Debug("loaded directory",
		zap.String("root", root),
		zap.Int("files", len(files)),
		zap.Int("tokens", tokens.Len()))

	return &Directory{Root: root, Files: files, Tokens: tokens}, nil
}

// relPath returns p relative to root. Both are cleaned first, since
// fs.WalkDir reports cleaned paths for roots such as "./dir" or "a/../b".
func relPath(root, p string) string {
	root = path.Clean(filepath.ToSlash(root))
	p = path.Clean(filepath.ToSlash(p))
	if root == "." {
		return strings.TrimPrefix(p, "/")
	}
	rel, ok := strings.CutPrefix(p, root)
	if !ok || (rel != "" && rel[0] != '/' && root != "/") {
		return p
	}
	return strings.TrimPrefix(rel, "/")
}

func excluded(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
