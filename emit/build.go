/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/parser"
)

// BuildOptions configures a build.
type BuildOptions struct {
	Options
	Parse parser.Options
}

// Builder loads an export, renders it and writes the layered files.
type Builder struct {
	fs       fs.FileSystem
	log      *zap.Logger
	parser   *parser.ExportParser
	renderer *Renderer
}

// NewBuilder creates a builder that reads and writes through filesystem.
func NewBuilder(filesystem fs.FileSystem, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		fs:       filesystem,
		log:      log,
		parser:   parser.NewExportParser(log),
		renderer: NewRenderer(log),
	}
}

// Build renders the export at input into outDir. Nothing is written
// unless every file renders.
func (b *Builder) Build(ctx context.Context, input, outDir string, opts BuildOptions) (*Output, error) {
	graph, err := b.parser.ParseFile(b.fs, input, opts.Parse)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := b.renderer.Render(graph, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", input, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := out.Write(b.fs, outDir); err != nil {
		return nil, err
	}
	for _, name := range Files {
		b.log.Info("wrote",
			zap.String("file", filepath.Join(outDir, name)),
			zap.Int("declarations", out.Count(name)))
	}
	return out, nil
}

// Write writes every file into dir, creating it when needed.
func (o *Output) Write(filesystem fs.FileSystem, dir string) error {
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	for _, name := range Files {
		path := filepath.Join(dir, name)
		if err := filesystem.WriteFile(path, o.files[name], 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
