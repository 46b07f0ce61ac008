/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package verify

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/schema"
)

// ReadOutputs reads the emitted files from dir.
func ReadOutputs(filesystem fs.FileSystem, dir string) (Outputs, error) {
	out := make(Outputs, len(emit.Files))
	for _, name := range emit.Files {
		path := filepath.Join(dir, name)
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		out[name] = string(data)
	}
	return out, nil
}

// Runner builds an export several times under a work directory and checks
// the results.
type Runner struct {
	fs      fs.FileSystem
	log     *zap.Logger
	builder *emit.Builder
}

// NewRunner creates a runner.
func NewRunner(filesystem fs.FileSystem, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{fs: filesystem, log: log, builder: emit.NewBuilder(filesystem, log)}
}

// Run builds input into workDir, builds it twice more to compare runs,
// and builds its legacy-shaped conversion. A failed build stops the run
// and is returned as an error alongside the results gathered so far.
func (r *Runner) Run(ctx context.Context, input, workDir string, opts emit.BuildOptions) ([]Result, error) {
	base, err := r.build(ctx, input, filepath.Join(workDir, "out-base"), opts)
	if err != nil {
		return nil, err
	}
	results := []Result{RoundTrip(base), References(base), DarkParity(base)}

	first, err := r.build(ctx, input, filepath.Join(workDir, "out-idem-1"), opts)
	if err != nil {
		return results, err
	}
	second, err := r.build(ctx, input, filepath.Join(workDir, "out-idem-2"), opts)
	if err != nil {
		return results, err
	}
	results = append(results, Idempotent(first, second))

	mixedInput := filepath.Join(workDir, "mixed-collections.json")
	if err := r.writeLegacyMixed(input, mixedInput); err != nil {
		return results, err
	}
	mixed, err := r.build(ctx, mixedInput, filepath.Join(workDir, "out-mixed"), opts)
	if err != nil {
		return results, err
	}
	results = append(results, Fallback(mixed), NoGray(base), Namespaces(base), Typography(base))

	for _, res := range results {
		r.log.Debug("check", zap.String("name", res.Name), zap.Bool("pass", res.Pass))
	}
	return results, nil
}

func (r *Runner) build(ctx context.Context, input, outDir string, opts emit.BuildOptions) (Outputs, error) {
	if _, err := r.builder.Build(ctx, input, outDir, opts); err != nil {
		return nil, err
	}
	return ReadOutputs(r.fs, outDir)
}

func (r *Runner) writeLegacyMixed(input, output string) error {
	data, err := r.fs.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}
	entries, err := parser.DecodeEntries(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", input, err)
	}
	encoded, err := parser.EncodeEntries(schema.ToLegacyMixed(entries))
	if err != nil {
		return err
	}
	if err := r.fs.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}
	return r.fs.WriteFile(output, encoded, 0o644)
}
