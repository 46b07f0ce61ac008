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
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses bursts of writes into one rebuild.
const DefaultDebounce = 200 * time.Millisecond

// BuildFunc receives the result of every rebuild.
type BuildFunc func(*Output, error)

// Watch rebuilds input into outDir whenever the input file is written,
// until ctx is done. The containing directory is watched so that editors
// replacing the file by rename are seen too.
func (b *Builder) Watch(ctx context.Context, input, outDir string, opts BuildOptions, debounce time.Duration, onBuild BuildFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(input)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}
	b.log.Info("watching", zap.String("file", target))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			b.log.Debug("change detected", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(debounce)

		case <-timer.C:
			out, err := b.Build(ctx, input, outDir, opts)
			if err != nil {
				b.log.Warn("rebuild failed", zap.Error(err))
			}
			if onBuild != nil {
				onBuild(out, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.log.Warn("watcher error", zap.Error(err))
		}
	}
}
