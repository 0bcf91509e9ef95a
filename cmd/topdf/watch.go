package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starsunsurpass/topdf"
)

// watchSettleDelay is how long to wait after the last create event before
// starting a follow-up batch, so newly created files are fully written.
const watchSettleDelay = 500 * time.Millisecond

// watchAndConvert watches the input directories and converts new files in
// follow-up batches until ctx is canceled. Entries that failed earlier are
// retried along with the new ones. Returns the number of failures across
// all follow-up batches.
func watchAndConvert(ctx context.Context, orc *topdf.Orchestrator, dirs []string, flags *convertFlags, env *Environment) (int, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return 0, fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	for _, dir := range dirs {
		if err := watchRecursive(w, dir); err != nil {
			return 0, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Watching for new files (Ctrl-C to stop)")
	}

	failed := 0
	pending := false
	settle := time.NewTimer(watchSettleDelay)
	if !settle.Stop() {
		<-settle.C
	}

	for {
		select {
		case <-ctx.Done():
			return failed, nil

		case event, ok := <-w.Events:
			if !ok {
				return failed, nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if handleCreate(w, orc, event.Name) {
				pending = true
				settle.Reset(watchSettleDelay)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return failed, nil
			}
			slog.Error("watch error", "error", err)

		case <-settle.C:
			if !pending {
				continue
			}
			pending = false
			if orc.ConvertAll() {
				failed += pumpBatch(orc, flags.common.quiet, flags.common.verbose, env)
			}
		}
	}
}

// handleCreate reacts to one create event: new directories are added to
// the watch, new files of recognized kinds are queued. Reports whether a
// file was queued.
func handleCreate(w *fsnotify.Watcher, orc *topdf.Orchestrator, name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}

	if info.IsDir() {
		if err := watchRecursive(w, name); err != nil {
			slog.Error("could not watch new directory", "dir", name, "error", err)
		}
		return false
	}

	if topdf.DetectKind(name) == topdf.KindUnknown {
		return false
	}
	if orc.Add(name) == 0 {
		return false
	}
	slog.Info("queued new file", "path", name)
	return true
}

// watchRecursive adds a watch for dir and every subdirectory beneath it.
func watchRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}
