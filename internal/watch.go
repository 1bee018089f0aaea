package internal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lowerpower/www.mycal.net/internal/sse"
	"github.com/lowerpower/www.mycal.net/internal/storage"
)

// watch monitors the data directory and rebuilds the site when a term file
// changes. Events are debounced and a checksum snapshot gates the rebuild,
// so editor noise (touches, atomic-save renames) that leaves content
// unchanged does not trigger one. Build results are published to connected
// preview clients through the broker.
func watch(ctx context.Context, cfg *Config, logger *slog.Logger, broker *sse.Broker) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(cfg.Data.Path); err != nil {
		return err
	}

	store, err := storage.NewFS(cfg.Data.Path)
	if err != nil {
		return err
	}
	snapshot := snapshotChecksums(store, logger)

	logger.Info("watcher: started", slog.String("root", cfg.Data.Path))

	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time

	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(200 * time.Millisecond)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-rebuildCh:
			current := snapshotChecksums(store, logger)
			if checksumsEqual(snapshot, current) {
				logger.Debug("watcher: content unchanged, skipping rebuild")
				continue
			}
			count, err := build(cfg, logger)
			if err != nil {
				// A broken edit should not kill the preview; report
				// and wait for the next change.
				logger.Error("watcher: rebuild failed", slog.String("error", err.Error()))
				broker.Publish(sse.BuildFailed(err))
				continue
			}
			// The rebuild may have backfilled identifiers, so resnapshot
			// after it instead of reusing the pre-build state.
			snapshot = snapshotChecksums(store, logger)
			broker.Publish(sse.BuildCompleted(count))
			logger.Info("watcher: site rebuilt", slog.Int("terms", count))

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
				scheduleRebuild()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// snapshotChecksums returns the checksum per term file path. A listing
// failure logs and returns nil, which never compares equal to a non-empty
// snapshot, forcing a rebuild attempt.
func snapshotChecksums(store storage.Provider, logger *slog.Logger) map[string]string {
	infos, err := store.List(".json")
	if err != nil {
		logger.Warn("watcher: list failed", slog.String("error", err.Error()))
		return nil
	}
	out := make(map[string]string, len(infos))
	for _, info := range infos {
		out[info.Path] = info.Checksum
	}
	return out
}

func checksumsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for p, cs := range a {
		if b[p] != cs {
			return false
		}
	}
	return true
}
