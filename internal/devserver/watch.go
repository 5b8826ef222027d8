package devserver

import (
	"context"
	"time"

	"github.com/vk/blockforge/internal/fsutil"
)

// Watch polls the manifest path for changes until ctx is cancelled. On a
// newer modification time it regenerates the artifacts and broadcasts a
// reload. Polling keeps the watcher portable; manifest trees are tiny, so a
// walk per tick costs nothing noticeable.
func (s *Server) Watch(ctx context.Context, manifestPath string, interval time.Duration) {
	baseline, err := fsutil.LatestModTime(manifestPath, ".hcl")
	if err != nil {
		s.logger.Error("Manifest watch failed to establish a baseline", "path", manifestPath, "error", err)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Watching manifests for changes.", "path", manifestPath, "interval", interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			latest, err := fsutil.LatestModTime(manifestPath, ".hcl")
			if err != nil {
				s.logger.Warn("Manifest scan failed", "path", manifestPath, "error", err)
				continue
			}
			if !latest.After(baseline) {
				continue
			}
			baseline = latest
			s.logger.Info("Manifest change detected, regenerating.", "path", manifestPath)
			if err := s.regen(ctx); err != nil {
				s.logger.Error("Regeneration failed; keeping previous artifacts", "error", err)
				continue
			}
			s.broadcastReload()
		}
	}
}
