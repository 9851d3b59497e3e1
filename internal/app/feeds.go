package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/five82/backscroll/internal/config"
	"github.com/five82/backscroll/internal/logtail"
	"github.com/five82/backscroll/internal/ui"
)

const heartbeatLine = "heartbeat"

// newFeeds returns the background producers for this run: one follower per
// file plus the heartbeat when a schedule is configured.
func newFeeds(opts Options, cfg *config.Config, logger *zap.Logger) []ui.Feed {
	var feeds []ui.Feed
	seen := make(map[string]bool)
	for _, path := range append(append([]string(nil), cfg.Follow...), opts.Follow...) {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		feeds = append(feeds, followFeed(path, cfg.TailLines, logger))
	}
	if cfg.Heartbeat != "" {
		feeds = append(feeds, heartbeatFeed(cfg.Heartbeat, logger))
	}
	return feeds
}

// followFeed logs every line of path, prefixed with the file's base name.
func followFeed(path string, backlog int, logger *zap.Logger) ui.Feed {
	name := filepath.Base(path)
	return func(ctx context.Context, log func(any)) error {
		logger.Debug("following file", zap.String("path", path), zap.Int("backlog", backlog))
		err := logtail.Follow(ctx, path, backlog, func(line string) {
			log(name + ": " + line)
		})
		if err != nil {
			return fmt.Errorf("follow %s: %w", path, err)
		}
		return nil
	}
}

// heartbeatFeed logs the same line on every cron tick. With dedup on the
// console shows it once with a growing counter.
func heartbeatFeed(spec string, logger *zap.Logger) ui.Feed {
	return func(ctx context.Context, log func(any)) error {
		c := cron.New()
		if _, err := c.AddFunc(spec, func() {
			logger.Debug("heartbeat")
			log(heartbeatLine)
		}); err != nil {
			return fmt.Errorf("schedule heartbeat %q: %w", spec, err)
		}
		c.Start()
		<-ctx.Done()
		<-c.Stop().Done()
		return nil
	}
}
