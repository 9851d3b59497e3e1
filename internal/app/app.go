package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/five82/backscroll/internal/ui"
)

// Options configure the backscroll application.
type Options struct {
	ConfigPath string
	PrefsPath  string   // empty uses default ~/.config/backscroll/prefs.toml
	Follow     []string // extra files to follow, appended to the config list
	MaxLines   int      // zero keeps the config or prefs value
	Debug      bool     // write a JSON debug log under log_dir
}

// Run boots the backscroll TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	container, err := newContainer(opts)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	return container.Invoke(func(s session) error {
		defer func() { _ = s.Logger.Sync() }()
		defer s.Console.Close()

		s.Logger.Info("starting",
			zap.Int("max_lines", s.Console.MaxLines()),
			zap.Int("feeds", len(s.Feeds)),
		)
		seed(s.Console, s.Clock, s.Size, os.Getenv)

		return ui.Run(ctx, ui.Options{
			Console:       s.Console,
			Store:         s.Store,
			Clock:         s.Clock,
			Size:          s.Size,
			MaxLines:      s.MaxLines,
			Feeds:         s.Feeds,
			Logger:        s.Logger,
			Prefs:         s.Prefs,
			PrefsPath:     s.Options.PrefsPath,
			FrameInterval: s.Config.FrameInterval,
		})
	})
}
