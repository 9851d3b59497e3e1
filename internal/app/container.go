package app

import (
	"fmt"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/five82/backscroll/internal/config"
	"github.com/five82/backscroll/internal/console"
	"github.com/five82/backscroll/internal/live"
	"github.com/five82/backscroll/internal/prefs"
	"github.com/five82/backscroll/internal/state"
	"github.com/five82/backscroll/internal/ui"
)

// session is everything Run needs once the container is resolved.
type session struct {
	dig.In

	Options  Options
	Config   *config.Config
	Prefs    prefs.Prefs
	Logger   *zap.Logger
	Clock    *live.Clock
	Size     *live.Value[string]
	Store    *state.Store
	Console  *console.Console
	MaxLines *live.Value[int]
	Feeds    []ui.Feed
}

// newContainer registers every constructor the application is built from.
func newContainer(opts Options) (*dig.Container, error) {
	d := dig.New()

	providers := []any{
		func() Options { return opts },
		loadConfig,
		loadPrefs,
		newLogger,
		newClock,
		newSizeValue,
		newStore,
		newConsole,
		bindMaxLines,
		newFeeds,
	}
	for _, p := range providers {
		if err := d.Provide(p); err != nil {
			return nil, fmt.Errorf("register provider: %w", err)
		}
	}
	return d, nil
}

func loadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func loadPrefs(opts Options, logger *zap.Logger) prefs.Prefs {
	p, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Debug("prefs unavailable, using defaults", zap.Error(err))
	}
	return p
}

func newClock() *live.Clock {
	return live.NewClock(time.Now())
}

func newSizeValue() *live.Value[string] {
	return live.NewValue("unknown")
}

func newStore() *state.Store {
	return &state.Store{}
}

// newConsole builds the engine from config, then prefs, then flags, and
// publishes its output into the store.
func newConsole(opts Options, cfg *config.Config, p prefs.Prefs, logger *zap.Logger, clock *live.Clock, store *state.Store) *console.Console {
	o := console.DefaultOptions()
	o.MaxLines = cfg.MaxLines
	o.Dedup = cfg.Collapse
	o.Timestamps = cfg.Timestamps
	o.Logger = logger.Named("console")
	if cfg.FrameRefresh {
		o.Driver = clock
	}
	if p.MaxLines != nil {
		o.MaxLines = *p.MaxLines
	}
	if p.Timestamps != nil {
		o.Timestamps = *p.Timestamps
	}
	if opts.MaxLines > 0 {
		o.MaxLines = opts.MaxLines
	}

	c := console.New(o)
	c.OnTextChanged(store.SetText)
	c.OnProgressChanged(store.SetProgress)
	return c
}

// bindMaxLines returns the value the UI pushes height changes into.
func bindMaxLines(c *console.Console) *live.Value[int] {
	v := live.NewValue(c.MaxLines())
	c.BindMaxLines(v)
	return v
}
