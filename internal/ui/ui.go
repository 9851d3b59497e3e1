package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/backscroll/internal/console"
	"github.com/five82/backscroll/internal/live"
	"github.com/five82/backscroll/internal/prefs"
	"github.com/five82/backscroll/internal/state"
)

// Feed produces console input from outside the update loop. It calls log for
// every value and returns when ctx is done. log is safe to call from any
// goroutine.
type Feed func(ctx context.Context, log func(v any)) error

// Options configures the UI.
type Options struct {
	Console *console.Console
	Store   *state.Store
	Clock   *live.Clock         // advanced on every frame, optional
	Size    *live.Value[string] // receives "<cols>x<rows>", optional
	Feeds   []Feed
	Logger  *zap.Logger

	// MaxLines, when bound to Console with BindMaxLines, carries height changes.
	MaxLines *live.Value[int]

	Prefs         prefs.Prefs
	PrefsPath     string
	FrameInterval time.Duration
}

// Messages

// LogMsg asks the model to log Value to the console.
type LogMsg struct{ Value any }

type frameMsg time.Time

type feedErrMsg struct{ err error }

// Run starts the Bubble Tea program and the feeds, and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	feedCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	for _, feed := range opts.Feeds {
		wg.Add(1)
		go func(feed Feed) {
			defer wg.Done()
			send := func(v any) { p.Send(LogMsg{Value: v}) }
			if err := feed(feedCtx, send); err != nil {
				m.logger.Warn("feed stopped", zap.Error(err))
				p.Send(feedErrMsg{err: err})
			}
		}(feed)
	}

	_, err := p.Run()
	cancel()
	wg.Wait()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
