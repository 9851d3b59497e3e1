package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/backscroll/internal/console"
	"github.com/five82/backscroll/internal/live"
	"github.com/five82/backscroll/internal/prefs"
	"github.com/five82/backscroll/internal/state"
)

const (
	defaultFrameInterval = 100 * time.Millisecond
	maxConsoleLines      = 200
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	console       *console.Console
	store         *state.Store
	clock         *live.Clock
	size          *live.Value[string]
	maxLines      *live.Value[int]
	logger        *zap.Logger
	prefs         prefs.Prefs
	prefsPath     string
	frameInterval time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	bar      progress.Model
	input    textinput.Model
	editing  bool
	showHelp bool
	width    int
	height   int
	ready    bool

	// Watches created from the input line, by name
	inputWatches map[string]*live.Value[string]
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	frameInterval := opts.FrameInterval
	if frameInterval <= 0 {
		frameInterval = defaultFrameInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Default()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	theme := GetTheme(p.Theme)

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "text to log, or name=value to watch"
	input.CharLimit = 256

	return Model{
		console:       opts.Console,
		store:         store,
		clock:         opts.Clock,
		size:          opts.Size,
		maxLines:      opts.MaxLines,
		logger:        logger,
		prefs:         p,
		prefsPath:     prefsPath,
		frameInterval: frameInterval,
		theme:         theme,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		bar:           newProgressBar(theme),
		input:         input,
		inputWatches:  make(map[string]*live.Value[string]),
	}
}

func newProgressBar(t Theme) progress.Model {
	return progress.New(
		progress.WithSolidFill(t.Accent),
		progress.WithoutPercentage(),
	)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.bar.Width = max(msg.Width-4, 10)
		m.input.Width = max(msg.Width-6, 10)
		if m.size != nil {
			m.size.Set(fmt.Sprintf("%dx%d", msg.Width, msg.Height))
		}
		return m, nil

	case frameMsg:
		if m.clock != nil {
			m.clock.Tick(time.Time(msg))
		}
		return m, frameCmd(m.frameInterval)

	case LogMsg:
		m.console.Log(msg.Value)
		return m, nil

	case feedErrMsg:
		m.store.RecordError(msg.err)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input outside the input line.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.bar = newProgressBar(m.theme)
		m.bar.Width = max(m.width-4, 10)
		m.prefs.Theme = m.theme.Name
		m.savePrefs()

	case key.Matches(msg, m.keys.Up):
		m.console.ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.console.ScrollDown()
	case key.Matches(msg, m.keys.Top):
		m.console.ScrollToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.console.ScrollToBottom()

	case key.Matches(msg, m.keys.Clear):
		m.console.Clear()
		for name, v := range m.inputWatches {
			v.Dispose()
			delete(m.inputWatches, name)
		}

	case key.Matches(msg, m.keys.Lock):
		m.console.SetLocked(!m.console.Locked())

	case key.Matches(msg, m.keys.Timestamps):
		on := !m.console.Timestamps()
		m.console.SetTimestamps(on)
		m.prefs = m.prefs.WithTimestamps(on)
		m.savePrefs()

	case key.Matches(msg, m.keys.MoreLines):
		m.resize(m.console.MaxLines() + 1)
	case key.Matches(msg, m.keys.FewerLines):
		m.resize(m.console.MaxLines() - 1)

	case key.Matches(msg, m.keys.Input):
		m.editing = true
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	}

	return m, nil
}

// resize changes the console height within [1, maxConsoleLines].
func (m *Model) resize(n int) {
	n = min(max(n, 1), maxConsoleLines)
	if n == m.console.MaxLines() {
		return
	}
	if m.maxLines != nil {
		m.maxLines.Set(n)
	} else {
		m.console.SetMaxLines(n)
	}
	m.prefs = m.prefs.WithMaxLines(n)
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
