// Package app is the composition root for backscroll.
//
// # Overview
//
// This package wires configuration, preferences, the debug logger, the
// console engine and its background feeds, then hands everything to the UI.
// Construction goes through a go.uber.org/dig container so each piece is a
// small constructor that names its inputs.
//
// # Components
//
//   - app.go: Options and Run
//   - container.go: dig providers and the resolved session
//   - logger.go: zap debug logger, file-backed and tagged with a session id
//   - feeds.go: file followers (logtail.Follow) and the cron heartbeat
//   - seed.go: startup lines (greeting, runtime, locale, terminal size)
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Resolve the container
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     config.toml or config.yaml
//	       ├─────> prefs.Load()      theme, timestamps, max_lines
//	       ├─────> newLogger()       zap.NewNop() unless --debug
//	       ├─────> newConsole()      engine publishing into state.Store
//	       ├─────> newFeeds()        followers + heartbeat
//	       ├─────> seed()            startup lines
//	       └─────> ui.Run()          Bubble Tea program (blocks)
//
// # Settings Precedence
//
// The console's height and timestamp mode come from the config file, are
// overridden by saved preferences, and finally by --max-lines.
//
// # Feeds
//
// Feeds run on their own goroutines and never touch the console directly.
// The UI passes each feed a log func that posts a message into the Bubble
// Tea program, so every console call happens on the update loop.
//
//   - Follow: one logtail.Follow per configured or flagged file, lines are
//     prefixed with the file's base name
//   - Heartbeat: a robfig/cron schedule logging "heartbeat"; with collapse
//     enabled it shows up once with a growing counter
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid (bad TOML/YAML, bad heartbeat spec)
//   - Debug log directory cannot be created
//   - The Bubble Tea program fails
//
// Recoverable errors:
//   - Preferences unreadable (defaults are used)
//   - A feed fails (shown in the UI footer, other feeds keep running)
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Debug: true}); err != nil {
//		fmt.Fprintf(os.Stderr, "backscroll: %v\n", err)
//	}
package app
