// Package config loads backscroll's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/backscroll/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or invalid, use defaults for those fields
//
// Files ending in .yaml or .yml are parsed as YAML; every other file is TOML.
//
// # Fields
//
//	max_lines = 10              # console viewport height (>= 1)
//	collapse = true             # count repeated lines instead of appending
//	timestamps = false          # prefix lines with the time they were logged
//	frame_interval_ms = 100     # host frame tick (min 16)
//	frame_refresh = false       # re-render every frame while watches exist
//	follow = ["~/app.log"]      # files streamed into the console
//	tail_lines = 20             # backlog read from each followed file
//	heartbeat = "@every 1m"     # cron spec for the heartbeat line, empty = off
//	log_dir = "~/.local/state/backscroll"
//
// Tilde expansion is applied to follow entries and log_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, parse errors and heartbeat specs that cron cannot parse.
// A missing file is NOT an error.
package config
