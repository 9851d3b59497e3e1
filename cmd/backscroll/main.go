package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/backscroll/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "backscroll: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "backscroll",
		Short: "Bounded scrollback console for logs and live values",
		Long: `backscroll shows the most recent log lines and watched values in a
fixed-height, scrollable terminal console. Repeated lines collapse into one
line with a counter; watched values update in place.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/backscroll/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/backscroll/prefs.toml)")
	flags.StringArrayVar(&opts.Follow, "follow", nil, "file to follow into the console (repeatable)")
	flags.IntVar(&opts.MaxLines, "max-lines", 0, "visible console lines (overrides config and prefs)")
	flags.BoolVar(&opts.Debug, "debug", false, "write a JSON debug log to <log_dir>/backscroll.log")

	return cmd
}
