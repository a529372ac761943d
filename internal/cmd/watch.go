package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atikulmunna/loglens/internal/source"
	"github.com/atikulmunna/loglens/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze a log file whenever it changes",
	Long: `Analyze a log file, then print a fresh report each time the file is
written or replaced. Every report is a full re-read of the file.

Examples:
  loglens watch /var/log/nginx/access.log
  loglens watch access.log --top 5 --path "/api/**"`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	// --- Set up context with graceful shutdown ---
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nloglens: stopping watch")
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	path := args[0]
	w, err := watcher.New(path)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	go w.Start(ctx)

	out := cmd.OutOrStdout()
	report := func() error {
		text, err := source.Load(path, nil)
		if err != nil {
			return err
		}
		return analyze(out, text, cfg)
	}

	if err := report(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "loglens: watching %s (Ctrl+C to stop)\n", w.Path())

	for ev := range w.Events {
		// A save is a burst of events, and a Create may arrive before the
		// writer has filled the file. Report once the file has gone quiet.
		if !settle(w.Events, settleDelay) {
			break
		}
		slog.Debug("log file changed", "path", ev.Path, "op", ev.Op.String())

		if err := report(); err != nil {
			// The file may be mid-rotation; wait for the next event.
			slog.Warn("re-analysis failed", "path", ev.Path, "err", err)
		}
	}

	return nil
}

// settleDelay is how long the file must stay quiet before it is re-analyzed.
var settleDelay = 150 * time.Millisecond

// settle discards events on ch until none has arrived for delay.
// It returns false if ch is closed.
func settle(ch <-chan watcher.Event, delay time.Duration) bool {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return false
			}
		case <-time.After(delay):
			return true
		}
	}
}
