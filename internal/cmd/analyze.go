package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/loglens/internal/aggregator"
	"github.com/atikulmunna/loglens/internal/filter"
	"github.com/atikulmunna/loglens/internal/output"
	"github.com/atikulmunna/loglens/internal/parser"
	"github.com/atikulmunna/loglens/internal/source"
)

// settings is the resolved configuration for one analysis run.
type settings struct {
	top      int
	topPaths int
	filter   *filter.PathFilter
	color    bool
}

// loadSettings resolves flags, environment and config file through viper.
func loadSettings() (settings, error) {
	top := viper.GetInt("top")
	if top < 1 {
		return settings{}, fmt.Errorf("invalid top count %d: must be at least 1", top)
	}
	topPaths := viper.GetInt("top-paths")
	if topPaths < 0 {
		return settings{}, fmt.Errorf("invalid top-paths count %d: must not be negative", topPaths)
	}

	pf, err := filter.NewPathFilter(viper.GetStringSlice("paths"))
	if err != nil {
		return settings{}, fmt.Errorf("path filter: %w", err)
	}

	return settings{
		top:      top,
		topPaths: topPaths,
		filter:   pf,
		color:    !viper.GetBool("no-color"),
	}, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	text, err := source.Load(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	return analyze(cmd.OutOrStdout(), text, cfg)
}

// analyze runs one full parse-aggregate-render pass over text.
// Finding no entries is reported on out and is not an error.
func analyze(out io.Writer, text string, cfg settings) error {
	return analyzeWith(parser.NewAccessParser(), output.NewTextRenderer(out, cfg.color), text, cfg)
}

func analyzeWith(p *parser.AccessParser, renderer output.Renderer, text string, cfg settings) error {
	records := p.ParseAll(text)
	slog.Debug("parsed access log", "records", len(records))

	records = cfg.filter.Apply(records)
	slog.Debug("applied path filter", "records", len(records))

	stats, err := aggregator.Summarize(records,
		aggregator.WithTop(cfg.top),
		aggregator.WithTopPaths(cfg.topPaths),
	)
	if errors.Is(err, aggregator.ErrNoEntries) {
		return renderer.RenderEmpty()
	}
	if err != nil {
		return err
	}

	return renderer.Render(stats)
}
