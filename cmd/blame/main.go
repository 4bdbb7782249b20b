// Command blame prints the recent activity of a CMS project once and exits:
// the latest updates and publishes across all models and who did what last.
//
// Configuration is read like the server's (config.yaml or environment);
// flags override the activity settings for a single invocation.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/cms-blame/internal/app"
	"github.com/heartmarshall/cms-blame/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(os.Stdout, config.Load).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "blame: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	format   string
	source   string
	feedSize int
	window   int
}

// cli holds what PersistentPreRunE builds for the subcommands.
type cli struct {
	out    io.Writer
	load   func() (*config.Config, error)
	opts   options
	engine *app.Engine
	log    *slog.Logger
}

// NewRootCmd constructs the root CLI command. load supplies the configuration
// so tests can point the engine at a fake CMS.
func NewRootCmd(out io.Writer, load func() (*config.Config, error)) *cobra.Command {
	c := &cli{out: out, load: load}

	root := &cobra.Command{
		Use:           "blame",
		Short:         "Show who recently changed what in the CMS",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOverview(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.opts.format, "format", "f", formatText, "output format: text or json")
	flags.StringVar(&c.opts.source, "source", "", "activity source: records, audit or auto (default from config)")
	flags.IntVarP(&c.opts.feedSize, "limit", "n", 0, "entries per feed (default from config)")
	flags.IntVar(&c.opts.window, "window", 0, "records fetched per model (default from config)")

	root.AddCommand(newFeedCmd(c))
	root.AddCommand(newRosterCmd(c))
	root.AddCommand(newActorCmd(c))

	return root
}

func (c *cli) setup() error {
	if c.opts.format != formatText && c.opts.format != formatJSON {
		return fmt.Errorf("unknown format %q", c.opts.format)
	}

	cfg, err := c.load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.opts.source != "" {
		cfg.Activity.Source = c.opts.source
	}
	if c.opts.feedSize > 0 {
		cfg.Activity.FeedSize = c.opts.feedSize
	}
	if c.opts.window > 0 {
		cfg.Activity.WindowSize = c.opts.window
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.log = app.NewLogger(cfg.Log)
	c.engine = app.NewEngine(cfg, c.log)
	return nil
}
