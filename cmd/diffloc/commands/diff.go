// Package commands implements CLI command handlers for diffloc.
package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/diffloc/pkg/config"
	"github.com/Sumatoshi-tech/diffloc/pkg/diffstat"
	"github.com/Sumatoshi-tech/diffloc/pkg/gitsrc"
	"github.com/Sumatoshi-tech/diffloc/pkg/report"
)

// revisionArgCount is the number of positional arguments: two revisions.
const revisionArgCount = 2

// DiffCommand holds configuration and dependencies for the root diff
// command.
type DiffCommand struct {
	configPath string
	format     string
	noColor    bool
	gitBinary  string
	timeout    time.Duration
	verbose    bool
	quiet      bool

	// source overrides the git subprocess in tests. Nil means the real
	// one, built from config.
	source gitsrc.Source
}

// NewRootCommand builds the root command:
//
//	diffloc <commit-from> <commit-to>
func NewRootCommand() *cobra.Command {
	return newRootCommand(&DiffCommand{})
}

func newRootCommand(d *DiffCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diffloc <commit-from> <commit-to>",
		Short: "Count lines of code changes between two git revisions",
		Long: `diffloc invokes git diff between two revisions and reports added and
removed lines per language, split into code vs. comments and
production vs. test files.

Lines are classified by file extension; empty lines and lines without
any alphanumeric character are ignored; lines starting with a
language's comment prefix (//, #) count as comments. Markdown and text
files have no comment detection.`,
		Example: `  diffloc main feature-branch
  diffloc abc123 def456
  diffloc HEAD~5 HEAD`,
		Args:          cobra.ExactArgs(revisionArgCount),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          d.run,
	}

	cmd.Flags().StringVarP(&d.format, "format", "f", "", "output format: text, table, json")
	cmd.Flags().BoolVar(&d.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&d.configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&d.gitBinary, "git", "", "git binary override")
	cmd.Flags().DurationVar(&d.timeout, "timeout", 0, "git diff timeout (0 disables)")
	cmd.PersistentFlags().BoolVarP(&d.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&d.quiet, "quiet", "q", false, "suppress diagnostics")

	return cmd
}

func (d *DiffCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(d.configPath)
	if err != nil {
		return err
	}

	d.applyFlagOverrides(cmd, cfg)

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger, err := d.newLogger(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Git.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Git.Timeout)

		defer cancel()
	}

	source := d.source
	if source == nil {
		source = gitsrc.CLI{Binary: cfg.Git.Binary, Logger: logger}
	}

	diff, err := source.Diff(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	result := diffstat.Parse(diff)

	logger.Debug("diff parsed",
		"size", humanize.Bytes(uint64(len(diff))),
		"languages", len(result.Code),
		"changes", humanize.Comma(int64(result.GrandTotal())),
	)

	renderer := report.Renderer{
		Format:  format,
		NoColor: d.colorDisabled(cfg),
	}

	return renderer.Render(cmd.OutOrStdout(), result)
}

// applyFlagOverrides lets explicitly set flags win over file and env
// configuration.
func (d *DiffCommand) applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = d.format
	}

	if cmd.Flags().Changed("git") {
		cfg.Git.Binary = d.gitBinary
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Git.Timeout = d.timeout
	}

	if d.verbose {
		cfg.Log.Level = "debug"
	}

	if d.quiet {
		cfg.Log.Level = "error"
	}
}

// colorDisabled folds together every way color can be turned off: the
// flag, the config, the NO_COLOR convention, and fatih/color's own
// TTY detection.
func (d *DiffCommand) colorDisabled(cfg *config.Config) bool {
	return d.noColor || !cfg.Output.Color || os.Getenv("NO_COLOR") != "" || color.NoColor
}

func (d *DiffCommand) newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slog.New(handler), nil
}
