// Package cli implements the gh-forks command line.
//
// Running gh-forks with no subcommand opens the terminal UI, optionally on
// a location such as "owner/name?sort=1". The list subcommand prints the
// same table non-interactively and serve starts the browser front end.
// Settings come from the config file and GH_FORKS_* variables, with flags
// taking precedence.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/altinukshini/gh-forks/internal/api"
	"github.com/altinukshini/gh-forks/internal/config"
	apperrors "github.com/altinukshini/gh-forks/internal/errors"
	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/metrics"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

// terminal is the part of go-gh's term.Term the list command needs.
type terminal interface {
	IsTerminalOutput() bool
	Size() (int, int, error)
}

// CLI holds the flags and streams shared by all commands.
type CLI struct {
	stdout io.Writer
	stderr io.Writer
	term   terminal

	// baseURL overrides the REST API root.
	baseURL string

	configPath string
	verbose    bool
	retries    int
	host       string
	logFile    string
	theme      string

	cfg     config.Config
	logger  *log.Logger
	closers []io.Closer
}

func New(stdout, stderr io.Writer, term terminal) *CLI {
	return &CLI{stdout: stdout, stderr: stderr, term: term}
}

// RootCommand builds the command tree. The root command runs the terminal
// UI.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gh-forks [location]",
		Short: "Find the most active forks of a GitHub repository",
		Long: `gh-forks lists the forks of a GitHub repository in a sortable, searchable table.

The location is owner/name, a github.com URL, or a fragment with parameters
such as "owner/name?sort=1" where sort is the zero based column index.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			return c.runTUI(cmd.Context(), raw)
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gh-forks/config.toml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVar(&c.retries, "retries", api.DefaultRetries, "extra attempts after a failed request")
	flags.StringVar(&c.host, "host", api.DefaultHost, "GitHub host")
	flags.StringVar(&c.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&c.theme, "theme", config.ThemeAuto, "color theme: auto, dark or light")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.serveCommand())
	return root
}

// setup loads the config, applies changed flags on top and builds the
// logger. The terminal UI never logs to stderr so the alt screen stays
// intact.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("retries") {
		cfg.Retries = c.retries
	}
	if flags.Changed("host") {
		cfg.Host = c.host
	}
	if flags.Changed("log-file") {
		cfg.LogFile = c.logFile
	}
	if flags.Changed("theme") {
		cfg.Theme = c.theme
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.verbose
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.cfg = cfg

	var w io.Writer = c.stderr
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		c.closers = append(c.closers, f)
		w = f
	case cmd == cmd.Root():
		w = io.Discard
	}

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	c.logger = newLogger(w, level)
	cmd.SetContext(withLogger(cmd.Context(), c.logger))
	return nil
}

func (c *CLI) close() {
	for _, cl := range c.closers {
		_ = cl.Close()
	}
	c.closers = nil
}

func (c *CLI) newClient(logger *log.Logger, recorder metrics.Recorder) (*api.Client, error) {
	return api.NewClient(api.Options{
		Host:     c.cfg.Host,
		BaseURL:  c.baseURL,
		Retries:  c.cfg.Retries,
		Timeout:  c.cfg.Timeout,
		Recorder: recorder,
		Logger:   logger,
	})
}

// Execute runs the command line with the process streams.
func Execute(ctx context.Context, stdout, stderr io.Writer, term terminal) error {
	c := New(stdout, stderr, term)
	defer c.close()

	err := c.RootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, errorText(err))
	}
	return err
}

// errorText formats err for the terminal. Lookup failures read the same as
// the banner in the UI.
func errorText(err error) string {
	if apperrors.GetCode(err) != "" {
		return forks.MessageFor(err).Text
	}
	return "Error: " + err.Error()
}
