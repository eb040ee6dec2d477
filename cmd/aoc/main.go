// Command aoc runs the two parts of a puzzle day against an input file.
//
//	aoc <day> [input-path]
//	aoc help [day]
//
// Logging goes to stderr and is silent apart from errors unless AOC_LOG or
// -v raises the level. The summary goes to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2023/internal/config"
	"aoc2023/internal/days"
	"aoc2023/internal/harness"
	"aoc2023/internal/logging"
	"aoc2023/internal/registry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// invocation is one parsed command line.
type invocation struct {
	Day        string
	InputPath  string // empty means the configured default
	Verbose    bool
	ConfigPath string
}

// cli carries the state shared by the commands of one process run.
type cli struct {
	stdout, stderr io.Writer
	registry       *registry.Registry

	verbose    bool
	configPath string

	logger *zap.Logger
	// status is the exit code decided by a command that did not fail outright.
	status int
}

func execute(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr, registry: days.Registry()}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return c.fail(err)
	}
	return c.status
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc <day> [input-path]",
		Short: "Run both parts of a puzzle day against an input file",
		Long: `aoc loads the input for a day once, runs part one and then part two,
and prints both answers with their timings.

The input path defaults to <inputs.dir>/<day><inputs.extension>
(inputs/day1.txt). Days may be written as "day1", "Day1" or "1".

Environment:
  AOC_LOG        log level: debug, info, warn, error (1/true means debug)
  AOC_INPUT_DIR  directory holding the default input files`,
		Version:       version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Environment only: an unknown day must be rejected before the
			// config file is read.
			return c.initLogger(config.FromEnv())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := invocation{Day: args[0], Verbose: c.verbose, ConfigPath: c.configPath}
			if len(args) == 2 {
				inv.InputPath = args[1]
			}
			return c.run(inv)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("aoc {{.Version}}\n")

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath, "Config file (a missing file means defaults)")
	root.Flags().BoolP("version", "V", false, "Print the version and exit")

	// cobra only installs a help command on roots that have subcommands.
	help := newHelpCmd(c)
	root.AddCommand(help)
	root.SetHelpCommand(help)
	withDayList(c, root)
	return root
}

func (c *cli) initLogger(cfg *config.Config) error {
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(cfg.Logging, c.stderr)
	if err != nil {
		return usageError{err}
	}
	c.logger = logger
	return nil
}

func (c *cli) run(inv invocation) error {
	log := logging.For(c.logger, logging.CategoryRegistry)
	timer := logging.StartTimer(log, "lookup", zap.String("day", inv.Day))
	day, err := c.registry.Lookup(inv.Day)
	if err != nil {
		log.Debug("lookup failed", zap.Duration("elapsed", timer.Elapsed()), zap.Error(err))
		return err
	}
	timer.Stop(zap.String("resolved", day.ID))

	cfg, err := c.loadConfig(inv.ConfigPath)
	if err != nil {
		return err
	}
	path := inv.InputPath
	if path == "" {
		path = cfg.InputPath(day.ID)
	}

	h := harness.New(c.logger, harness.WithSlowThreshold(cfg.GetSlowThreshold()))
	report := h.Run(day, path)

	if err := harness.WriteSummary(c.stdout, report); err != nil {
		return err
	}
	if err := harness.WriteErrors(c.stderr, report); err != nil {
		return err
	}
	c.status = exitCodeFor(report.Outcome())
	logging.For(c.logger, logging.CategoryCLI).Debug("exit",
		zap.Stringer("outcome", report.Outcome()),
		zap.Int("status", c.status))
	return nil
}

// loadConfig reads the config file and rebuilds the logger from it.
func (c *cli) loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, usageError{err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError{fmt.Errorf("config %s: %w", path, err)}
	}
	if err := c.initLogger(cfg); err != nil {
		return nil, err
	}
	if cfg.Logging.IsVerbose() {
		logging.For(c.logger, logging.CategoryConfig).Debug("config loaded",
			zap.String("path", path),
			zap.String("inputs_dir", cfg.Inputs.Dir),
			zap.String("format", cfg.Logging.Format),
			zap.Duration("slow_threshold", cfg.GetSlowThreshold()))
	}
	return cfg, nil
}

// fail prints err and returns its exit code.
func (c *cli) fail(err error) int {
	fmt.Fprintf(c.stderr, "error: %v\n", err)

	var unknown *registry.UnknownDayError
	if errors.As(err, &unknown) {
		writeDayList(c.stderr, c.registry)
	} else if exitCodeForError(err) == exitUsage {
		fmt.Fprintln(c.stderr, "Run 'aoc --help' for usage.")
	}
	return exitCodeForError(err)
}
