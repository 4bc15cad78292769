package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/funkybooboo/mygrep/internal/config"
	"github.com/funkybooboo/mygrep/internal/grep"
	"github.com/funkybooboo/mygrep/internal/logging"
	"github.com/funkybooboo/mygrep/internal/regex"
)

func newRootCmd() *cobra.Command {
	var (
		pattern      string
		recursive    bool
		onlyMatching bool
		colorMode    string
		include      []string
		configPath   string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "mygrep -E <pattern> [paths...]",
		Short: "Search input for lines matching a pattern",
		Long: `Search for lines matching an extended regular expression.

Without paths only the first line of standard input is searched. With paths
every line of every file is searched; -r descends into directories.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("extended-regexp") {
				return fmt.Errorf("usage: %s", cmd.Use)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				var pathErr *fs.PathError
				if errors.As(err, &pathErr) {
					return &exitError{code: exitTrouble, err: fmt.Errorf("read config: %w", err)}
				}
				return err
			}
			if cmd.Flags().Changed("color") {
				cfg.Color = colorMode
			}
			if cmd.Flags().Changed("include") {
				cfg.Include = include
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			cfg.OnlyMatching = cfg.OnlyMatching || onlyMatching

			logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if data, err := config.Marshal(cfg); err == nil {
				logger.Debug("effective config", zap.String("config", "\n"+string(data)))
			}

			mode, err := grep.ParseColorMode(cfg.Color)
			if err != nil {
				return err
			}

			re, err := regex.Compile(pattern)
			if err != nil {
				if regex.IsUnsupported(err) {
					logger.Debug("pattern uses an unsupported construct", zap.String("pattern", pattern))
				}
				return err
			}
			logger.Debug("compiled pattern", zap.String("pattern", re.String()), zap.String("ast", "\n"+re.Tree()))

			out := cmd.OutOrStdout()
			searcher := grep.New(re, out, logger, grep.Options{
				OnlyMatching: cfg.OnlyMatching,
				Color:        mode.Enabled(out),
				Recursive:    recursive,
				Include:      cfg.Include,
			})

			var found bool
			if len(args) == 0 {
				found, err = searcher.SearchFirstLine(cmd.InOrStdin())
			} else {
				found, err = searcher.SearchPaths(args)
			}
			if err != nil {
				return &exitError{code: exitTrouble, err: err}
			}
			if !found {
				return errNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "extended-regexp", "E", "", "pattern to search for")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "search directories recursively")
	cmd.Flags().BoolVarP(&onlyMatching, "only-matching", "o", false, "print only the matched parts of lines")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "highlight matches (auto, always, never)")
	cmd.Flags().StringArrayVar(&include, "include", nil, "search only files whose base name matches GLOB (with -r)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (default $"+config.EnvVar+")")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	return cmd
}
