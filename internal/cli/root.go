// internal/cli/root.go
// Package cli assembles the gazette command tree.
package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"gazette/internal/config"
	"gazette/internal/log"
	"gazette/internal/version"
)

// app holds the global flags shared by every subcommand.
type app struct {
	configPath string
	debug      bool
	quiet      bool
}

// site resolves the site root and loads its configuration. The root is the
// directory holding the config file; all content and output paths are
// relative to it.
func (a *app) site() (string, config.Config, error) {
	path, err := filepath.Abs(a.configPath)
	if err != nil {
		return "", config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", config.Config{}, err
	}
	return filepath.Dir(path), cfg, nil
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:     "gazette",
		Short:   "gazette is a static blog generator",
		Version: version.String(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := "info"
			if a.quiet {
				level = "error"
			}
			if a.debug {
				level = "debug"
			}
			log.Configure(log.Config{Level: level, Console: true})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "site.yaml", "path to the site configuration file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")

	cmd.AddCommand(
		newBuildCommand(a),
		newServeCommand(a),
		newNewCommand(a),
		newCleanCommand(a),
	)
	return cmd
}

// Execute runs the CLI. Errors are logged here once, with cobra's own
// error printing silenced.
func Execute(ctx context.Context) error {
	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		logger := log.Base()
		logger.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
