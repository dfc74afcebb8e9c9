// internal/cli/serve.go
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"gazette/internal/builder"
	"gazette/internal/config"
	"gazette/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		opts builder.Options
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site locally and rebuild on change",
		Example: "  gazette serve\n" +
			"  gazette serve --port 8080 --drafts",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := filepath.Abs(a.configPath)
			if err != nil {
				return err
			}
			// Re-read the config on every rebuild, so site.yaml edits
			// show up without a restart.
			load := func() (config.Config, error) {
				return config.Load(path)
			}
			s := server.New(filepath.Dir(path), port, load, opts)
			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 1313, "port for the development server")
	cmd.Flags().BoolVar(&opts.Drafts, "drafts", false, "include draft articles in indexes and feeds")
	cmd.Flags().BoolVar(&opts.Unsafe, "unsafe", false, "disable HTML sanitization of rendered markdown")
	cmd.Flags().BoolVar(&opts.IgnoreCache, "ignore-cache", false, "re-parse every source file")
	return cmd
}
