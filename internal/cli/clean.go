// internal/cli/clean.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gazette/internal/builder"
	"gazette/internal/log"
)

func newCleanCommand(a *app) *cobra.Command {
	var cache bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the output directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root, cfg, err := a.site()
			if err != nil {
				return err
			}
			logger := log.WithComponent("clean")

			out := cfg.OutputDir
			if !filepath.IsAbs(out) {
				out = filepath.Join(root, out)
			}
			if filepath.Clean(out) == filepath.Clean(root) {
				return fmt.Errorf("output directory %s is the site root, refusing to remove it", out)
			}
			if err := os.RemoveAll(out); err != nil {
				return err
			}
			logger.Info().Str("dir", out).Msg("output removed")

			if cache {
				dir := filepath.Join(root, builder.CacheDirName)
				if err := os.RemoveAll(dir); err != nil {
					return err
				}
				logger.Info().Str("dir", dir).Msg("cache removed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cache, "cache", false, "also remove the content cache")
	return cmd
}
