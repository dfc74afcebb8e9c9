// internal/cli/build.go
package cli

import (
	"github.com/spf13/cobra"

	"gazette/internal/builder"
)

func newBuildCommand(a *app) *cobra.Command {
	var (
		opts   builder.Options
		output string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the site into the output directory",
		Example: "  gazette build\n" +
			"  gazette build --drafts --clean\n" +
			"  gazette build -o /tmp/preview",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, cfg, err := a.site()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.OutputDir = output
			}
			_, err = builder.New(root, cfg, opts).Build(cmd.Context())
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Drafts, "drafts", false, "include draft articles in indexes and feeds")
	cmd.Flags().BoolVar(&opts.Unsafe, "unsafe", false, "disable HTML sanitization of rendered markdown")
	cmd.Flags().BoolVar(&opts.IgnoreCache, "ignore-cache", false, "re-parse every source file")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "delete the output directory before building")
	cmd.Flags().StringVarP(&output, "output", "o", "", "override the configured output directory")
	return cmd
}
