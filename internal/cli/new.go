// internal/cli/new.go
package cli

import (
	"github.com/spf13/cobra"

	"gazette/internal/log"
	"gazette/internal/scaffold"
)

func newNewCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new site or content file",
	}
	cmd.AddCommand(
		newNewSiteCommand(),
		newNewContentCommand(a, "article", "Create an article from the default archetype"),
		newNewContentCommand(a, "page", "Create a standalone page from the page archetype"),
	)
	return cmd
}

func newNewSiteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "site <dir>",
		Short:   "Scaffold a fresh site with a starter theme",
		Example: "  gazette new site myblog",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := scaffold.Site(args[0]); err != nil {
				return err
			}
			logger := log.WithComponent("scaffold")
			logger.Info().
				Str("dir", args[0]).
				Msg("site created, run 'gazette serve' inside it to get started")
			return nil
		},
	}
}

func newNewContentCommand(a *app, kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:     kind + " <title>",
		Short:   short,
		Example: "  gazette new " + kind + " \"Hello World\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root, cfg, err := a.site()
			if err != nil {
				return err
			}
			path, err := scaffold.Content(root, cfg, kind, args[0])
			if err != nil {
				return err
			}
			logger := log.WithComponent("scaffold")
			logger.Info().Str("path", path).Msg("created")
			return nil
		},
	}
}
