package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/lifeweeks/internal/client/config"
	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/spf13/cobra"
)

// getSimpleText, getPassword and getMultiline are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// NewRootCommand assembles the command tree around a.
func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lifeweeks",
		Short:         "Your life in weeks, on the command line",
		Long:          "lifeweeks records life events on a week-by-week grid of an 80 year life,\nwith attachments, statistics, curated historical events and exports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return a.open(cmd.Context(), cfg)
		},
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.profileCmd(),
		a.eventCmd(),
		a.attachCmd(),
		a.gridCmd(),
		a.weekCmd(),
		a.statsCmd(),
		a.catalogCmd(),
		a.exportCmd(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := NewApp(in, out, errOut)
	root := NewRootCommand(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			render.Error(errOut, "%v", err)
		}
		return 1
	}
	return 0
}
