package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/lifeweeks/internal/client/export"
	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/spf13/cobra"
)

func (a *App) exportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your timeline as JSON or CSV",
	}
	cmd.PersistentFlags().StringVarP(&dir, "dir", "o", ".", "output directory")

	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "Export profile, statistics and events as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, events, err := a.snapshot(cmd.Context())
			if err != nil {
				return a.fail("export json", err)
			}
			now := a.now()
			return a.writeExport(filepath.Join(dir, export.JSONFileName(p.FullName, now)), func(w io.Writer) error {
				return export.WriteJSON(w, p, events, now)
			})
		},
	}

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Export events as CSV, one row per event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, events, err := a.snapshot(cmd.Context())
			if err != nil {
				return a.fail("export csv", err)
			}
			return a.writeExport(filepath.Join(dir, export.CSVFileName(p.FullName, a.now())), func(w io.Writer) error {
				return export.WriteCSV(w, events)
			})
		},
	}

	cmd.AddCommand(jsonCmd, csvCmd)
	return cmd
}

func (a *App) writeExport(path string, write func(io.Writer) error) error {
	if err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	render.Success(a.out, "Exported to %s", path)
	return nil
}
