package cli

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/spf13/cobra"
)

func (a *App) attachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attach",
		Aliases: []string{"attachment"},
		Short:   "Manage files attached to events",
	}
	cmd.AddCommand(a.attachAddCmd(), a.attachRmCmd(), a.attachURLCmd(), a.attachGetCmd())
	return cmd
}

func (a *App) attachAddCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <event-id> <file>...",
		Short: "Upload files to an event (50 MB max each)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, failed := args[0], false
			for _, path := range args[1:] {
				att, err := a.remote.UploadAttachment(cmd.Context(), eventID, path, description)
				if err != nil {
					render.Failed(a.errOut, "upload "+filepath.Base(path), hint(err))
					failed = true
					continue
				}
				render.Success(a.out, "Uploaded %s (%s, id %s)", att.FileName, filex.FormatSize(att.FileSize), att.ID)
			}
			if failed {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "description stored with each file")
	return cmd
}

func (a *App) attachRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <attachment-id>",
		Short: "Delete an attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.remote.DeleteAttachment(cmd.Context(), args[0]); err != nil {
				return a.fail("delete attachment", err)
			}
			render.Success(a.out, "Deleted attachment %s", args[0])
			return nil
		},
	}
}

func (a *App) attachURLCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "url <attachment-id>",
		Short: "Print a time-limited download link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, expires, err := a.remote.AttachmentURL(cmd.Context(), args[0], ttl)
			if err != nil {
				return a.fail("get download link", err)
			}
			a.println(url)
			render.Info(a.errOut, "valid until %s", expires.Local().Format(time.DateTime))
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "link lifetime")
	return cmd
}

func (a *App) attachGetCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get <attachment-id>",
		Short: "Download an attachment into a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			n, err := a.remote.DownloadAttachment(cmd.Context(), args[0], f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(output)
				return a.fail("download attachment", err)
			}
			render.Success(a.out, "Saved %s (%s)", output, filex.FormatSize(n))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file")
	return cmd
}
