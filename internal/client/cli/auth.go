package cli

import (
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/spf13/cobra"
)

// registerCmd opens an account. Missing values are prompted for; the
// password is always read from the terminal.
func (a *App) registerCmd() *cobra.Command {
	var email, name, birth string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = a.prompt("Enter email"); err != nil {
					return err
				}
			}
			if name == "" {
				if name, err = a.prompt("Enter full name"); err != nil {
					return err
				}
			}
			var birthdate time.Time
			if birth == "" {
				if birthdate, err = a.promptDate("Enter birthdate"); err != nil {
					return err
				}
			} else if birthdate, err = parseDate(birth); err != nil {
				return err
			}

			password, err := getPassword(a.out)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			if err := a.remote.Register(cmd.Context(), email, password, name, birthdate); err != nil {
				return a.fail("register", err)
			}
			render.Success(a.out, "Welcome, %s! You are signed in.", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&birth, "birthdate", "", "birthdate, YYYY-MM-DD")
	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = a.prompt("Enter email"); err != nil {
					return err
				}
			}
			password, err := getPassword(a.out)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			if err := a.remote.Login(cmd.Context(), email, password); err != nil {
				return a.fail("login", err)
			}
			render.Success(a.out, "Signed in as %s", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.remote.Logout(cmd.Context()); err != nil {
				render.Warning(a.errOut, "server logout failed: %v", err)
			}
			if a.cache != nil {
				if err := a.cache.Clear(cmd.Context()); err != nil {
					render.Warning(a.errOut, "offline cache not cleared: %v", err)
				}
			}
			render.Success(a.out, "Signed out")
			return nil
		},
	}
}
