package cli

import (
	"github.com/dmitrijs2005/lifeweeks/internal/api"
	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/spf13/cobra"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.remote.Profile(cmd.Context())
			if err != nil {
				return a.fail("load profile", err)
			}
			a.println(render.Profile(p, a.now()))
			return nil
		},
	}

	var name, email, birth string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields; a new birthdate renumbers every event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &api.UpdateProfileRequest{}
			if cmd.Flags().Changed("name") {
				req.FullName = &name
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("birthdate") {
				d, err := parseDate(birth)
				if err != nil {
					return err
				}
				req.Birthdate = &d
			}
			if req.FullName == nil && req.Email == nil && req.Birthdate == nil {
				render.Warning(a.errOut, "nothing to change, use --name, --email or --birthdate")
				return nil
			}

			p, err := a.remote.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return a.fail("update profile", err)
			}
			render.Success(a.out, "Profile updated")
			a.println(render.Profile(p, a.now()))
			return nil
		},
	}
	set.Flags().StringVar(&name, "name", "", "full name")
	set.Flags().StringVar(&email, "email", "", "email")
	set.Flags().StringVar(&birth, "birthdate", "", "birthdate, YYYY-MM-DD")

	cmd.AddCommand(show, set)
	return cmd
}
