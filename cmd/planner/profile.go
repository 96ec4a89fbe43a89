package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/user"
)

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change a user's profile and notification settings",
	}
	cmd.AddCommand(
		newProfileGetCommand(),
		newProfileSetNameCommand(),
		newProfileEmailCommand(),
	)
	return cmd
}

func newProfileGetCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				u, err := c.Profiles.GetProfile(ctx)
				if err != nil {
					return err
				}
				return printProfile(cmd.OutOrStdout(), flags.asJSON, u)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newProfileSetNameCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "set-name <name>",
		Short: "Change the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				u, err := c.Profiles.UpdateProfile(ctx, user.UpdateProfileInput{Name: args[0]})
				if err != nil {
					return err
				}
				return printProfile(cmd.OutOrStdout(), flags.asJSON, u)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newProfileEmailCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:       "email <on|off>",
		Short:     "Turn email notifications on or off",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			ctx, _, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				u, err := c.Profiles.UpdateEmailSettings(ctx, user.UpdateEmailSettingsInput{Enabled: &enabled})
				if err != nil {
					return err
				}
				return printProfile(cmd.OutOrStdout(), flags.asJSON, u)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func parseSwitch(raw string) (bool, error) {
	switch raw {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q: want on or off", raw)
	}
}

func printProfile(w io.Writer, asJSON bool, u *domain.User) error {
	out := newProfileOutput(u)
	if asJSON {
		return writeJSON(w, out)
	}
	email := "off"
	if out.EmailNotificationsEnabled {
		email = "on"
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\t%s\n", out.ID)
	fmt.Fprintf(tw, "name\t%s\n", out.Name)
	fmt.Fprintf(tw, "email\t%s\n", out.Email)
	fmt.Fprintf(tw, "timezone\t%s\n", out.Timezone)
	fmt.Fprintf(tw, "credits\t%d\n", out.Credits)
	fmt.Fprintf(tw, "email notifications\t%s\n", email)
	return tw.Flush()
}
