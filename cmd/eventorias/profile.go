package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

func newProfileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(cmd, e.session.State().User)
			return nil
		},
	}
}

func newNotificationsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Manage push notification preferences",
	}

	var token string
	enable := &cobra.Command{
		Use:   "enable",
		Short: "Opt in to notifications for a device token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			user, err := e.client.SetNotifications(cmd.Context(), true, token)
			if err != nil {
				return err
			}
			printProfile(cmd, user)
			return nil
		},
	}
	enable.Flags().StringVar(&token, "token", "", "Device push token (required)")
	_ = enable.MarkFlagRequired("token")

	disable := &cobra.Command{
		Use:   "disable",
		Short: "Opt out of notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			user, err := e.client.SetNotifications(cmd.Context(), false, "")
			if err != nil {
				return err
			}
			printProfile(cmd, user)
			return nil
		},
	}

	setToken := &cobra.Command{
		Use:   "token TOKEN",
		Short: "Replace the device token while notifications are enabled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			user, err := e.client.UpdatePushToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printProfile(cmd, user)
			return nil
		},
	}

	cmd.AddCommand(enable, disable, setToken)
	return cmd
}

func printProfile(cmd *cobra.Command, u *domain.User) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:            %s\n", u.ID)
	fmt.Fprintf(out, "Name:          %s\n", u.DisplayName())
	fmt.Fprintf(out, "Email:         %s\n", u.Email)
	if u.PhotoURL != nil {
		fmt.Fprintf(out, "Photo:         %s\n", *u.PhotoURL)
	}
	fmt.Fprintf(out, "Notifications: %s\n", onOff(u.NotificationsEnabled))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
