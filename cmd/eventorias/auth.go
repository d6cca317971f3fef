package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/eventorias-backend/internal/client"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/session"
)

func newSignUpCmd(opts *options) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			user, err := outcome(e.session.SignUp(cmd.Context(), email, password))
			if err != nil {
				return err
			}
			return printSignedIn(cmd, user)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(opts *options) *cobra.Command {
	var req client.RegisterRequest
	var photo string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account with a name and optional profile photo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, closeFile, err := openFile(photo)
			if err != nil {
				return fmt.Errorf("open photo: %w", err)
			}
			defer closeFile()
			req.Photo = file

			e, err := opts.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			user, err := outcome(e.session.Register(cmd.Context(), req))
			if err != nil {
				return err
			}
			return printSignedIn(cmd, user)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&photo, "photo", "", "Path to a profile photo")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd(opts *options) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			user, err := outcome(e.session.SignIn(cmd.Context(), email, password))
			if err != nil {
				return err
			}
			return printSignedIn(cmd, user)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginGoogleCmd(opts *options) *cobra.Command {
	var idToken string

	cmd := &cobra.Command{
		Use:   "login-google",
		Short: "Sign in with a Google ID token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.open(cmd.Context(), false)
			if err != nil {
				return err
			}

			var signIn session.GoogleSignIn
			if idToken != "" {
				signIn = func(context.Context) (string, error) { return idToken, nil }
			}
			user, err := outcome(e.session.SignInWithGoogle(cmd.Context(), signIn))
			if err != nil {
				return err
			}
			return printSignedIn(cmd, user)
		},
	}

	cmd.Flags().StringVar(&idToken, "id-token", "", "ID token from the Google sign-in flow")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			if err := e.session.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func printSignedIn(cmd *cobra.Command, user *domain.User) error {
	log.Debug().Str("user_id", user.ID.String()).Msg("signed in")
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.DisplayName(), user.Email)
	return err
}
