package cmd

import (
	clierrors "github.com/sense-social/sense/cli/pkg/errors"
	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/sense-social/sense/cli/pkg/prompter"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	loginEmail       string
	loginPassword    string
	registerUsername string
	registerEmail    string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Log in, register and manage the stored session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Sense",
	Long:  "Authenticate with email and password. Missing values are prompted for.",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := flagOrPrompt(loginEmail, "Email: ")
		if err != nil {
			return err
		}
		password := loginPassword
		if password == "" {
			if password, err = prompter.PromptPassword("Password: "); err != nil {
				return err
			}
		}

		u, err := service.NewAuthService(deps).Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		output.PrintSuccess("Logged in as %s", u.Username)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Sense account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := flagOrPrompt(registerUsername, "Username: ")
		if err != nil {
			return err
		}
		email, err := flagOrPrompt(registerEmail, "Email: ")
		if err != nil {
			return err
		}
		password, err := prompter.PromptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := prompter.PromptPassword("Confirm password: ")
		if err != nil {
			return err
		}

		u, err := service.NewAuthService(deps).Register(cmd.Context(), username, email, password, confirm)
		if err != nil {
			return err
		}
		output.PrintSuccess("Welcome to Sense, %s!", u.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := service.NewAuthService(deps).Logout(cmd.Context()); err != nil {
			output.PrintWarning("Session cleared locally, but the backend logout failed")
			return err
		}
		output.PrintSuccess("Logged out")
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"me", "whoami"},
	Short:   "Verify the stored session with the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := service.NewAuthService(deps).Check(cmd.Context())
		if err != nil {
			return err
		}
		if u == nil {
			return clierrors.NotLoggedInError()
		}
		return service.DisplayUser(u)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email")

	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(checkCmd)
}
