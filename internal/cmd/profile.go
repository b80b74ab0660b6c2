package cmd

import (
	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/spf13/cobra"
)

var profileUpdate api.UpdateProfileRequest

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit profiles",
}

var profileMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := service.NewProfileService(deps).Me(cmd.Context())
		if err != nil {
			return err
		}
		return service.DisplayProfile(p)
	},
}

var profileGetCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Show another user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := service.NewProfileService(deps).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return service.DisplayProfile(p)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change your username, name, bio or avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := service.NewProfileService(deps).Update(cmd.Context(), profileUpdate)
		if err != nil {
			return err
		}
		return service.DisplayProfile(p)
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileUpdate.Username, "username", "", "New username")
	profileUpdateCmd.Flags().StringVar(&profileUpdate.FullName, "full-name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileUpdate.Bio, "bio", "", "Short bio")
	profileUpdateCmd.Flags().StringVar(&profileUpdate.AvatarURL, "avatar-url", "", "Avatar image URL")

	profileCmd.AddCommand(profileMeCmd)
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
