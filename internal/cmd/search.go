package cmd

import (
	"strings"

	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search publications and users",
}

var searchPostsCmd = &cobra.Command{
	Use:     "posts <query...>",
	Aliases: []string{"publications"},
	Short:   "Search publications",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		ps, err := service.NewSearchService(deps).Publications(cmd.Context(), query)
		if err != nil {
			return err
		}
		return service.DisplayPublications("results for \""+query+"\"", ps)
	},
}

var searchUsersCmd = &cobra.Command{
	Use:   "users <query...>",
	Short: "Search users",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := service.NewSearchService(deps).Users(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return service.DisplayUsers(users)
	},
}

var searchWarmupCmd = &cobra.Command{
	Use:    "warmup",
	Short:  "Ask the backend to prepare its search index",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := service.NewSearchService(deps).Warmup(cmd.Context()); err != nil {
			return err
		}
		output.PrintSuccess("Search index warmed up")
		return nil
	},
}

func init() {
	searchCmd.AddCommand(searchPostsCmd)
	searchCmd.AddCommand(searchUsersCmd)
	searchCmd.AddCommand(searchWarmupCmd)
}
