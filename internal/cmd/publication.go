package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/sense-social/sense/cli/pkg/prompter"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/sense-social/sense/cli/pkg/validate"
	"github.com/spf13/cobra"
)

var (
	pubType    string
	pubTitle   string
	pubContent string
	pubSource  string
	pubImage   string
	pubYes     bool
)

var publicationCmd = &cobra.Command{
	Use:     "publication",
	Aliases: []string{"pub", "post"},
	Short:   "Manage publications",
	Long:    "Create, view, edit and react to posts, articles and quotes",
}

var publicationGetCmd = &cobra.Command{
	Use:   "get <publication-id>",
	Short: "Show a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := service.NewPublicationService(deps).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return service.DisplayPublication(p)
	},
}

var publicationCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a post, article or quote",
	Long: `Publish a new publication.

  post     free text, optionally with one image (--image)
  article  requires --title
  quote    the quoted text, optionally with --source

Content is read interactively when --content is omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := validate.Draft{
			Type:   api.ContentType(pubType),
			Title:  pubTitle,
			Source: pubSource,
		}
		if !draft.Type.Valid() {
			return validate.Errors{"type": fmt.Sprintf("Unknown type %q (use post, article or quote)", pubType)}
		}

		content := pubContent
		if content == "" {
			var err error
			if content, err = prompter.PromptMultilineString("Content", maxPromptLines); err != nil {
				return err
			}
		}
		draft.Content = content

		if pubImage != "" {
			data, err := os.ReadFile(pubImage)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}
			draft.ImageName = filepath.Base(pubImage)
			draft.Image = data
		}

		p, err := service.NewPublicationService(deps).Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		if !output.IsStructured() {
			output.PrintSuccess("Published %s %s", p.Type, p.ID)
		}
		return service.DisplayPublication(p)
	},
}

var publicationUpdateCmd = &cobra.Command{
	Use:   "update <publication-id>",
	Short: "Edit the title or content of a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := service.NewPublicationService(deps).Update(cmd.Context(), args[0], pubTitle, pubContent)
		if err != nil {
			return err
		}
		return service.DisplayPublication(p)
	},
}

var publicationDeleteCmd = &cobra.Command{
	Use:   "delete <publication-id>",
	Short: "Delete a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !pubYes {
			ok, err := prompter.PromptConfirm(fmt.Sprintf("Delete publication %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				output.PrintInfo("Cancelled")
				return nil
			}
		}
		if err := service.NewPublicationService(deps).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		output.PrintSuccess("Deleted publication %s", args[0])
		return nil
	},
}

var publicationLikeCmd = &cobra.Command{
	Use:   "like <publication-id>",
	Short: "Like or unlike a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := service.NewPublicationService(deps).ToggleLike(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !output.IsStructured() {
			if p.IsLiked {
				output.PrintSuccess("Liked %s", p.ID)
			} else {
				output.PrintInfo("Removed like from %s", p.ID)
			}
		}
		return service.DisplayPublication(p)
	},
}

var publicationSaveCmd = &cobra.Command{
	Use:   "save <publication-id>",
	Short: "Save or unsave a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := service.NewPublicationService(deps).ToggleSave(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !output.IsStructured() {
			if p.IsSaved {
				output.PrintSuccess("Saved %s", p.ID)
			} else {
				output.PrintInfo("Removed %s from saved", p.ID)
			}
		}
		return service.DisplayPublication(p)
	},
}

var publicationLikesCmd = &cobra.Command{
	Use:   "likes <publication-id>",
	Short: "List who liked a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		users, total, err := service.NewPublicationService(deps).Likes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !output.IsStructured() {
			output.PrintInfo("%d like%s", total, pluralS(total))
		}
		return service.DisplayUsers(users)
	},
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func init() {
	publicationCreateCmd.Flags().StringVar(&pubType, "type", string(api.ContentPost), "Publication type: post, article or quote")
	publicationCreateCmd.Flags().StringVar(&pubTitle, "title", "", "Title (articles)")
	publicationCreateCmd.Flags().StringVar(&pubContent, "content", "", "Body text")
	publicationCreateCmd.Flags().StringVar(&pubSource, "source", "", "Source of a quote")
	publicationCreateCmd.Flags().StringVar(&pubImage, "image", "", "Image file to attach (posts only)")

	publicationUpdateCmd.Flags().StringVar(&pubTitle, "title", "", "New title")
	publicationUpdateCmd.Flags().StringVar(&pubContent, "content", "", "New content")

	publicationDeleteCmd.Flags().BoolVarP(&pubYes, "yes", "y", false, "Skip the confirmation prompt")

	publicationCmd.AddCommand(publicationGetCmd)
	publicationCmd.AddCommand(publicationCreateCmd)
	publicationCmd.AddCommand(publicationUpdateCmd)
	publicationCmd.AddCommand(publicationDeleteCmd)
	publicationCmd.AddCommand(publicationLikeCmd)
	publicationCmd.AddCommand(publicationSaveCmd)
	publicationCmd.AddCommand(publicationLikesCmd)
}
