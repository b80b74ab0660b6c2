package cmd

import (
	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comments on publications",
	Long:  "List, write, edit, delete and like comments and replies",
}

var commentListCmd = &cobra.Command{
	Use:   "list <publication-id>",
	Short: "Show the comments on a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comments, err := service.NewCommentService(deps).List(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return service.DisplayComments(comments)
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <publication-id> [text...]",
	Short: "Comment on a publication",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textFromArgs(args[1:], "Comment")
		if err != nil {
			return err
		}
		c, err := service.NewCommentService(deps).Add(cmd.Context(), args[0], text)
		if err != nil {
			return err
		}
		return service.DisplayComment(c)
	},
}

var commentGetCmd = &cobra.Command{
	Use:   "get <comment-id>",
	Short: "Show one comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := service.NewCommentService(deps).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return service.DisplayComment(c)
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <comment-id> [text...]",
	Short: "Replace the text of a comment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textFromArgs(args[1:], "New text")
		if err != nil {
			return err
		}
		c, err := service.NewCommentService(deps).Edit(cmd.Context(), args[0], text)
		if err != nil {
			return err
		}
		return service.DisplayComment(c)
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := service.NewCommentService(deps).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		output.PrintSuccess("Deleted comment %s", args[0])
		return nil
	},
}

var commentReplyCmd = &cobra.Command{
	Use:   "reply <comment-id> [text...]",
	Short: "Reply to a comment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textFromArgs(args[1:], "Reply")
		if err != nil {
			return err
		}
		c, err := service.NewCommentService(deps).Reply(cmd.Context(), args[0], text)
		if err != nil {
			return err
		}
		return service.DisplayComment(c)
	},
}

var commentLikeCmd = &cobra.Command{
	Use:   "like <comment-id>",
	Short: "Like or unlike a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := service.NewCommentService(deps).Like(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return service.DisplayComment(c)
	},
}

func init() {
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentGetCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	commentCmd.AddCommand(commentReplyCmd)
	commentCmd.AddCommand(commentLikeCmd)
}
