package cmd

import (
	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose [prompt...]",
	Short: "Draft text with the AI composer",
	Long: `Send a prompt to the AI composer and print the suggested text.
The prompt is read interactively when no arguments are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := textFromArgs(args, "Prompt")
		if err != nil {
			return err
		}
		text, err := service.NewComposeService(deps).Compose(cmd.Context(), prompt)
		if err != nil {
			return err
		}
		if output.IsStructured() {
			return output.Print(map[string]string{"prompt": prompt, "response": text})
		}
		output.Println(text)
		return nil
	},
}
