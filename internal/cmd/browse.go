package cmd

import (
	"fmt"

	"github.com/sense-social/sense/cli/internal/tui"
	"github.com/sense-social/sense/cli/pkg/config"
	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [global|me|saved|user <user-id>]",
	Short: "Scroll through a feed interactively",
	Long: `Open a full-screen feed browser. More publications are loaded as you
scroll towards the end; the distance is set by feed.scroll_threshold.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if output.IsStructured() {
			return fmt.Errorf("browse is interactive; use the feed command for %s output", output.GetOutputFormat())
		}
		src, err := feedSourceFromArgs(args)
		if err != nil {
			return err
		}

		p := service.NewFeedService(deps).NewPaginator(src)
		return tui.Run(cmd.Context(), p, tui.Options{
			Title:     "Sense · " + src.String(),
			Threshold: config.GetInt("feed.scroll_threshold"),
		})
	},
}
