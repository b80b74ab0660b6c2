package cmd

import (
	"fmt"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	feedLimit  int
	feedOffset int
	feedPages  int
	feedAll    bool
)

var feedCmd = &cobra.Command{
	Use:   "feed [global|me|saved|user <user-id>]",
	Short: "Show a feed",
	Long: `Show a page of a feed. Without arguments the global feed is shown.

  me     publications by the logged-in user
  saved  publications the logged-in user saved
  user   publications by another user

With --pages or --all, successive pages are loaded until the feed runs out.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := feedSourceFromArgs(args)
		if err != nil {
			return err
		}

		d := deps
		if feedLimit > 0 {
			d.PageSize = feedLimit
		}
		svc := service.NewFeedService(d)

		var feed *api.Feed
		if feedAll || feedPages > 0 {
			if feedOffset != 0 {
				return fmt.Errorf("--offset cannot be combined with --pages or --all")
			}
			pages := feedPages
			if feedAll {
				pages = 0
			}
			feed, err = svc.Collect(cmd.Context(), src, pages)
		} else {
			feed, err = svc.Page(cmd.Context(), src, 0, feedOffset)
		}
		if err != nil {
			return err
		}
		return service.DisplayFeed(src.String()+" feed", feed)
	},
}

func feedSourceFromArgs(args []string) (api.FeedSource, error) {
	kind, userID := "", ""
	if len(args) > 0 {
		kind = args[0]
	}
	if len(args) > 1 {
		userID = args[1]
	}
	if userID != "" && kind != string(api.FeedUser) {
		return api.FeedSource{}, fmt.Errorf("only the user feed takes an id")
	}
	return api.ParseFeedSource(kind, userID)
}

func init() {
	feedCmd.Flags().IntVar(&feedLimit, "limit", 0, "Items per page (default from feed.page_size)")
	feedCmd.Flags().IntVar(&feedOffset, "offset", 0, "Number of items to skip")
	feedCmd.Flags().IntVar(&feedPages, "pages", 0, "Load this many pages")
	feedCmd.Flags().BoolVar(&feedAll, "all", false, "Load every page")
}
