package service

import (
	"fmt"
	"strconv"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/formatter"
	"github.com/sense-social/sense/cli/pkg/output"
)

// DisplayFeed prints a feed page or collection
func DisplayFeed(title string, feed *api.Feed) error {
	if output.IsStructured() {
		return output.Print(feed)
	}
	if len(feed.Items) == 0 {
		output.PrintInfo("No publications in %s.", title)
		return nil
	}
	if output.GetOutputFormat() == output.FormatTable {
		return output.PrintList(feed, formatter.PublicationHeaders, formatter.PublicationRows(feed.Items))
	}

	formatter.Bold.Fprintf(output.Writer(), "%s (%d of %d)\n\n", title, len(feed.Items), feed.Total)
	for _, p := range feed.Items {
		fmt.Fprintln(output.Writer(), formatter.Publication(p))
	}
	return nil
}

// DisplayPublications prints search hits
func DisplayPublications(title string, ps []api.Publication) error {
	return DisplayFeed(title, &api.Feed{Items: ps, Total: len(ps), Limit: len(ps)})
}

// DisplayPublication prints a single publication
func DisplayPublication(p *api.Publication) error {
	if output.IsStructured() {
		return output.Print(p)
	}
	if output.GetOutputFormat() == output.FormatTable {
		return output.PrintList(p, formatter.PublicationHeaders, [][]string{formatter.PublicationRow(*p)})
	}
	fmt.Fprint(output.Writer(), formatter.Publication(*p))
	return nil
}

// DisplayComments prints a comment thread
func DisplayComments(comments []api.Comment) error {
	if output.IsStructured() {
		if comments == nil {
			comments = []api.Comment{}
		}
		return output.Print(comments)
	}
	if len(comments) == 0 {
		output.PrintInfo("No comments yet.")
		return nil
	}
	if output.GetOutputFormat() == output.FormatTable {
		rows := make([][]string, 0, len(comments))
		for _, c := range comments {
			parent := ""
			if c.ParentID != nil {
				parent = *c.ParentID
			}
			rows = append(rows, []string{c.ID, parent, c.AuthorID, formatter.Truncate(c.Text, 50), strconv.Itoa(c.LikesCount)})
		}
		return output.PrintList(comments, []string{"ID", "PARENT", "AUTHOR", "TEXT", "LIKES"}, rows)
	}

	formatter.Bold.Fprintf(output.Writer(), "%d comment%s\n", len(comments), pluralize(len(comments)))
	for _, c := range comments {
		fmt.Fprintln(output.Writer(), formatter.Comment(c))
	}
	return nil
}

// DisplayComment prints one comment
func DisplayComment(c *api.Comment) error {
	if output.IsStructured() {
		return output.Print(c)
	}
	fmt.Fprintln(output.Writer(), formatter.Comment(*c))
	return nil
}

// DisplayProfile prints a profile record
func DisplayProfile(p *api.Profile) error {
	return output.PrintRecord("Profile", p, formatter.ProfileFields(*p))
}

// DisplayUsers prints a user list
func DisplayUsers(users []api.User) error {
	if output.IsStructured() {
		if users == nil {
			users = []api.User{}
		}
		return output.Print(users)
	}
	if len(users) == 0 {
		output.PrintInfo("No users found.")
		return nil
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, formatter.UserRow(u))
	}
	return output.PrintList(users, formatter.UserHeaders, rows)
}

// DisplayUser prints a logged-in identity
func DisplayUser(u *api.User) error {
	fields := []output.Field{
		{Key: "ID", Value: u.ID},
		{Key: "Username", Value: u.Username},
		{Key: "Email", Value: u.Email},
		{Key: "Role", Value: u.Role},
	}
	return output.PrintRecord("Logged in", u, fields)
}
