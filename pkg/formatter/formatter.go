package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/output"
)

var (
	Bold    = color.New(color.Bold)
	Faint   = color.New(color.Faint)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
)

// PublicationHeaders are the table columns of PublicationRow
var PublicationHeaders = []string{"ID", "TYPE", "AUTHOR", "TITLE", "LIKES", "COMMENTS", "SAVED", "DATE"}

// PublicationRow flattens a publication into table cells
func PublicationRow(p api.Publication) []string {
	return []string{
		p.ID,
		string(p.Type),
		AuthorName(p),
		Truncate(Headline(p), 40),
		strconv.Itoa(p.LikesCount),
		strconv.Itoa(p.CommentsCount),
		strconv.Itoa(p.SavedCount),
		ShortDate(p.PublicationDate),
	}
}

// PublicationRows flattens a list of publications
func PublicationRows(ps []api.Publication) [][]string {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, PublicationRow(p))
	}
	return rows
}

// AuthorName returns @username, the author id, or "unknown"
func AuthorName(p api.Publication) string {
	if p.Author != nil && p.Author.Username != "" {
		return "@" + p.Author.Username
	}
	if p.AuthorID != "" {
		return p.AuthorID
	}
	return "unknown"
}

// Headline is the title, or the first line of the content
func Headline(p api.Publication) string {
	if p.Title != "" {
		return p.Title
	}
	line, _, _ := strings.Cut(strings.TrimSpace(p.Content), "\n")
	return line
}

// Publication renders a publication as a text card
func Publication(p api.Publication) string {
	var sb strings.Builder

	Accent.Fprintf(&sb, "[%s]", p.Type)
	sb.WriteString(" ")
	Bold.Fprint(&sb, AuthorName(p))
	if p.Author != nil && p.Author.Role != "" && p.Author.Role != api.RoleUser {
		Faint.Fprintf(&sb, " (%s)", p.Author.Role)
	}
	if d := ShortDate(p.PublicationDate); d != "" {
		Faint.Fprintf(&sb, " · %s", d)
	}
	sb.WriteString("\n")

	if p.Title != "" {
		Bold.Fprintln(&sb, p.Title)
	}
	if p.Content != "" {
		if p.Type == api.ContentQuote {
			for _, line := range strings.Split(p.Content, "\n") {
				sb.WriteString("  > " + line + "\n")
			}
		} else {
			sb.WriteString(p.Content + "\n")
		}
	}
	if p.Source != "" {
		Faint.Fprintf(&sb, "  source: %s\n", p.Source)
	}
	if p.Media != nil {
		Faint.Fprintf(&sb, "  image: %s\n", p.Media.URL)
	}

	sb.WriteString(Counters(p))
	sb.WriteString("\n")
	Faint.Fprintf(&sb, "id: %s\n", p.ID)
	return sb.String()
}

// Counters renders the like/comment/save line
func Counters(p api.Publication) string {
	like := "♡"
	if p.IsLiked {
		like = "♥"
	}
	save := "☆"
	if p.IsSaved {
		save = "★"
	}
	return fmt.Sprintf("%s %d  💬 %d  %s %d", like, p.LikesCount, p.CommentsCount, save, p.SavedCount)
}

// Comment renders a comment line, indented for replies
func Comment(c api.Comment) string {
	var sb strings.Builder
	if c.ParentID != nil {
		sb.WriteString("    ↳ ")
	}
	name := c.AuthorID
	if c.Author != nil && c.Author.Username != "" {
		name = "@" + c.Author.Username
	}
	Bold.Fprint(&sb, name)
	if d := ShortDate(c.CreatedAt); d != "" {
		Faint.Fprintf(&sb, " · %s", d)
	}
	sb.WriteString(": " + c.Text)
	if c.LikesCount > 0 {
		Faint.Fprintf(&sb, "  ♥ %d", c.LikesCount)
	}
	Faint.Fprintf(&sb, "  [%s]", c.ID)
	return sb.String()
}

// ProfileFields lists a profile as ordered record fields
func ProfileFields(p api.Profile) []output.Field {
	fields := []output.Field{
		{Key: "ID", Value: p.ID},
		{Key: "Username", Value: p.Username},
		{Key: "Email", Value: p.Email},
		{Key: "Role", Value: p.Role},
	}
	if p.Bio != "" {
		fields = append(fields, output.Field{Key: "Bio", Value: p.Bio})
	}
	if p.AvatarURL != "" {
		fields = append(fields, output.Field{Key: "Avatar", Value: p.AvatarURL})
	}
	if p.CreatedAt != "" {
		fields = append(fields, output.Field{Key: "Joined", Value: ShortDate(p.CreatedAt)})
	}
	return fields
}

// UserHeaders are the table columns of UserRow
var UserHeaders = []string{"ID", "USERNAME", "ROLE", "DESCRIPTION"}

// UserRow flattens a user into table cells
func UserRow(u api.User) []string {
	return []string{u.ID, u.Username, string(u.Role), Truncate(u.Description, 40)}
}

// ShortDate renders an RFC 3339 timestamp as a date, or returns the input
// unchanged when it does not parse.
func ShortDate(ts string) string {
	if ts == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return ts
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 1 {
		return s
	}
	return string(r[:n-1]) + "…"
}
