package api

import "strings"

// NormalizeRole maps any casing of a backend role onto the lowercase client
// roles. Unknown or empty roles become RoleUser.
func NormalizeRole(role string) Role {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "creator":
		return RoleCreator
	case "expert":
		return RoleExpert
	default:
		return RoleUser
	}
}

// NormalizeUser converts a wire user. The statistic block is dropped.
func NormalizeUser(u UserResponse) User {
	return User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		IconURL:      u.IconURL,
		RegisteredAt: u.RegisteredAt,
		Description:  u.Description,
		Role:         NormalizeRole(u.Role),
	}
}

// NormalizeFeedItem converts a wire feed item into a Publication. Missing
// counters become 0 and missing flags false. Media is never set here; only
// the enricher resolves it.
func NormalizeFeedItem(item FeedItem) Publication {
	p := Publication{
		ID:              item.ID,
		AuthorID:        item.AuthorID,
		Type:            item.Type,
		Title:           item.Title,
		Content:         item.Content,
		Source:          item.Source,
		PublicationDate: item.PublicationDate,
		Visibility:      item.Visibility,
		LikesCount:      intOrZero(item.LikesCount),
		CommentsCount:   intOrZero(item.CommentsCount),
		SavedCount:      intOrZero(item.SavedCount),
		IsLiked:         boolOrFalse(item.IsLiked),
		IsSaved:         boolOrFalse(item.IsSaved),
	}
	if item.Author != nil {
		author := NormalizeUser(*item.Author)
		p.Author = &author
	}
	return p
}

// NormalizeFeedItems converts a slice of wire items, keeping order
func NormalizeFeedItems(items []FeedItem) []Publication {
	out := make([]Publication, 0, len(items))
	for _, item := range items {
		out = append(out, NormalizeFeedItem(item))
	}
	return out
}

// NormalizeComment converts a wire comment. An empty parent id is treated
// as a top-level comment.
func NormalizeComment(c CommentResponse) Comment {
	out := Comment{
		ID:            c.ID,
		PublicationID: c.PublicationID,
		AuthorID:      c.AuthorID,
		Text:          c.Text,
		CreatedAt:     c.CreatedAt,
		LikesCount:    intOrZero(c.LikesCount),
		IsLiked:       boolOrFalse(c.IsLiked),
	}
	if c.ParentID != nil && *c.ParentID != "" {
		parent := *c.ParentID
		out.ParentID = &parent
	}
	if c.Author != nil {
		author := NormalizeUser(*c.Author)
		out.Author = &author
	}
	return out
}

// NormalizeComments converts a comment list. A null items array yields nil.
func NormalizeComments(resp CommentsResponse) []Comment {
	if len(resp.Items) == 0 {
		return nil
	}
	out := make([]Comment, 0, len(resp.Items))
	for _, c := range resp.Items {
		out = append(out, NormalizeComment(c))
	}
	return out
}

// NormalizeProfile converts a wire user into the profile view
func NormalizeProfile(u UserResponse) Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Bio:       u.Description,
		AvatarURL: u.IconURL,
		CreatedAt: u.RegisteredAt,
		Role:      NormalizeRole(u.Role),
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func boolOrFalse(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
