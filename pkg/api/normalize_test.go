package api

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"creator", RoleCreator},
		{"Creator", RoleCreator},
		{"EXPERT", RoleExpert},
		{"expert", RoleExpert},
		{"User", RoleUser},
		{"user", RoleUser},
		{"", RoleUser},
		{"moderator", RoleUser},
		{"  Creator ", RoleCreator},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRole(tt.in), "role %q", tt.in)
	}
}

func TestNormalizeFeedItem_DefaultsMissingCountersAndFlags(t *testing.T) {
	raw := `{"id":"p1","author_id":"u1","type":"post","publication_date":"2024-01-01T00:00:00Z"}`

	var item FeedItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	p := NormalizeFeedItem(item)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "u1", p.AuthorID)
	assert.Equal(t, ContentPost, p.Type)
	assert.Equal(t, "2024-01-01T00:00:00Z", p.PublicationDate)
	assert.Zero(t, p.LikesCount)
	assert.Zero(t, p.CommentsCount)
	assert.Zero(t, p.SavedCount)
	assert.False(t, p.IsLiked)
	assert.False(t, p.IsSaved)
	assert.Nil(t, p.Author)
	assert.Nil(t, p.Media)
}

func TestNormalizeFeedItem_RenamesFields(t *testing.T) {
	likes, comments, saved := 3, 2, 1
	liked, isSaved := true, true
	author := &UserResponse{
		ID:        gofakeit.UUID(),
		Username:  gofakeit.Username(),
		IconURL:   "media-42",
		Role:      "Expert",
		Statistic: map[string]interface{}{"posts": 10},
	}
	item := FeedItem{
		ID:              gofakeit.UUID(),
		AuthorID:        author.ID,
		Type:            ContentArticle,
		Title:           gofakeit.Word(),
		Content:         gofakeit.HipsterSentence(),
		Source:          "https://example.com",
		PublicationDate: "2024-02-02",
		LikesCount:      &likes,
		CommentsCount:   &comments,
		SavedCount:      &saved,
		IsLiked:         &liked,
		IsSaved:         &isSaved,
		Author:          author,
		Media:           []MediaResponse{{ID: "m1"}},
	}

	p := NormalizeFeedItem(item)
	assert.Equal(t, item.Title, p.Title)
	assert.Equal(t, item.Content, p.Content)
	assert.Equal(t, item.Source, p.Source)
	assert.Equal(t, 3, p.LikesCount)
	assert.Equal(t, 2, p.CommentsCount)
	assert.Equal(t, 1, p.SavedCount)
	assert.True(t, p.IsLiked)
	assert.True(t, p.IsSaved)
	require.NotNil(t, p.Author)
	assert.Equal(t, author.Username, p.Author.Username)
	assert.Equal(t, "media-42", p.Author.IconURL)
	assert.Equal(t, RoleExpert, p.Author.Role)
	assert.Nil(t, p.Media, "media is only set by enrichment")

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"likesCount":3`)
	assert.Contains(t, string(out), `"publicationDate":"2024-02-02"`)
	assert.NotContains(t, string(out), "statistic")
	assert.NotContains(t, string(out), "likes_count")
}

func TestPublicationJSON_QuoteWithoutMediaOmitsField(t *testing.T) {
	p := NormalizeFeedItem(FeedItem{ID: "q1", AuthorID: "u1", Type: ContentQuote, Content: "quoted"})

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &fields))
	_, hasMedia := fields["media"]
	assert.False(t, hasMedia, "unresolved media must be absent, not null")
	assert.Equal(t, "quote", fields["type"])
}

func TestNormalizeComment(t *testing.T) {
	empty := ""
	parent := "c0"

	top := NormalizeComment(CommentResponse{ID: "c1", PublicationID: "p1", AuthorID: "u1", Text: "hi", ParentID: &empty})
	assert.Nil(t, top.ParentID)
	assert.Zero(t, top.LikesCount)
	assert.False(t, top.IsLiked)

	reply := NormalizeComment(CommentResponse{ID: "c2", ParentID: &parent, Author: &UserResponse{ID: "u2", Role: "creator"}})
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, "c0", *reply.ParentID)
	require.NotNil(t, reply.Author)
	assert.Equal(t, RoleCreator, reply.Author.Role)
}

func TestNormalizeComments_NullItems(t *testing.T) {
	var resp CommentsResponse
	require.NoError(t, json.Unmarshal([]byte(`{"items":null}`), &resp))
	assert.Nil(t, NormalizeComments(resp))
}

func TestNormalizeProfile(t *testing.T) {
	u := UserResponse{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		IconURL:      "https://cdn/x.png",
		RegisteredAt: "2023-05-01",
		Description:  "bio",
		Role:         "Creator",
	}

	p := NormalizeProfile(u)
	assert.Equal(t, Profile{
		ID:        "u1",
		Email:     "alice@example.com",
		Username:  "alice",
		Bio:       "bio",
		AvatarURL: "https://cdn/x.png",
		CreatedAt: "2023-05-01",
		Role:      RoleCreator,
	}, p)
}

func TestContentTypeValid(t *testing.T) {
	assert.True(t, ContentPost.Valid())
	assert.True(t, ContentArticle.Valid())
	assert.True(t, ContentQuote.Valid())
	assert.False(t, ContentType("story").Valid())
}
