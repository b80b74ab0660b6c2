package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/sense-social/sense/cli/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestBackend(t *testing.T, handler http.HandlerFunc) *Backend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackend(client.New(client.Options{BaseURL: srv.URL, Tokens: staticToken("tok")}))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestFeedSourcePaths(t *testing.T) {
	tests := []struct {
		kind, user string
		want       string
	}{
		{"", "", "/feed"},
		{"global", "", "/feed"},
		{"me", "", "/feed/me"},
		{"saved", "", "/feed/me/saved"},
		{"user", "u 1", "/feed/user/u%201"},
	}

	for _, tt := range tests {
		src, err := ParseFeedSource(tt.kind, tt.user)
		require.NoError(t, err)
		assert.Equal(t, tt.want, src.Path())
	}

	_, err := ParseFeedSource("user", "")
	assert.Error(t, err)
	_, err = ParseFeedSource("trending", "")
	assert.Error(t, err)
}

func TestGetFeed_SendsLimitAndOffset(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/me/saved", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, map[string]interface{}{
			"items":  []map[string]interface{}{{"id": "p1", "author_id": "u1", "type": "post"}},
			"total":  21,
			"limit":  10,
			"offset": 20,
		})
	})

	resp, err := b.GetFeed(context.Background(), FeedSource{Kind: FeedSaved}, 10, 20)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "u1", resp.Items[0].AuthorID)
	assert.Equal(t, 21, resp.Total)
}

func TestGetFeed_OmitsZeroOffset(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasOffset := r.URL.Query()["offset"]
		assert.False(t, hasOffset)
		writeJSON(w, map[string]interface{}{"items": []interface{}{}})
	})

	resp, err := b.GetFeed(context.Background(), FeedSource{}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestMediaURL(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/media/m1/file", r.URL.Path)
		writeJSON(w, map[string]string{"url": "https://cdn/m1.png"})
	})

	u, err := b.MediaURL(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/m1.png", u)
}

func TestMediaURL_EmptyURLIsError(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{})
	})

	_, err := b.MediaURL(context.Background(), "m1")
	assert.Error(t, err)
}

func TestUploadMedia_Multipart(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/media/upload", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "cat.png", hdr.Filename)
		assert.Equal(t, "PNGDATA", string(data))

		writeJSON(w, map[string]string{"id": "m9"})
	})

	id, err := b.UploadMedia(context.Background(), "cat.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, "m9", id)
}

func TestParseMediaID(t *testing.T) {
	id, err := parseMediaID([]byte(`"m1"`))
	require.NoError(t, err)
	assert.Equal(t, "m1", id)

	id, err = parseMediaID([]byte(`{"id":"m2"}`))
	require.NoError(t, err)
	assert.Equal(t, "m2", id)

	id, err = parseMediaID([]byte("m3\n"))
	require.NoError(t, err)
	assert.Equal(t, "m3", id)

	_, err = parseMediaID([]byte(`{}`))
	assert.Error(t, err)
}

func TestCreatePublication_DefaultsVisibility(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/publication/create", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "public", body["visibility"])
		assert.Equal(t, "quote", body["type"])
		_, hasMedia := body["mediaId"]
		assert.False(t, hasMedia)

		writeJSON(w, map[string]interface{}{"id": "p1", "type": "quote", "author_id": "u1"})
	})

	item, err := b.CreatePublication(context.Background(), CreatePublicationRequest{Type: ContentQuote, Content: "words"})
	require.NoError(t, err)
	assert.Equal(t, "p1", item.ID)
}

func TestPublicationActions(t *testing.T) {
	var calls []string
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/publication/p1/likes":
			writeJSON(w, map[string]interface{}{"items": []map[string]string{{"id": "u1", "username": "bob"}}, "total": 1})
		case "/publication/p1":
			if r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			writeJSON(w, map[string]interface{}{"id": "p1", "title": "new"})
		default:
			w.WriteHeader(http.StatusOK)
		}
	})

	ctx := context.Background()
	require.NoError(t, b.ToggleLike(ctx, "p1"))
	require.NoError(t, b.ToggleSave(ctx, "p1"))
	likes, err := b.GetLikes(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, likes.Total)
	updated, err := b.UpdatePublication(ctx, "p1", UpdatePublicationRequest{Title: "new", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	require.NoError(t, b.DeletePublication(ctx, "p1"))

	assert.Equal(t, []string{
		"POST /publication/p1/like",
		"POST /publication/p1/save",
		"GET /publication/p1/likes",
		"PUT /publication/p1",
		"DELETE /publication/p1",
	}, calls)
}

func TestComments(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /publication/p1/comments":
			writeJSON(w, map[string]interface{}{"items": nil})
		case "POST /publication/p1/comments", "POST /comment/c1/reply", "PUT /comment/c1":
			var body CommentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(w, map[string]interface{}{"id": "c2", "text": body.Content, "publication_id": "p1"})
		case "POST /comment/c1/like":
			writeJSON(w, map[string]interface{}{"id": "c1", "likes_count": 1, "is_liked": true})
		case "GET /comment/c1":
			writeJSON(w, map[string]interface{}{"id": "c1"})
		case "DELETE /comment/c1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	list, err := b.GetComments(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, NormalizeComments(*list))

	created, err := b.CreateComment(ctx, "p1", "nice")
	require.NoError(t, err)
	assert.Equal(t, "nice", created.Text)

	reply, err := b.ReplyToComment(ctx, "c1", "thanks")
	require.NoError(t, err)
	assert.Equal(t, "thanks", reply.Text)

	edited, err := b.UpdateComment(ctx, "c1", "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Text)

	liked, err := b.LikeComment(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, NormalizeComment(*liked).IsLiked)

	_, err = b.GetComment(ctx, "c1")
	require.NoError(t, err)
	require.NoError(t, b.DeleteComment(ctx, "c1"))
}

func TestSearch(t *testing.T) {
	var warmups int32
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "go lang", r.URL.Query().Get("q"))
			writeJSON(w, []map[string]interface{}{{"id": "p1", "type": "article"}})
		case "/search/users":
			writeJSON(w, []map[string]interface{}{{"id": "u1", "username": "gopher", "role": "Creator"}})
		case "/search/warmup":
			atomic.AddInt32(&warmups, 1)
			w.WriteHeader(http.StatusAccepted)
		}
	})

	ctx := context.Background()
	items, err := b.SearchPublications(ctx, "go lang")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ContentArticle, items[0].Type)

	users, err := b.SearchUsers(ctx, "gopher")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, RoleCreator, NormalizeUser(users[0]).Role)

	require.NoError(t, b.WarmupSearch(ctx))
	assert.EqualValues(t, 1, atomic.LoadInt32(&warmups))
}

func TestLoginBody(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"login": "a@b.co", "password": "secret"}, body)
		writeJSON(w, map[string]interface{}{"access_token": "jwt", "user": map[string]string{"id": "u1", "username": "a"}})
	})

	resp, err := b.Login(context.Background(), "a@b.co", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.AccessToken)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestCheckAuth_Unauthorized(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})

	_, err := b.CheckAuth(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "token expired")
}

func TestProfileEndpoints(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /profile/me":
			writeJSON(w, map[string]string{"id": "me", "username": "self"})
		case "POST /profile/me":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "new bio", body["bio"])
			_, hasName := body["full_name"]
			assert.False(t, hasName)
			writeJSON(w, map[string]string{"id": "me", "description": body["bio"]})
		case "GET /profile/u2":
			writeJSON(w, map[string]string{"id": "u2", "role": "Expert"})
		}
	})

	ctx := context.Background()
	me, err := b.GetMyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "self", me.Username)

	updated, err := b.UpdateMyProfile(ctx, UpdateProfileRequest{Bio: "new bio"})
	require.NoError(t, err)
	assert.Equal(t, "new bio", NormalizeProfile(*updated).Bio)

	other, err := b.GetUser(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, RoleExpert, NormalizeUser(*other).Role)
}

func TestCompose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/compose", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "write a haiku", body["query"])
		assert.Equal(t, map[string]interface{}{}, body["metadata"])
		writeJSON(w, map[string]string{"response": "an old silent pond"})
	}))
	defer srv.Close()

	c := NewComposer(client.New(client.Options{BaseURL: srv.URL}))
	out, err := c.Compose(context.Background(), "write a haiku")
	require.NoError(t, err)
	assert.Equal(t, "an old silent pond", out)
}
