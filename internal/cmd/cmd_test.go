package cmd

import (
	"testing"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	paths := [][]string{
		{"auth", "login"}, {"auth", "register"}, {"auth", "logout"}, {"auth", "check"},
		{"feed"}, {"browse"},
		{"publication", "get"}, {"publication", "create"}, {"publication", "update"},
		{"publication", "delete"}, {"publication", "like"}, {"publication", "save"}, {"publication", "likes"},
		{"comment", "list"}, {"comment", "add"}, {"comment", "get"}, {"comment", "edit"},
		{"comment", "delete"}, {"comment", "reply"}, {"comment", "like"},
		{"profile", "me"}, {"profile", "get"}, {"profile", "update"},
		{"search", "posts"}, {"search", "users"}, {"search", "warmup"},
		{"compose"}, {"version"}, {"completion"},
	}
	for _, p := range paths {
		c, _, err := rootCmd.Find(p)
		require.NoError(t, err, p)
		assert.Equal(t, p[len(p)-1], c.Name())
	}
}

func TestCommandAliases(t *testing.T) {
	c, _, err := rootCmd.Find([]string{"post", "create"})
	require.NoError(t, err)
	assert.Equal(t, "create", c.Name())

	c, _, err = rootCmd.Find([]string{"auth", "whoami"})
	require.NoError(t, err)
	assert.Equal(t, "check", c.Name())
}

func TestFeedSourceFromArgs(t *testing.T) {
	tests := []struct {
		args    []string
		want    api.FeedSource
		wantErr bool
	}{
		{nil, api.FeedSource{Kind: api.FeedGlobal}, false},
		{[]string{"me"}, api.FeedSource{Kind: api.FeedMine}, false},
		{[]string{"saved"}, api.FeedSource{Kind: api.FeedSaved}, false},
		{[]string{"user", "u1"}, api.FeedSource{Kind: api.FeedUser, UserID: "u1"}, false},
		{[]string{"user"}, api.FeedSource{}, true},
		{[]string{"me", "u1"}, api.FeedSource{}, true},
		{[]string{"trending"}, api.FeedSource{}, true},
	}
	for _, tt := range tests {
		got, err := feedSourceFromArgs(tt.args)
		if tt.wantErr {
			assert.Error(t, err, tt.args)
			continue
		}
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got)
	}
}

func TestTextFromArgs(t *testing.T) {
	text, err := textFromArgs([]string{"hello", "there"}, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)
}
