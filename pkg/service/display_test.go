package service

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/config"
	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, format string) *bytes.Buffer {
	t.Helper()
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))
	config.Set("output.format", format)

	color.NoColor = true
	var buf bytes.Buffer
	prev := output.SetWriter(&buf)
	t.Cleanup(func() { output.SetWriter(prev) })
	return &buf
}

func sampleFeed() *api.Feed {
	return &api.Feed{
		Items: []api.Publication{
			{ID: "p1", Type: api.ContentArticle, Title: "Hello", Content: "body", Author: &api.User{ID: "u1", Username: "alice"}},
			{ID: "p2", Type: api.ContentQuote, Content: "to be", Source: "Hamlet"},
		},
		Total: 2,
		Limit: 10,
	}
}

func TestDisplayFeed_Text(t *testing.T) {
	buf := captureOutput(t, "text")

	require.NoError(t, DisplayFeed("global feed", sampleFeed()))
	out := buf.String()
	assert.Contains(t, out, "global feed (2 of 2)")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Hamlet")
}

func TestDisplayFeed_JSON(t *testing.T) {
	buf := captureOutput(t, "json")

	require.NoError(t, DisplayFeed("global feed", sampleFeed()))
	assert.Contains(t, buf.String(), `"id": "p1"`)
	assert.Contains(t, buf.String(), `"total": 2`)
}

func TestDisplayFeed_Empty(t *testing.T) {
	buf := captureOutput(t, "text")

	require.NoError(t, DisplayFeed("saved", &api.Feed{}))
	assert.Contains(t, buf.String(), "No publications in saved.")
}

func TestDisplayComments_EmptyJSONIsArray(t *testing.T) {
	buf := captureOutput(t, "json")

	require.NoError(t, DisplayComments(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestDisplayUsers_Table(t *testing.T) {
	buf := captureOutput(t, "table")

	require.NoError(t, DisplayUsers([]api.User{{ID: "u1", Username: "alice", Role: api.RoleExpert}}))
	assert.Contains(t, buf.String(), "alice")
	assert.Contains(t, buf.String(), "expert")
}

func TestDisplayProfile_YAML(t *testing.T) {
	buf := captureOutput(t, "yaml")

	require.NoError(t, DisplayProfile(&api.Profile{ID: "u1", Email: "a@b.co", Role: api.RoleUser}))
	assert.Contains(t, buf.String(), "email: a@b.co")
}
