package output

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sense-social/sense/cli/pkg/config"
)

type sample struct {
	ID    string   `json:"id"`
	Likes int      `json:"likesCount"`
	Tags  []string `json:"tags,omitempty"`
}

func setup(t *testing.T, format string) *bytes.Buffer {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config init: %v", err)
	}
	config.Set("output.format", format)

	color.NoColor = true
	var buf bytes.Buffer
	prev := SetWriter(&buf)
	t.Cleanup(func() { SetWriter(prev) })
	return &buf
}

func TestGetOutputFormat(t *testing.T) {
	for _, f := range []string{"json", "table", "text", "yaml"} {
		setup(t, f)
		if got := GetOutputFormat(); string(got) != f {
			t.Errorf("format %s: got %s", f, got)
		}
	}

	setup(t, "bogus")
	if GetOutputFormat() != FormatText {
		t.Error("unknown formats should fall back to text")
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		isValid bool
	}{
		{"json", true},
		{"text", true},
		{"table", true},
		{"yaml", true},
		{"invalid", false},
	}

	for _, tt := range tests {
		if got := ValidateOutputFormat(tt.format); got != tt.isValid {
			t.Errorf("ValidateOutputFormat(%s): got %v, want %v", tt.format, got, tt.isValid)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	buf := setup(t, "json")

	if err := Print(sample{ID: "p1", Likes: 2}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"id\": \"p1\",\n  \"likesCount\": 2\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintYAMLKeepsFieldOrder(t *testing.T) {
	buf := setup(t, "yaml")

	if err := Print(sample{ID: "p1", Likes: 2, Tags: []string{"a", "b"}}); err != nil {
		t.Fatal(err)
	}
	want := "id: p1\nlikesCount: 2\ntags:\n    - a\n    - b\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintListTable(t *testing.T) {
	buf := setup(t, "table")

	rows := [][]string{{"p1", "2"}, {"p22", "10"}}
	if err := PrintList(nil, []string{"ID", "LIKES"}, rows); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "LIKES") {
		t.Errorf("bad header: %q", lines[0])
	}
	if strings.Index(lines[1], "2") != strings.Index(lines[2], "10") {
		t.Errorf("columns not aligned: %q", buf.String())
	}
}

func TestPrintListJSONUsesData(t *testing.T) {
	buf := setup(t, "json")

	if err := PrintList([]sample{{ID: "a"}}, []string{"ID"}, [][]string{{"a"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\"likesCount\": 0") {
		t.Errorf("expected encoded data, got %q", buf.String())
	}
}

func TestPrintRecordText(t *testing.T) {
	buf := setup(t, "text")

	err := PrintRecord("Profile", nil, []Field{{"Username", "alice"}, {"Role", "creator"}})
	if err != nil {
		t.Fatal(err)
	}
	want := "Profile\nUsername: alice\nRole:     creator\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestMessages(t *testing.T) {
	buf := setup(t, "text")

	PrintSuccess("Logged in as %s", "alice")
	PrintError("failed")
	PrintWarning("careful")
	PrintInfo("fyi")

	want := "Logged in as alice\nError: failed\nWarning: careful\nfyi\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
