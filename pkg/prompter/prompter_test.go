package prompter

import (
	"bytes"
	"strings"
	"testing"
)

func newTest(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, -1), &out
}

func TestString(t *testing.T) {
	p, out := newTest("  alice@example.com \n")
	got, err := p.String("Email: ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "alice@example.com" {
		t.Errorf("got %q", got)
	}
	if out.String() != "Email: " {
		t.Errorf("label not written: %q", out.String())
	}
}

func TestStringWithoutTrailingNewline(t *testing.T) {
	p, _ := newTest("last")
	got, err := p.String("> ")
	if err != nil || got != "last" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestPasswordFallsBackWithoutTerminal(t *testing.T) {
	p, _ := newTest("hunter22\n")
	got, err := p.Password("Password: ")
	if err != nil || got != "hunter22" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestSequentialPromptsShareBuffer(t *testing.T) {
	p, _ := newTest("bob\nsecret\ny\n")

	user, _ := p.String("user: ")
	pass, _ := p.Password("pass: ")
	ok, _ := p.Confirm("sure?")
	if user != "bob" || pass != "secret" || !ok {
		t.Errorf("got %q %q %v", user, pass, ok)
	}
}

func TestSelect(t *testing.T) {
	p, out := newTest("2\n")
	idx, err := p.Select("Type", []string{"post", "article", "quote"})
	if err != nil || idx != 1 {
		t.Errorf("got %d, %v", idx, err)
	}
	if !strings.Contains(out.String(), "3) quote") {
		t.Errorf("options not listed: %q", out.String())
	}

	p, _ = newTest("9\n")
	if _, err := p.Select("Type", []string{"post"}); err == nil {
		t.Error("expected out of range error")
	}
}

func TestMultiline(t *testing.T) {
	p, _ := newTest("line one\nline two\n\nignored\n")
	got, err := p.Multiline("Content", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != "line one\nline two" {
		t.Errorf("got %q", got)
	}
}
