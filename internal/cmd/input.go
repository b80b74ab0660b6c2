package cmd

import (
	"strings"

	"github.com/sense-social/sense/cli/pkg/prompter"
)

const maxPromptLines = 50

// flagOrPrompt returns value, or asks for it when empty
func flagOrPrompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	s, err := prompter.PromptString(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// textFromArgs joins args into one text, or reads several lines when there
// are none
func textFromArgs(args []string, label string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return prompter.PromptMultilineString(label, maxPromptLines)
}
