package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/validate"
)

// ComposeService drafts text with the writing assistant
type ComposeService struct {
	composer *api.Composer
}

// NewComposeService creates a new compose service
func NewComposeService(d Deps) *ComposeService {
	return &ComposeService{composer: d.Composer}
}

// Compose returns the assistant's draft for prompt
func (s *ComposeService) Compose(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", validate.Errors{"prompt": "Prompt cannot be empty"}
	}
	out, err := s.composer.Compose(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to compose: %w", err)
	}
	return out, nil
}
