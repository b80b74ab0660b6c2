package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/enrich"
	"github.com/sense-social/sense/cli/pkg/logger"
	"github.com/sense-social/sense/cli/pkg/validate"
)

// PublicationService creates and manages publications
type PublicationService struct {
	backend  *api.Backend
	enricher *enrich.Enricher
}

// NewPublicationService creates a new publication service
func NewPublicationService(d Deps) *PublicationService {
	return &PublicationService{backend: d.Backend, enricher: d.Enricher}
}

// Get fetches and enriches one publication
func (s *PublicationService) Get(ctx context.Context, id string) (*api.Publication, error) {
	item, err := s.backend.GetPublication(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch publication %s: %w", id, err)
	}
	p := s.enricher.Item(ctx, *item)
	return &p, nil
}

// Create validates the draft, uploads an attached image for posts, and
// creates the publication.
func (s *PublicationService) Create(ctx context.Context, d validate.Draft) (*api.Publication, error) {
	if err := validate.Publication(d); err != nil {
		return nil, err
	}

	req := api.CreatePublicationRequest{
		Type:    d.Type,
		Title:   strings.TrimSpace(d.Title),
		Content: d.Content,
		Source:  strings.TrimSpace(d.Source),
	}

	if d.Type == api.ContentPost && d.Image != nil {
		mediaID, err := s.backend.UploadMedia(ctx, d.ImageName, bytes.NewReader(d.Image))
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		logger.Debug("Image uploaded", "media_id", mediaID)
		req.MediaID = mediaID
	}

	item, err := s.backend.CreatePublication(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create publication: %w", err)
	}

	p := s.enricher.Item(ctx, *item)
	return &p, nil
}

// Update replaces title and content
func (s *PublicationService) Update(ctx context.Context, id, title, content string) (*api.Publication, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return nil, validate.Errors{"content": "Nothing to update"}
	}

	item, err := s.backend.UpdatePublication(ctx, id, api.UpdatePublicationRequest{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("failed to update publication %s: %w", id, err)
	}
	p := s.enricher.Item(ctx, *item)
	return &p, nil
}

// Delete removes a publication
func (s *PublicationService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeletePublication(ctx, id); err != nil {
		return fmt.Errorf("failed to delete publication %s: %w", id, err)
	}
	return nil
}

// ToggleLike flips the like and returns the publication as it is now
func (s *PublicationService) ToggleLike(ctx context.Context, id string) (*api.Publication, error) {
	if err := s.backend.ToggleLike(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to like publication %s: %w", id, err)
	}
	return s.Get(ctx, id)
}

// ToggleSave flips the save and returns the publication as it is now
func (s *PublicationService) ToggleSave(ctx context.Context, id string) (*api.Publication, error) {
	if err := s.backend.ToggleSave(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to save publication %s: %w", id, err)
	}
	return s.Get(ctx, id)
}

// Likes lists the users who liked a publication
func (s *PublicationService) Likes(ctx context.Context, id string) ([]api.User, int, error) {
	resp, err := s.backend.GetLikes(ctx, id)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch likes for %s: %w", id, err)
	}

	users := make([]api.User, 0, len(resp.Items))
	for _, u := range resp.Items {
		users = append(users, api.NormalizeUser(u))
	}
	total := resp.Total
	if total == 0 {
		total = len(users)
	}
	return users, total, nil
}
