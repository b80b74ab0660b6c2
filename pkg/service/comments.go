package service

import (
	"context"
	"fmt"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/enrich"
	"github.com/sense-social/sense/cli/pkg/validate"
)

// CommentService reads and writes comments
type CommentService struct {
	backend  *api.Backend
	enricher *enrich.Enricher
}

// NewCommentService creates a new comment service
func NewCommentService(d Deps) *CommentService {
	return &CommentService{backend: d.Backend, enricher: d.Enricher}
}

// List returns a publication's comments with their authors resolved
func (s *CommentService) List(ctx context.Context, publicationID string) ([]api.Comment, error) {
	resp, err := s.backend.GetComments(ctx, publicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	return s.enricher.Comments(ctx, resp.Items), nil
}

// Add posts a top-level comment
func (s *CommentService) Add(ctx context.Context, publicationID, text string) (*api.Comment, error) {
	if err := validate.Comment(text); err != nil {
		return nil, err
	}
	c, err := s.backend.CreateComment(ctx, publicationID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return s.one(ctx, c), nil
}

// Get fetches one comment
func (s *CommentService) Get(ctx context.Context, id string) (*api.Comment, error) {
	c, err := s.backend.GetComment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment %s: %w", id, err)
	}
	return s.one(ctx, c), nil
}

// Edit replaces a comment's text
func (s *CommentService) Edit(ctx context.Context, id, text string) (*api.Comment, error) {
	if err := validate.Comment(text); err != nil {
		return nil, err
	}
	c, err := s.backend.UpdateComment(ctx, id, text)
	if err != nil {
		return nil, fmt.Errorf("failed to edit comment %s: %w", id, err)
	}
	return s.one(ctx, c), nil
}

// Delete removes a comment
func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
	}
	return nil
}

// Reply answers a comment
func (s *CommentService) Reply(ctx context.Context, id, text string) (*api.Comment, error) {
	if err := validate.Comment(text); err != nil {
		return nil, err
	}
	c, err := s.backend.ReplyToComment(ctx, id, text)
	if err != nil {
		return nil, fmt.Errorf("failed to reply to comment %s: %w", id, err)
	}
	return s.one(ctx, c), nil
}

// Like toggles the like on a comment
func (s *CommentService) Like(ctx context.Context, id string) (*api.Comment, error) {
	c, err := s.backend.LikeComment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to like comment %s: %w", id, err)
	}
	return s.one(ctx, c), nil
}

func (s *CommentService) one(ctx context.Context, c *api.CommentResponse) *api.Comment {
	out := s.enricher.Comments(ctx, []api.CommentResponse{*c})
	return &out[0]
}
