package api

import (
	"context"

	"github.com/sense-social/sense/cli/pkg/logger"
)

// GetComments lists the comments on a publication
func (b *Backend) GetComments(ctx context.Context, publicationID string) (*CommentsResponse, error) {
	logger.Debug("Fetching comments", "publication_id", publicationID)

	var resp CommentsResponse
	if err := b.http.Get(ctx, "/publication/"+pathID(publicationID)+"/comments", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateComment adds a top-level comment to a publication
func (b *Backend) CreateComment(ctx context.Context, publicationID, content string) (*CommentResponse, error) {
	logger.Debug("Creating comment", "publication_id", publicationID)

	var resp CommentResponse
	if err := b.http.Post(ctx, "/publication/"+pathID(publicationID)+"/comments", CommentRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetComment fetches one comment
func (b *Backend) GetComment(ctx context.Context, id string) (*CommentResponse, error) {
	logger.Debug("Fetching comment", "comment_id", id)

	var resp CommentResponse
	if err := b.http.Get(ctx, "/comment/"+pathID(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateComment replaces a comment's text
func (b *Backend) UpdateComment(ctx context.Context, id, content string) (*CommentResponse, error) {
	logger.Debug("Updating comment", "comment_id", id)

	var resp CommentResponse
	if err := b.http.Put(ctx, "/comment/"+pathID(id), CommentRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteComment deletes a comment
func (b *Backend) DeleteComment(ctx context.Context, id string) error {
	logger.Debug("Deleting comment", "comment_id", id)
	return b.http.Delete(ctx, "/comment/"+pathID(id), nil)
}

// ReplyToComment posts a reply under a comment
func (b *Backend) ReplyToComment(ctx context.Context, id, content string) (*CommentResponse, error) {
	logger.Debug("Replying to comment", "comment_id", id)

	var resp CommentResponse
	if err := b.http.Post(ctx, "/comment/"+pathID(id)+"/reply", CommentRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LikeComment toggles the viewer's like on a comment
func (b *Backend) LikeComment(ctx context.Context, id string) (*CommentResponse, error) {
	logger.Debug("Liking comment", "comment_id", id)

	var resp CommentResponse
	if err := b.http.Post(ctx, "/comment/"+pathID(id)+"/like", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
