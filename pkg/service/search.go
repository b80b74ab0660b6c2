package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/enrich"
	"github.com/sense-social/sense/cli/pkg/validate"
)

// SearchService runs publication and user searches
type SearchService struct {
	backend  *api.Backend
	enricher *enrich.Enricher
}

// NewSearchService creates a new search service
func NewSearchService(d Deps) *SearchService {
	return &SearchService{backend: d.Backend, enricher: d.Enricher}
}

func checkQuery(q string) error {
	if strings.TrimSpace(q) == "" {
		return validate.Errors{"query": "Search query cannot be empty"}
	}
	return nil
}

// Publications searches publications and enriches the hits like feed items
func (s *SearchService) Publications(ctx context.Context, query string) ([]api.Publication, error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	items, err := s.backend.SearchPublications(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search publications: %w", err)
	}
	return s.enricher.Page(ctx, items), nil
}

// Users searches accounts
func (s *SearchService) Users(ctx context.Context, query string) ([]api.User, error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	resp, err := s.backend.SearchUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	users := make([]api.User, 0, len(resp))
	for _, u := range resp {
		users = append(users, api.NormalizeUser(u))
	}
	return users, nil
}

// Warmup primes the backend search index
func (s *SearchService) Warmup(ctx context.Context) error {
	if err := s.backend.WarmupSearch(ctx); err != nil {
		return fmt.Errorf("failed to warm up search: %w", err)
	}
	return nil
}
