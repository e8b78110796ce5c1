package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/patents"
)

const (
	defaultPatentLimit = 10
	maxPatentLimit     = 50
)

// PatentService exposes the patent gateway search
type PatentService struct {
	searcher PatentSearcher
}

// Ensure PatentService implements PatentServiceInterface
var _ PatentServiceInterface = (*PatentService)(nil)

// NewPatentService creates a new PatentService. A nil searcher means the
// gateway is not configured.
func NewPatentService(searcher PatentSearcher) *PatentService {
	return &PatentService{searcher: searcher}
}

// Search runs a keyword search against the patent gateway
func (s *PatentService) Search(ctx context.Context, query string, limit int) (*patents.SearchResult, error) {
	if s.searcher == nil {
		return nil, apperrors.ErrPatentGatewayNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("q", "search query is required")
	}
	if limit < 1 {
		limit = defaultPatentLimit
	}
	if limit > maxPatentLimit {
		limit = maxPatentLimit
	}

	result, err := s.searcher.Search(ctx, query, limit)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Patent search failed")
		return nil, fmt.Errorf("patent search failed: %w", err)
	}
	return result, nil
}
