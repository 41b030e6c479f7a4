package service

import (
	"context"

	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditLister reads generation events, most recent first.
type AuditLister interface {
	ListRecent(ctx context.Context, limit int) ([]model.GenerationEvent, error)
}

// AuditService handles read access to the generation audit log.
type AuditService struct {
	repo AuditLister
}

// NewAuditService creates a new AuditService.
func NewAuditService(repo AuditLister) *AuditService {
	return &AuditService{repo: repo}
}

// ListEvents returns up to limit recent events. Out-of-range limits are clamped.
func (s *AuditService) ListEvents(ctx context.Context, limit int) ([]model.GenerationEvent, error) {
	events, err := s.repo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.GenerationEvent{}
	}
	return events, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultAuditLimit
	case limit > maxAuditLimit:
		return maxAuditLimit
	default:
		return limit
	}
}
