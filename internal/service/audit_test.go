package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vaultpass/passgen-go/internal/model"
)

type fakeLister struct {
	gotLimit int
	events   []model.GenerationEvent
	err      error
}

func (f *fakeLister) ListRecent(_ context.Context, limit int) ([]model.GenerationEvent, error) {
	f.gotLimit = limit
	return f.events, f.err
}

func TestListEvents_ClampsLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, defaultAuditLimit},
		{-5, defaultAuditLimit},
		{10, 10},
		{10000, maxAuditLimit},
	}

	for _, tt := range tests {
		repo := &fakeLister{}
		svc := NewAuditService(repo)
		if _, err := svc.ListEvents(context.Background(), tt.limit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotLimit != tt.want {
			t.Errorf("limit %d: expected %d, got %d", tt.limit, tt.want, repo.gotLimit)
		}
	}
}

func TestListEvents_EmptyIsNonNil(t *testing.T) {
	svc := NewAuditService(&fakeLister{})
	events, err := svc.ListEvents(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if events == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
}

func TestListEvents_Error(t *testing.T) {
	want := errors.New("boom")
	svc := NewAuditService(&fakeLister{err: want})
	if _, err := svc.ListEvents(context.Background(), 0); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}
