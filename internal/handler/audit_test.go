package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

type stubLister struct {
	events []model.GenerationEvent
	err    error
	limit  int
}

func (s *stubLister) ListRecent(_ context.Context, limit int) ([]model.GenerationEvent, error) {
	s.limit = limit
	return s.events, s.err
}

func TestHandleListEvents(t *testing.T) {
	lister := &stubLister{events: []model.GenerationEvent{{ID: "a", Source: model.SourceAPI, Length: 16, Count: 1}}}
	h := NewAuditHandler(service.NewAuditService(lister))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audit?limit=5", nil)
	rec := httptest.NewRecorder()
	h.HandleListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, lister.limit)

	var events []model.GenerationEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "a", events[0].ID)
}

func TestHandleListEvents_InvalidLimit(t *testing.T) {
	h := NewAuditHandler(service.NewAuditService(&stubLister{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audit?limit=abc", nil)
	rec := httptest.NewRecorder()
	h.HandleListEvents(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListEvents_RepositoryError(t *testing.T) {
	h := NewAuditHandler(service.NewAuditService(&stubLister{err: errors.New("db down")}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil)
	rec := httptest.NewRecorder()
	h.HandleListEvents(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
