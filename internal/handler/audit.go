package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// AuditHandler handles HTTP requests for the generation audit log.
type AuditHandler struct {
	service *service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{service: svc}
}

// HandleListEvents handles GET /api/v1/audit requests.
func (h *AuditHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid limit"))
			return
		}
		limit = n
	}

	events, err := h.service.ListEvents(r.Context(), limit)
	if err != nil {
		subject, _ := middleware.SubjectFromContext(r.Context())
		slog.Error("listing generation events", "subject", subject, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, events)
}
