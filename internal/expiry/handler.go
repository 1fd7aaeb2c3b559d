package expiry

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// Handler serves residence expiry endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	now     func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, now: time.Now}
}

// MountRoutes attaches residence routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/expiring", h.ListExpiring)
}

// ListExpiring returns permits expiring within the window. The window
// defaults to 30 days and can be overridden with ?window=N (1..365).
func (h *Handler) ListExpiring(w http.ResponseWriter, r *http.Request) {
	window := DefaultWindowDays
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			httpx.RespondError(w, fmt.Errorf("%w: window must be 1..365 days", httpx.ErrValidation))
			return
		}
		window = parsed
	}

	alerts, err := h.service.ListExpiring(r.Context(), h.now(), window)
	if err != nil {
		h.logger.Error("list expiring permits", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"window_days": window,
		"alerts":      alerts,
	})
}
