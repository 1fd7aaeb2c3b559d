package flow

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// Handler serves flow timeline endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches flow routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{quotationID}", h.Show)
	r.Get("/{quotationID}/timeline", h.Timeline)
}

// Show returns the context-free timeline for a flow.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.respondTimeline(w, r, nil)
}

// Timeline returns the timeline viewed from an optional current stage.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	var current *Stage
	if raw := r.URL.Query().Get("current"); raw != "" {
		stage, err := ParseStage(raw)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: current stage %q", httpx.ErrValidation, raw))
			return
		}
		current = &stage
	}
	h.respondTimeline(w, r, current)
}

func (h *Handler) respondTimeline(w http.ResponseWriter, r *http.Request, current *Stage) {
	quotationID, err := strconv.ParseInt(chi.URLParam(r, "quotationID"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: quotation id", httpx.ErrValidation))
		return
	}

	view, err := h.service.Timeline(r.Context(), quotationID, current)
	if err != nil {
		h.logger.Error("derive timeline", slog.Int64("quotation_id", quotationID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
