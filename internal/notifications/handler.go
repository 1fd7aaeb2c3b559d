package notifications

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// ownerHeader names the caller whose read state applies. Authentication is
// out of scope here; the UI layer forwards its user identifier.
const ownerHeader = "X-Owner"

// Handler serves notification endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches notification routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/unread", h.Unread)
	r.Post("/{id}/ack", h.Acknowledge)
	r.Post("/ack-all", h.AcknowledgeAll)
}

func owner(r *http.Request) string {
	if o := r.Header.Get(ownerHeader); o != "" {
		return o
	}
	return "default"
}

// List returns notifications with read flags.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("list notifications", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"notifications": views})
}

// Unread returns the unread count.
func (h *Handler) Unread(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Unread(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("count unread notifications", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int{"unread": count})
}

// Acknowledge marks one notification read.
func (h *Handler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Acknowledge(r.Context(), owner(r), id); err != nil {
		h.logger.Error("acknowledge notification", slog.String("id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AcknowledgeAll marks every current notification read.
func (h *Handler) AcknowledgeAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.AcknowledgeAll(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("acknowledge all notifications", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int{"acknowledged": count})
}
