package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// Handler serves statement downloads.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches statement routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{customerID}/statement.xlsx", h.StatementXLSX)
	r.Get("/{customerID}/statement.pdf", h.StatementPDF)
}

// StatementXLSX streams the customer statement as a spreadsheet.
func (h *Handler) StatementXLSX(w http.ResponseWriter, r *http.Request) {
	stmt, ok := h.loadStatement(w, r)
	if !ok {
		return
	}
	data, err := BuildStatementXLSX(stmt)
	if err != nil {
		h.logger.Error("render statement xlsx", slog.Int64("customer_id", stmt.Customer.ID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	writeAttachment(w, data,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("statement-%d.xlsx", stmt.Customer.ID))
}

// StatementPDF streams the customer statement as a PDF.
func (h *Handler) StatementPDF(w http.ResponseWriter, r *http.Request) {
	stmt, ok := h.loadStatement(w, r)
	if !ok {
		return
	}
	data, err := BuildStatementPDF(stmt)
	if err != nil {
		h.logger.Error("render statement pdf", slog.Int64("customer_id", stmt.Customer.ID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	writeAttachment(w, data, "application/pdf", fmt.Sprintf("statement-%d.pdf", stmt.Customer.ID))
}

func (h *Handler) loadStatement(w http.ResponseWriter, r *http.Request) (*Statement, bool) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: customer id", httpx.ErrValidation))
		return nil, false
	}
	stmt, err := h.service.Statement(r.Context(), customerID)
	if err != nil {
		h.logger.Error("load statement", slog.Int64("customer_id", customerID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return nil, false
	}
	return stmt, true
}

func writeAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
