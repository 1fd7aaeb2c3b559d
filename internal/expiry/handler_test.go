package expiry

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, repo RepositoryPort) http.Handler {
	t.Helper()
	handler := NewHandler(slog.New(slog.DiscardHandler), NewService(repo))
	handler.now = func() time.Time { return scanToday }
	r := chi.NewRouter()
	r.Route("/residences", handler.MountRoutes)
	return r
}

func TestListExpiringEndpoint(t *testing.T) {
	repo := &memoryPermitRepo{permits: []ResidencePermit{
		permit(1, "critical", scanToday.AddDate(0, 0, 3)),
		permit(2, "outside", scanToday.AddDate(0, 0, 60)),
	}}
	router := newTestRouter(t, repo)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/residences/expiring", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		WindowDays int           `json:"window_days"`
		Alerts     []PermitAlert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, DefaultWindowDays, body.WindowDays)
	require.Len(t, body.Alerts, 1)
	require.Equal(t, SeverityCritical, body.Alerts[0].Alert.Severity)
}

func TestListExpiringCustomWindow(t *testing.T) {
	repo := &memoryPermitRepo{permits: []ResidencePermit{
		permit(1, "near", scanToday.AddDate(0, 0, 3)),
		permit(2, "far", scanToday.AddDate(0, 0, 60)),
	}}
	router := newTestRouter(t, repo)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/residences/expiring?window=90", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Alerts []PermitAlert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Alerts, 2)
}

func TestListExpiringRejectsBadWindow(t *testing.T) {
	router := newTestRouter(t, &memoryPermitRepo{})

	for _, raw := range []string{"0", "-5", "400", "soon"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/residences/expiring?window="+raw, nil))
		require.Equal(t, http.StatusBadRequest, rr.Code, raw)
	}
}
