package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"brandintel/internal/config"
	"brandintel/internal/middleware"
	"brandintel/internal/service"
)

type Handler struct {
	svc      *service.InsightService
	sim      *service.SimulatorService
	cfg      *config.Config
	validate *validator.Validate
}

// NewHandler wires the insight service and the optional simulator (nil when
// OpenAI is not configured).
func NewHandler(svc *service.InsightService, sim *service.SimulatorService, cfg *config.Config) *Handler {
	return &Handler{
		svc:      svc,
		sim:      sim,
		cfg:      cfg,
		validate: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/auth/login", h.Login)

	secured := func(fn http.HandlerFunc) http.Handler {
		return middleware.JWTAuth(h.cfg.AccessSecret, fn)
	}

	mux.Handle("/api/categories", secured(h.GetCategories))
	mux.Handle("/api/overview", secured(h.GetOverview))
	mux.Handle("/api/volume", secured(h.GetDailyVolume))
	mux.Handle("/api/platforms", secured(h.GetPlatformActivity))
	mux.Handle("/api/leaderboard", secured(h.GetLeaderboard))
	mux.Handle("/api/sov", secured(h.GetShareOfVoice))
	mux.Handle("/api/timeseries", secured(h.GetTimeSeries))
	mux.Handle("/api/index", secured(h.GetIndexMatrix))
	mux.Handle("/api/gaps", secured(h.GetSourceGaps))
	mux.Handle("/api/sentiment", secured(h.GetBrandSentiment))
	mux.Handle("/api/records", secured(h.GetRecords))
	mux.Handle("/api/compare", secured(h.Compare))
	mux.Handle("/api/simulate", secured(h.Simulate))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}
