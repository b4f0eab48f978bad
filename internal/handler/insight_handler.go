package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"brandintel/internal/analytics"
	"brandintel/internal/dataset"
	"brandintel/internal/service"
)

// scopeFromQuery builds the market scope from query params. Category is
// mandatory; country and platform default to the "All" sentinel.
func scopeFromQuery(r *http.Request) (dataset.Scope, error) {
	category := r.URL.Query().Get("category")
	if category == "" {
		return dataset.Scope{}, errors.New("missing category")
	}
	return dataset.Scope{
		Category: category,
		Country:  r.URL.Query().Get("country"),
		Platform: r.URL.Query().Get("platform"),
	}, nil
}

func brandFromQuery(r *http.Request) (string, error) {
	brand := r.URL.Query().Get("brand")
	if brand == "" {
		return "", errors.New("missing brand")
	}
	return brand, nil
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.svc.Categories())
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "missing category", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.svc.Overview(category))
}

func (h *Handler) GetDailyVolume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "missing category", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.svc.DailyVolume(category))
}

func (h *Handler) GetPlatformActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "missing category", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.svc.PlatformActivity(category))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "missing category", http.StatusBadRequest)
		return
	}

	top, err := strconv.Atoi(r.URL.Query().Get("top"))
	if err != nil || top <= 0 {
		top = 15
	}

	writeJSON(w, h.svc.Leaderboard(category, top))
}

func (h *Handler) GetShareOfVoice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	scope, err := scopeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	brand, err := brandFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.svc.ShareOfVoice(scope, brand))
}

func (h *Handler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	scope, err := scopeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	brand, err := brandFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	group := analytics.GroupKey(r.URL.Query().Get("group"))
	if group == "" {
		group = analytics.GroupNone
	}
	if !group.Valid() {
		http.Error(w, "group must be one of none, platform, country", http.StatusBadRequest)
		return
	}

	top, err := strconv.Atoi(r.URL.Query().Get("top"))
	if err != nil || top <= 0 {
		top = 5
	}

	writeJSON(w, h.svc.TimeSeries(scope, brand, group, top))
}

func (h *Handler) GetIndexMatrix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	scope, err := scopeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	brand, err := brandFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.svc.IndexMatrix(scope, brand))
}

func (h *Handler) GetSourceGaps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	scope, err := scopeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	brand, err := brandFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.svc.SourceGaps(scope, brand))
}

func (h *Handler) GetBrandSentiment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	scope, err := scopeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	brand, err := brandFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"brand":     brand,
		"sentiment": h.svc.BrandSentiment(scope, brand),
	})
}

func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "use GET", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "missing category", http.StatusBadRequest)
		return
	}

	records := h.svc.Records(category, r.URL.Query().Get("search"))
	writeJSON(w, records)
}

type CompareRequest struct {
	Category string              `json:"category" validate:"required"`
	SideA    service.CompareSide `json:"side_a" validate:"required"`
	SideB    service.CompareSide `json:"side_b" validate:"required"`
}

type CompareResponse struct {
	SideA service.CompareResult `json:"side_a"`
	SideB service.CompareResult `json:"side_b"`
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "validation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	a, b := h.svc.Compare(req.Category, req.SideA, req.SideB)
	writeJSON(w, CompareResponse{SideA: a, SideB: b})
}

type SimulateRequest struct {
	Category string   `json:"category" validate:"required"`
	Country  string   `json:"country" validate:"required"`
	Platform string   `json:"platform" validate:"required"`
	Criteria string   `json:"criteria" validate:"required"`
	Prompts  []string `json:"prompts,omitempty"`
	Store    bool     `json:"store,omitempty"`
}

// Simulate generates simulated interactions for a market slice; prompts are
// model-suggested when the request does not carry its own.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return
	}
	if h.sim == nil {
		http.Error(w, "simulator not configured", http.StatusServiceUnavailable)
		return
	}

	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "validation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	prompts := req.Prompts
	if len(prompts) == 0 {
		var err error
		prompts, err = h.sim.GeneratePrompts(ctx, req.Category, req.Country)
		if err != nil {
			http.Error(w, "failed to generate prompts: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	records, err := h.sim.SimulateRecords(ctx, req.Category, req.Country, req.Platform, req.Criteria, prompts)
	if err != nil {
		http.Error(w, "failed to simulate responses: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if req.Store {
		if err := h.sim.StoreRecords(ctx, records); err != nil {
			http.Error(w, "failed to store records: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, records)
}
