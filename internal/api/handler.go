package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"medstock/m/domain"
	"medstock/m/internal/inventory"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	store *inventory.Store
}

// New constructs a Handler.
func New(store *inventory.Store) *Handler {
	return &Handler{store: store}
}

// Router wires up the HTTP API the list UI consumes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"}, // Change "*" to the UI's origin when it is fixed
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/drugs", func(r chi.Router) {
		r.Get("/", h.listDrugs)
		r.Post("/", h.addDrug)
		r.Get("/summary", h.summary)
		r.Post("/{id}/dispense", h.dispenseDrug)
		r.Delete("/{id}", h.deleteDrug)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// drugView decorates a record with the derived fields the list UI renders.
type drugView struct {
	domain.DrugRecord
	Status          domain.ExpiryStatus `json:"status"`
	DaysUntilExpiry int                 `json:"days_until_expiry"`
	IsLowStock      bool                `json:"is_low_stock"`
	IsOutOfStock    bool                `json:"is_out_of_stock"`
}

type listResponse struct {
	Loaded        bool       `json:"loaded"`
	CriticalCount int        `json:"critical_count"`
	Drugs         []drugView `json:"drugs"`
}

func (h *Handler) listDrugs(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	records := h.store.Records()
	views := make([]drugView, len(records))
	for i, rec := range records {
		views[i] = drugView{
			DrugRecord:      rec,
			Status:          domain.Classify(rec, now),
			DaysUntilExpiry: domain.DaysUntilExpiry(rec, now),
			IsLowStock:      domain.IsLowStock(rec),
			IsOutOfStock:    domain.IsOutOfStock(rec),
		}
	}
	respondJSON(w, http.StatusOK, listResponse{
		Loaded:        h.store.Loaded(),
		CriticalCount: h.store.CriticalCount(),
		Drugs:         views,
	})
}

type addDrugRequest struct {
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
}

func (h *Handler) addDrug(w http.ResponseWriter, r *http.Request) {
	var req addDrugRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	nd, err := inventory.ParseNewDrug(req.Name, req.Quantity, req.ExpiryDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec := h.store.Add(nd)
	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) dispenseDrug(w http.ResponseWriter, r *http.Request) {
	h.store.Dispense(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]string{"status": "dispensed"})
}

func (h *Handler) deleteDrug(w http.ResponseWriter, r *http.Request) {
	h.store.Delete(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type summaryResponse struct {
	Total         int  `json:"total"`
	CriticalCount int  `json:"critical_count"`
	LowStockCount int  `json:"low_stock_count"`
	Loaded        bool `json:"loaded"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	records := h.store.Records()
	lowStock := 0
	for _, rec := range records {
		if domain.IsLowStock(rec) {
			lowStock++
		}
	}
	respondJSON(w, http.StatusOK, summaryResponse{
		Total:         len(records),
		CriticalCount: h.store.CriticalCount(),
		LowStockCount: lowStock,
		Loaded:        h.store.Loaded(),
	})
}

// Helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
