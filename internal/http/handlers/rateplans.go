package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coverledger/go-rating/internal/core"
	"github.com/coverledger/go-rating/pkg/problem"
)

type RatePlanHandler struct {
	Svc core.RatePlanService
	Log *slog.Logger
}

func NewRatePlanHandler(svc core.RatePlanService, log *slog.Logger) *RatePlanHandler {
	return &RatePlanHandler{Svc: svc, Log: log}
}

func (h *RatePlanHandler) Mount(r chi.Router) {
	// Plans listed under their product
	r.Get("/products/{product_code}/plans", h.ListByProduct)

	// Manage plans via /plans
	r.Route("/plans", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{plan_code}", h.Get)
		r.Put("/{plan_code}", h.Update)
		r.Delete("/{plan_code}", h.Delete)
		r.Post("/{plan_code}:disable", h.Disable)
		r.Post("/{plan_code}:enable", h.Enable)
	})
}

// ListByProduct returns every plan owned by a product.
// 200: JSON array; 404: product not found.
func (h *RatePlanHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "product_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Product Code", "Path parameter product_code is required.")
		return
	}

	plans, err := h.Svc.ListByProduct(r.Context(), code)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	if plans == nil {
		plans = []core.RatePlan{}
	}
	if err := json.NewEncoder(w).Encode(plans); err != nil {
		h.Log.Error("failed to encode plans", "product_code", code, "err", err)
	}
}

// Get returns a plan by code.
// 200: JSON; 404: not found.
func (h *RatePlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "plan_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Plan Code", "Path parameter plan_code is required.")
		return
	}

	p, err := h.Svc.Get(r.Context(), code)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get plan")
		return
	}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		h.Log.Error("failed to encode plan", "plan_code", code, "err", err)
	}
}

// Create adds a rate plan after validating its configuration.
// 201: JSON; 404: product missing; 409: code exists; 422: invalid configuration.
func (h *RatePlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p core.RatePlan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Body", "Request body must be valid JSON.")
		return
	}

	created, err := h.Svc.Create(r.Context(), p)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		h.Log.Error("failed to encode plan", "plan_code", created.Code, "err", err)
	}
}

// Update replaces a plan's rates and bases, keyed by code.
// 200: JSON; 404: not found; 422: invalid configuration.
func (h *RatePlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "plan_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Plan Code", "Path parameter plan_code is required.")
		return
	}

	var p core.RatePlan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Body", "Request body must be valid JSON.")
		return
	}
	p.Code = code

	updated, err := h.Svc.Update(r.Context(), p)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		h.Log.Error("failed to encode plan", "plan_code", code, "err", err)
	}
}

// Disable soft-disables a plan; it stops quoting but keeps its
// configuration. 200: JSON; 404: not found.
func (h *RatePlanHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

// Enable re-enables a disabled plan. 200: JSON; 404: not found.
func (h *RatePlanHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *RatePlanHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	code := chi.URLParam(r, "plan_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Plan Code", "Path parameter plan_code is required.")
		return
	}

	p, err := h.Svc.SetActive(r.Context(), code, active)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		h.Log.Error("failed to encode plan", "plan_code", code, "err", err)
	}
}

// Delete hard-deletes a plan with no policy or application references.
// 204: deleted; 404: not found; 409: still referenced.
func (h *RatePlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "plan_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Plan Code", "Path parameter plan_code is required.")
		return
	}

	if err := h.Svc.Delete(r.Context(), code); err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
