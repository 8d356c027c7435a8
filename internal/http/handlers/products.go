package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coverledger/go-rating/internal/core"
	"github.com/coverledger/go-rating/pkg/problem"
)

type ProductHandler struct {
	Svc core.ProductService
	Log *slog.Logger
}

func NewProductHandler(svc core.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Log: log}
}

func (h *ProductHandler) Mount(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{product_code}", h.Get)
		r.Put("/{product_code}", h.Update)
		r.Delete("/{product_code}", h.Delete)
	})
}

// List returns all products.
// 200: JSON array; 500: internal error.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list products")
		return
	}
	if products == nil {
		products = []core.Product{}
	}
	if err := json.NewEncoder(w).Encode(products); err != nil {
		h.Log.Error("failed to encode products", "err", err)
	}
}

// Get returns a product by code.
// 200: JSON; 400: missing code; 404: not found.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "product_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Product Code", "Path parameter product_code is required.")
		return
	}

	p, err := h.Svc.Get(r.Context(), code)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get product")
		return
	}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		h.Log.Error("failed to encode product", "code", code, "err", err)
	}
}

// Create adds a product.
// 201: JSON; 400: invalid; 409: code exists.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p core.Product
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
		h.Log.Error("failed to encode product", "code", created.Code, "err", err)
	}
}

// Update replaces a product's configuration, keyed by code.
// 200: JSON; 400: invalid; 404: not found.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "product_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Product Code", "Path parameter product_code is required.")
		return
	}

	var p core.Product
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
		h.Log.Error("failed to encode product", "code", code, "err", err)
	}
}

// Delete removes a product that owns no plans.
// 204: deleted; 404: not found; 409: still owns plans.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "product_code")
	if code == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Product Code", "Path parameter product_code is required.")
		return
	}

	if err := h.Svc.Delete(r.Context(), code); err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
