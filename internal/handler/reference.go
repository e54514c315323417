package handler

import (
	"net/http"

	"wandshop-api/internal/service"
	"wandshop-api/pkg/response"
)

// ReferenceHandler serves the wood type and core lookup tables.
type ReferenceHandler struct {
	catalog *service.CatalogService
}

func NewReferenceHandler(catalog *service.CatalogService) *ReferenceHandler {
	return &ReferenceHandler{catalog: catalog}
}

// WoodTypes handles GET /api/v1/wood-types
func (h *ReferenceHandler) WoodTypes(w http.ResponseWriter, r *http.Request) {
	woods, err := h.catalog.ListWoodTypes(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.List(w, woods, len(woods))
}

// Cores handles GET /api/v1/cores
func (h *ReferenceHandler) Cores(w http.ResponseWriter, r *http.Request) {
	cores, err := h.catalog.ListCores(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.List(w, cores, len(cores))
}

// LookupResult maps a reference name to its id.
type LookupResult struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// LookupWood handles GET /api/v1/wood-types/lookup?name=
func (h *ReferenceHandler) LookupWood(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	id, err := h.catalog.WoodIDByName(r.Context(), name)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, LookupResult{Name: name, ID: id})
}

// LookupCore handles GET /api/v1/cores/lookup?material=
func (h *ReferenceHandler) LookupCore(w http.ResponseWriter, r *http.Request) {
	material := r.URL.Query().Get("material")
	id, err := h.catalog.CoreIDByMaterial(r.Context(), material)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, LookupResult{Name: material, ID: id})
}
