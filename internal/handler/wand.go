package handler

import (
	"net/http"
	"strings"

	"wandshop-api/internal/model"
	"wandshop-api/internal/service"
	"wandshop-api/pkg/apierror"
	"wandshop-api/pkg/response"
)

// WandHandler handles wand catalog HTTP requests.
type WandHandler struct {
	wands *service.WandService
}

// NewWandHandler creates a new wand handler.
func NewWandHandler(wands *service.WandService) *WandHandler {
	return &WandHandler{wands: wands}
}

// List handles GET /api/v1/wands. A non-empty ?q= searches instead.
func (h *WandHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		wands []model.WandListing
		err   error
	)
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		wands, err = h.wands.SearchWands(r.Context(), q)
	} else {
		wands, err = h.wands.ListWands(r.Context())
	}
	if err != nil {
		fail(w, r, err)
		return
	}

	response.List(w, wands, len(wands))
}

// Create handles POST /api/v1/wands
func (h *WandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	wand := req.toModel()
	if _, err := h.wands.CreateWand(r.Context(), wand); err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, wand)
}

// Get handles GET /api/v1/wands/{id}
func (h *WandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	wand, err := h.wands.GetWand(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if wand == nil {
		fail(w, r, apierror.NotFound("wand not found"))
		return
	}

	response.OK(w, wand)
}

// Details handles GET /api/v1/wands/{id}/details
func (h *WandHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	details, err := h.wands.GetWandDetails(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if details == nil {
		fail(w, r, apierror.NotFound("wand not found"))
		return
	}

	response.OK(w, details)
}

// Update handles PUT /api/v1/wands/{id}
func (h *WandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	var req wandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	wand := req.toModel()
	wand.ID = id
	if err := h.wands.UpdateWand(r.Context(), wand); err != nil {
		fail(w, r, err)
		return
	}

	updated, err := h.wands.GetWand(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if updated == nil {
		fail(w, r, service.ErrNotFound)
		return
	}
	response.OK(w, updated)
}

// Delete handles DELETE /api/v1/wands/{id}
func (h *WandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	if err := h.wands.DeleteWand(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}

	response.NoContent(w)
}
