package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wandshop-api/internal/model"
	"wandshop-api/internal/service"
	"wandshop-api/pkg/apierror"
	"wandshop-api/pkg/response"
)

// InventoryHandler handles component inventory HTTP requests.
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// StockLevel is the on-hand quantity of one material.
type StockLevel struct {
	Kind       model.ItemKind `json:"kind"`
	MaterialID int64          `json:"material_id"`
	Quantity   int            `json:"quantity"`
}

// List handles GET /api/v1/inventory
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.inventoryService.ListInventory(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}

	response.List(w, entries, len(entries))
}

// GetQuantity handles GET /api/v1/inventory/{kind}/{id}
func (h *InventoryHandler) GetQuantity(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseItemKind(chi.URLParam(r, "kind"))
	if err != nil {
		fail(w, r, apierror.BadRequest("kind must be wood or core"))
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	qty, err := h.inventoryService.GetQuantity(r.Context(), kind, id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, StockLevel{Kind: kind, MaterialID: id, Quantity: qty})
}

// Adjust handles POST /api/v1/inventory/adjust
func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	kind := parseOrZero(model.ParseItemKind, req.Kind)
	if err := h.inventoryService.AdjustStock(r.Context(), kind, req.MaterialID, req.Delta); err != nil {
		fail(w, r, err)
		return
	}

	qty, err := h.inventoryService.GetQuantity(r.Context(), kind, req.MaterialID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, StockLevel{Kind: kind, MaterialID: req.MaterialID, Quantity: qty})
}
