package handler

import (
	"net/http"

	"wandshop-api/internal/model"
	"wandshop-api/internal/service"
	"wandshop-api/pkg/response"
)

// SalesHandler handles sales HTTP requests.
type SalesHandler struct {
	sales *service.SalesService
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(sales *service.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// List handles GET /api/v1/sales
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	report, err := h.sales.ListSales(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}

	response.List(w, report, len(report))
}

// Purchase handles POST /api/v1/sales
func (h *SalesHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	sale := &model.Sale{
		WandID:        req.WandID,
		CustomerID:    req.CustomerID,
		SalePrice:     req.SalePrice,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	}
	if _, err := h.sales.CreatePurchase(r.Context(), sale); err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, sale)
}
