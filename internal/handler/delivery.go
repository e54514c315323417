package handler

import (
	"net/http"

	"wandshop-api/internal/service"
	"wandshop-api/pkg/apierror"
	"wandshop-api/pkg/response"
)

// DeliveryHandler handles supplier delivery HTTP requests.
type DeliveryHandler struct {
	deliveries *service.DeliveryService
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(deliveries *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

// List handles GET /api/v1/deliveries
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveries.ListDeliveries(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}

	response.List(w, deliveries, len(deliveries))
}

// Record handles POST /api/v1/deliveries
func (h *DeliveryHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	id, err := h.deliveries.RecordDelivery(r.Context(), req.toModel())
	if err != nil {
		fail(w, r, err)
		return
	}

	d, err := h.deliveries.GetDelivery(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, d)
}

// Get handles GET /api/v1/deliveries/{id}
func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	d, err := h.deliveries.GetDelivery(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if d == nil {
		fail(w, r, apierror.NotFound("delivery not found"))
		return
	}

	response.OK(w, d)
}
