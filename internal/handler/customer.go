package handler

import (
	"net/http"
	"strings"

	"wandshop-api/internal/model"
	"wandshop-api/internal/service"
	"wandshop-api/pkg/apierror"
	"wandshop-api/pkg/response"
)

// CustomerHandler handles customer registry HTTP requests.
type CustomerHandler struct {
	customers *service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List handles GET /api/v1/customers, filtered by ?name= when present.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		customers []model.Customer
		err       error
	)
	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		customers, err = h.customers.FindCustomersByName(r.Context(), name)
	} else {
		customers, err = h.customers.ListCustomers(r.Context())
	}
	if err != nil {
		fail(w, r, err)
		return
	}

	response.List(w, customers, len(customers))
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	c := req.toModel()
	id, err := h.customers.CreateCustomer(r.Context(), c)
	if err != nil {
		fail(w, r, err)
		return
	}

	// Re-read to pick up the server-assigned registration date.
	created, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if created == nil {
		created = c
	}

	response.Created(w, created)
}

// Get handles GET /api/v1/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	c, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if c == nil {
		fail(w, r, apierror.NotFound("customer not found"))
		return
	}

	response.OK(w, c)
}

// Update handles PUT /api/v1/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	var req customerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	c := req.toModel()
	c.ID = id
	if err := h.customers.UpdateCustomer(r.Context(), c); err != nil {
		fail(w, r, err)
		return
	}

	// Re-read so registration_date reflects the stored row.
	updated, err := h.customers.GetCustomer(r.Context(), id)
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

// Delete handles DELETE /api/v1/customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}

	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}

	response.NoContent(w)
}

// LicenseCheck is the body of a license validation response.
type LicenseCheck struct {
	License   string `json:"license"`
	Available bool   `json:"available"`
}

// ValidateLicense handles GET /api/v1/customers/license/validate?license=
func (h *CustomerHandler) ValidateLicense(w http.ResponseWriter, r *http.Request) {
	license := r.URL.Query().Get("license")

	ok, err := h.customers.ValidateWandLicense(r.Context(), license)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, LicenseCheck{License: strings.TrimSpace(license), Available: ok})
}
