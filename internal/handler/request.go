package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"wandshop-api/internal/model"
	"wandshop-api/pkg/apierror"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into v and runs its Validate method.
func decodeJSON(w http.ResponseWriter, r *http.Request, v validation.Validatable) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierror.BadRequest("invalid JSON: " + err.Error())
	}
	return v.Validate()
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.BadRequest(name + " must be a positive integer")
	}
	return id, nil
}

// enumRule accepts an empty value or one that parse recognises.
func enumRule[T any](parse func(string) (T, error)) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := parse(s); err != nil {
			return errors.New("unknown value")
		}
		return nil
	})
}

var nonNegative = validation.By(func(value interface{}) error {
	if d, ok := value.(decimal.Decimal); ok && d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
})

func parseOrZero[T ~string](parse func(string) (T, error), s string) T {
	v, err := parse(strings.TrimSpace(s))
	if err != nil {
		return T(s)
	}
	return v
}

type wandRequest struct {
	WoodID          int64           `json:"wood_id"`
	CoreID          int64           `json:"core_id"`
	Length          float64         `json:"length"`
	Flexibility     string          `json:"flexibility"`
	Condition       string          `json:"condition"`
	Price           decimal.Decimal `json:"price"`
	Status          string          `json:"status"`
	SpecialFeatures string          `json:"special_features"`
	Notes           string          `json:"notes"`
	ProductionDate  string          `json:"production_date"`
}

func (req *wandRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.WoodID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.CoreID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Length, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&req.Flexibility, validation.Required, enumRule(model.ParseFlexibility)),
		validation.Field(&req.Condition, enumRule(model.ParseCondition)),
		validation.Field(&req.Price, nonNegative),
		validation.Field(&req.Status, enumRule(model.ParseWandStatus)),
		validation.Field(&req.SpecialFeatures, validation.Length(0, 500)),
		validation.Field(&req.ProductionDate, validation.Date(model.DateLayout)),
	)
}

func (req *wandRequest) toModel() *model.Wand {
	w := &model.Wand{
		WoodID:          req.WoodID,
		CoreID:          req.CoreID,
		Length:          req.Length,
		Flexibility:     parseOrZero(model.ParseFlexibility, req.Flexibility),
		Price:           req.Price,
		SpecialFeatures: req.SpecialFeatures,
		Notes:           req.Notes,
		ProductionDate:  req.ProductionDate,
	}
	if req.Condition != "" {
		w.Condition = parseOrZero(model.ParseCondition, req.Condition)
	}
	if req.Status != "" {
		w.Status = parseOrZero(model.ParseWandStatus, req.Status)
	}
	return w
}

type customerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	BloodStatus string `json:"blood_status"`
	House       string `json:"house"`
	Species     string `json:"species"`
	WandLicense string `json:"wand_license"`
	Notes       string `json:"notes"`
}

func (req *customerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.BirthDate, validation.Date(model.DateLayout)),
		validation.Field(&req.BloodStatus, enumRule(model.ParseBloodStatus)),
		validation.Field(&req.House, enumRule(model.ParseHouse)),
		validation.Field(&req.WandLicense, validation.Length(0, 50)),
	)
}

func (req *customerRequest) toModel() *model.Customer {
	c := &model.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   req.BirthDate,
		Species:     req.Species,
		WandLicense: req.WandLicense,
		Notes:       req.Notes,
	}
	if req.BloodStatus != "" {
		c.BloodStatus = parseOrZero(model.ParseBloodStatus, req.BloodStatus)
	}
	if req.House != "" {
		c.House = parseOrZero(model.ParseHouse, req.House)
	}
	return c
}

type adjustStockRequest struct {
	Kind       string `json:"kind"`
	MaterialID int64  `json:"material_id"`
	Delta      int    `json:"delta"`
}

func (req *adjustStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Kind, validation.Required, enumRule(model.ParseItemKind)),
		validation.Field(&req.MaterialID, validation.Required, validation.Min(int64(1))),
	)
}

type deliveryItemRequest struct {
	Kind       string `json:"kind"`
	MaterialID int64  `json:"material_id"`
	Quantity   int    `json:"quantity"`
}

func (req deliveryItemRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Kind, validation.Required, enumRule(model.ParseItemKind)),
		validation.Field(&req.MaterialID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type deliveryRequest struct {
	SupplierName string                `json:"supplier_name"`
	ReceivedBy   string                `json:"received_by"`
	Notes        string                `json:"notes"`
	Items        []deliveryItemRequest `json:"items"`
}

func (req *deliveryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SupplierName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Items, validation.Required),
	)
}

func (req *deliveryRequest) toModel() *model.Delivery {
	d := &model.Delivery{
		SupplierName: req.SupplierName,
		ReceivedBy:   req.ReceivedBy,
		Notes:        req.Notes,
		Items:        make([]model.DeliveryItem, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		d.Items = append(d.Items, model.DeliveryItem{
			Kind:       parseOrZero(model.ParseItemKind, it.Kind),
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
		})
	}
	return d
}

type saleRequest struct {
	WandID        int64           `json:"wand_id"`
	CustomerID    int64           `json:"customer_id"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PaymentMethod string          `json:"payment_method"`
}

func (req *saleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.WandID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.CustomerID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.SalePrice, nonNegative),
		validation.Field(&req.PaymentMethod, validation.Required, enumRule(model.ParsePaymentMethod)),
	)
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

// Validate is a no-op: an unconfirmed reset is rejected by the service.
func (req *resetRequest) Validate() error { return nil }
