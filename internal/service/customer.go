package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"wandshop-api/internal/model"
	"wandshop-api/internal/repository"
)

// CustomerService manages the customer registry.
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new customer service.
// Returns nil if repo is nil (required dependency).
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	if repo == nil {
		return nil
	}
	return &CustomerService{repo: repo}
}

// ValidateWandLicense reports whether license may be assigned to a new
// customer. A blank license is always valid.
func (s *CustomerService) ValidateWandLicense(ctx context.Context, license string) (bool, error) {
	return s.licenseAvailable(ctx, license, 0)
}

func (s *CustomerService) licenseAvailable(ctx context.Context, license string, excludeID int64) (bool, error) {
	if strings.TrimSpace(license) == "" {
		return true, nil
	}
	n, err := s.repo.CountByLicense(ctx, license, excludeID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// CreateCustomer registers a customer and returns its id.
func (s *CustomerService) CreateCustomer(ctx context.Context, c *model.Customer) (int64, error) {
	if err := s.check(ctx, c, 0); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return 0, mapLicenseError(err)
	}
	c.ID = id
	return id, nil
}

// GetCustomer returns nil when the customer does not exist.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}

// FindCustomersByName matches first or last name. A blank name lists everyone.
func (s *CustomerService) FindCustomersByName(ctx context.Context, name string) ([]model.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.FindByName(ctx, name)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	if c.ID <= 0 {
		return invalid("id", "must be positive")
	}
	if err := s.check(ctx, c, c.ID); err != nil {
		return err
	}
	return mapLicenseError(s.repo.Update(ctx, c))
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *CustomerService) check(ctx context.Context, c *model.Customer, selfID int64) error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.WandLicense = strings.TrimSpace(c.WandLicense)

	switch {
	case c.FirstName == "":
		return invalid("first_name", "is required")
	case c.LastName == "":
		return invalid("last_name", "is required")
	case c.BloodStatus != "" && !c.BloodStatus.Valid():
		return invalid("blood_status", "unknown value %q", c.BloodStatus)
	case c.House != "" && !c.House.Valid():
		return invalid("house", "unknown value %q", c.House)
	}
	if c.BirthDate != "" {
		if _, err := time.Parse(model.DateLayout, c.BirthDate); err != nil {
			return invalid("birth_date", "must be formatted as YYYY-MM-DD")
		}
	}

	ok, err := s.licenseAvailable(ctx, c.WandLicense, selfID)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("wand_license", "%q is already registered", c.WandLicense)
	}
	return nil
}

// mapLicenseError turns the unique-index backstop into the same
// ValidationError the pre-check produces.
func mapLicenseError(err error) error {
	if errors.Is(err, repository.ErrDuplicateLicense) {
		return invalid("wand_license", "is already registered")
	}
	return err
}
