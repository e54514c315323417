package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"wandshop-api/internal/model"
)

const customerColumns = `customer_id, first_name, last_name, birth_date, blood_status, house,
	species, wand_license, notes, registration_date`

// SQLCustomerRepository implements CustomerRepository on database/sql.
type SQLCustomerRepository struct {
	db *sql.DB
}

// NewSQLCustomerRepository creates a new customer repository.
func NewSQLCustomerRepository(db *sql.DB) *SQLCustomerRepository {
	return &SQLCustomerRepository{db: db}
}

// Create inserts the customer; the registration date is assigned by the store.
func (r *SQLCustomerRepository) Create(ctx context.Context, c *model.Customer) (int64, error) {
	query := `
		INSERT INTO customers (first_name, last_name, birth_date, blood_status, house,
			species, wand_license, notes, registration_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`

	res, err := r.db.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.BirthDate, string(c.BloodStatus), string(c.House),
		c.Species, nullLicense(c.WandLicense), c.Notes)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateLicense
		}
		return 0, fmt.Errorf("failed to insert customer: %w", err)
	}

	id, err := insertedID(res)
	if err != nil {
		return 0, fmt.Errorf("failed to insert customer: %w", err)
	}
	return id, nil
}

// Get returns nil when the customer does not exist.
func (r *SQLCustomerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = ?`

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, nil
}

// List returns all customers ordered by last then first name.
func (r *SQLCustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY last_name, first_name`
	return r.query(ctx, query)
}

// FindByName matches name as a substring of first or last name.
func (r *SQLCustomerRepository) FindByName(ctx context.Context, name string) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
		WHERE first_name LIKE ? OR last_name LIKE ?
		ORDER BY last_name, first_name`
	p := likePattern(name)
	return r.query(ctx, query, p, p)
}

func (r *SQLCustomerRepository) query(ctx context.Context, query string, args ...any) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}
	return customers, nil
}

// Update overwrites every mutable column; the registration date is kept.
func (r *SQLCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers SET first_name = ?, last_name = ?, birth_date = ?, blood_status = ?,
			house = ?, species = ?, wand_license = ?, notes = ?
		WHERE customer_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.BirthDate, string(c.BloodStatus), string(c.House),
		c.Species, nullLicense(c.WandLicense), c.Notes, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateLicense
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return expectRow(res, "customer", c.ID)
}

// Delete removes the customer.
func (r *SQLCustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("customer %d has sales: %w", id, ErrInUse)
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return expectRow(res, "customer", id)
}

// CountByLicense returns how many customers other than excludeID hold license.
func (r *SQLCustomerRepository) CountByLicense(ctx context.Context, license string, excludeID int64) (int, error) {
	query := `SELECT COUNT(*) FROM customers WHERE wand_license = ? AND customer_id <> ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, strings.TrimSpace(license), excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count wand licenses: %w", err)
	}
	return count, nil
}

func scanCustomer(s scanner) (*model.Customer, error) {
	var (
		c                 model.Customer
		blood, house      string
		birth, registered any
		license           sql.NullString
	)
	err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &birth, &blood, &house,
		&c.Species, &license, &c.Notes, &registered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &DecodeError{Entity: "customer", Column: "*", Err: err}
	}

	if c.BirthDate, err = decodeDate("customer", "birth_date", birth); err != nil {
		return nil, err
	}
	if c.BloodStatus, err = decodeEnum("customer", "blood_status", blood, true, model.ParseBloodStatus); err != nil {
		return nil, err
	}
	if c.House, err = decodeEnum("customer", "house", house, true, model.ParseHouse); err != nil {
		return nil, err
	}
	if c.RegistrationDate, err = decodeTime("customer", "registration_date", registered); err != nil {
		return nil, err
	}
	c.WandLicense = license.String
	return &c, nil
}

// nullLicense stores a blank license as NULL so the unique index ignores it.
func nullLicense(license string) sql.NullString {
	license = strings.TrimSpace(license)
	return sql.NullString{String: license, Valid: license != ""}
}

// Ensure SQLCustomerRepository implements CustomerRepository
var _ CustomerRepository = (*SQLCustomerRepository)(nil)
