package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"wandshop-api/internal/model"
)

// SQLSalesRepository implements SalesRepository on database/sql.
type SQLSalesRepository struct {
	db *sql.DB
}

// NewSQLSalesRepository creates a new sales repository.
func NewSQLSalesRepository(db *sql.DB) *SQLSalesRepository {
	return &SQLSalesRepository{db: db}
}

// Create inserts the sale as given. It has no inventory side effects.
func (r *SQLSalesRepository) Create(ctx context.Context, s *model.Sale) (int64, error) {
	query := `
		INSERT INTO sales (wand_id, customer_id, sale_date, sale_price, payment_method)
		VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		s.WandID, s.CustomerID, s.SaleDate, s.SalePrice, string(s.PaymentMethod))
	if err != nil {
		return 0, fmt.Errorf("failed to insert sale: %w", err)
	}

	id, err := insertedID(res)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sale: %w", err)
	}
	return id, nil
}

// List returns the denormalized sales listing, newest first.
func (r *SQLSalesRepository) List(ctx context.Context) ([]model.SaleReport, error) {
	query := `
		SELECT s.sale_id, s.sale_date, s.sale_price, s.payment_method,
			c.first_name, c.last_name, wt.name, co.material, w.length, w.flexibility
		FROM sales s
		JOIN wands w ON s.wand_id = w.wand_id
		JOIN customers c ON s.customer_id = c.customer_id
		JOIN wood_types wt ON w.wood_id = wt.wood_id
		JOIN cores co ON w.core_id = co.core_id
		ORDER BY s.sale_date DESC, s.sale_id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []model.SaleReport
	for rows.Next() {
		var (
			rep           model.SaleReport
			date          any
			payment, flex string
			first, last   string
		)
		err := rows.Scan(&rep.SaleID, &date, &rep.SalePrice, &payment,
			&first, &last, &rep.WoodType, &rep.CoreMaterial, &rep.Length, &flex)
		if err != nil {
			return nil, &DecodeError{Entity: "sale", Column: "*", Err: err}
		}
		if rep.SaleDate, err = decodeDate("sale", "sale_date", date); err != nil {
			return nil, err
		}
		if rep.PaymentMethod, err = decodeEnum("sale", "payment_method", payment, false, model.ParsePaymentMethod); err != nil {
			return nil, err
		}
		if rep.Flexibility, err = decodeEnum("wand", "flexibility", flex, false, model.ParseFlexibility); err != nil {
			return nil, err
		}
		rep.CustomerName = strings.TrimSpace(first + " " + last)
		sales = append(sales, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}
	return sales, nil
}

// Ensure SQLSalesRepository implements SalesRepository
var _ SalesRepository = (*SQLSalesRepository)(nil)
