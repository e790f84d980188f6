package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Record inserts the order row and applies its positive delta to the farmer's
// aggregates as one unit. If the aggregate step fails after the insert the
// pair is rolled back and the outcome is reported as a PartialFailureError so
// callers can tell it apart from a total failure.
func (r *orderRepository) Record(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO orders (farmer_id, avocado_type, customer_name, number_of_fruits, price_per_fruit, total_amount, order_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	if err := tx.QueryRowContext(ctx, query, o.FarmerID, o.Variety, o.CustomerName, o.NumberOfFruits, o.PricePerFruit, o.TotalAmount, now).Scan(&o.ID); err != nil {
		return err
	}
	o.OrderDate = now

	if err := applyPartyDelta(ctx, tx, "farmers", "farmer", o.FarmerID, o.Variety, o.NumberOfFruits, o.TotalAmount); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return &domain.PartialFailureError{Op: "record", Message: "order recorded but failed to update farmer totals", Err: err}
	}
	return tx.Commit()
}

// Amend overwrites the order's quantity, price and amount and moves the
// farmer's aggregates by the signed difference against the stored row. Reading
// the row first is load-bearing: the delta, not the new absolute values, is
// what keeps repeated amendments from double counting.
func (r *orderRepository) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		farmerID  int32
		variety   domain.Variety
		oldFruits int32
		oldAmount float64
	)
	fetch := `SELECT farmer_id, avocado_type, number_of_fruits, total_amount FROM orders WHERE id = $1`
	if err := tx.QueryRowContext(ctx, fetch, id).Scan(&farmerID, &variety, &oldFruits, &oldAmount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "order", ID: id}
		}
		return err
	}

	update := `UPDATE orders SET number_of_fruits = $1, price_per_fruit = $2, total_amount = $3 WHERE id = $4`
	if _, err := tx.ExecContext(ctx, update, numberOfFruits, pricePerFruit, totalAmount, id); err != nil {
		return err
	}

	if err := applyPartyDelta(ctx, tx, "farmers", "farmer", farmerID, variety, numberOfFruits-oldFruits, totalAmount-oldAmount); err != nil {
		return &domain.PartialFailureError{Op: "amend", Message: "order updated but failed to update farmer totals", Err: err}
	}
	return tx.Commit()
}

// Retract deletes the order row and subtracts its original delta from the
// farmer's aggregates. A partial failure here is the most dangerous outcome
// since no row remains to reconcile against; the service layer logs it loudly.
func (r *orderRepository) Retract(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		farmerID int32
		variety  domain.Variety
		fruits   int32
		amount   float64
	)
	fetch := `SELECT farmer_id, avocado_type, number_of_fruits, total_amount FROM orders WHERE id = $1`
	if err := tx.QueryRowContext(ctx, fetch, id).Scan(&farmerID, &variety, &fruits, &amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "order", ID: id}
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return err
	}

	if err := applyPartyDelta(ctx, tx, "farmers", "farmer", farmerID, variety, -fruits, -amount); err != nil {
		return &domain.PartialFailureError{Op: "retract", Message: "order deleted but failed to update farmer totals", Err: err}
	}
	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	o := &domain.Order{}
	query := `SELECT id, farmer_id, avocado_type, customer_name, number_of_fruits, price_per_fruit, total_amount, order_date FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.FarmerID, &o.Variety, &o.CustomerName, &o.NumberOfFruits, &o.PricePerFruit, &o.TotalAmount, &o.OrderDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "order", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT id, farmer_id, avocado_type, customer_name, number_of_fruits, price_per_fruit, total_amount, order_date
	          FROM orders ORDER BY order_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.FarmerID, &o.Variety, &o.CustomerName, &o.NumberOfFruits, &o.PricePerFruit, &o.TotalAmount, &o.OrderDate); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
