package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/repository"
)

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// Record mirrors the order protocol against the buyers ledger: sale row and
// buyer aggregate adjustment as one transactional unit.
func (r *saleRepository) Record(ctx context.Context, s *domain.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO sales (buyer_id, avocado_type, customer_name, number_of_fruits, price_per_fruit, total_amount, sale_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	if err := tx.QueryRowContext(ctx, query, s.BuyerID, s.Variety, s.CustomerName, s.NumberOfFruits, s.PricePerFruit, s.TotalAmount, now).Scan(&s.ID); err != nil {
		return err
	}
	s.SaleDate = now

	if err := applyPartyDelta(ctx, tx, "buyers", "buyer", s.BuyerID, s.Variety, s.NumberOfFruits, s.TotalAmount); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return &domain.PartialFailureError{Op: "record", Message: "sale recorded but failed to update buyer totals", Err: err}
	}
	return tx.Commit()
}

func (r *saleRepository) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		buyerID   int32
		variety   domain.Variety
		oldFruits int32
		oldAmount float64
	)
	fetch := `SELECT buyer_id, avocado_type, number_of_fruits, total_amount FROM sales WHERE id = $1`
	if err := tx.QueryRowContext(ctx, fetch, id).Scan(&buyerID, &variety, &oldFruits, &oldAmount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "sale", ID: id}
		}
		return err
	}

	update := `UPDATE sales SET number_of_fruits = $1, price_per_fruit = $2, total_amount = $3 WHERE id = $4`
	if _, err := tx.ExecContext(ctx, update, numberOfFruits, pricePerFruit, totalAmount, id); err != nil {
		return err
	}

	if err := applyPartyDelta(ctx, tx, "buyers", "buyer", buyerID, variety, numberOfFruits-oldFruits, totalAmount-oldAmount); err != nil {
		return &domain.PartialFailureError{Op: "amend", Message: "sale updated but failed to update buyer totals", Err: err}
	}
	return tx.Commit()
}

func (r *saleRepository) Retract(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		buyerID int32
		variety domain.Variety
		fruits  int32
		amount  float64
	)
	fetch := `SELECT buyer_id, avocado_type, number_of_fruits, total_amount FROM sales WHERE id = $1`
	if err := tx.QueryRowContext(ctx, fetch, id).Scan(&buyerID, &variety, &fruits, &amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "sale", ID: id}
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return err
	}

	if err := applyPartyDelta(ctx, tx, "buyers", "buyer", buyerID, variety, -fruits, -amount); err != nil {
		return &domain.PartialFailureError{Op: "retract", Message: "sale deleted but failed to update buyer totals", Err: err}
	}
	return tx.Commit()
}

func (r *saleRepository) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	s := &domain.Sale{}
	query := `SELECT id, buyer_id, avocado_type, customer_name, number_of_fruits, price_per_fruit, total_amount, sale_date FROM sales WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.BuyerID, &s.Variety, &s.CustomerName, &s.NumberOfFruits, &s.PricePerFruit, &s.TotalAmount, &s.SaleDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "sale", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT id, buyer_id, avocado_type, customer_name, number_of_fruits, price_per_fruit, total_amount, sale_date
	          FROM sales ORDER BY sale_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.BuyerID, &s.Variety, &s.CustomerName, &s.NumberOfFruits, &s.PricePerFruit, &s.TotalAmount, &s.SaleDate); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
