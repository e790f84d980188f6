package postgres

import (
	"context"
	"database/sql"
	"errors"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/repository"
)

type buyerRepository struct {
	db *sql.DB
}

func NewBuyerRepository(db *sql.DB) repository.BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, b *domain.Buyer) error {
	query := `INSERT INTO buyers (name, contact, location) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Name, b.Contact, b.Location).Scan(&b.ID)
}

func (r *buyerRepository) GetByID(ctx context.Context, id int32) (*domain.Buyer, error) {
	b := &domain.Buyer{}
	query := `SELECT id, name, contact, location, hass_fruits, hass_money, fuerte_fruits, fuerte_money, total_fruits, total_money
	          FROM buyers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.Contact, &b.Location, &b.HassFruits, &b.HassMoney, &b.FuerteFruits, &b.FuerteMoney, &b.TotalFruits, &b.TotalMoney)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "buyer", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *buyerRepository) List(ctx context.Context) ([]domain.Buyer, error) {
	query := `SELECT id, name, contact, location, hass_fruits, hass_money, fuerte_fruits, fuerte_money, total_fruits, total_money
	          FROM buyers ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buyers []domain.Buyer
	for rows.Next() {
		var b domain.Buyer
		if err := rows.Scan(&b.ID, &b.Name, &b.Contact, &b.Location, &b.HassFruits, &b.HassMoney, &b.FuerteFruits, &b.FuerteMoney, &b.TotalFruits, &b.TotalMoney); err != nil {
			return nil, err
		}
		buyers = append(buyers, b)
	}
	return buyers, rows.Err()
}

func (r *buyerRepository) Update(ctx context.Context, id int32, name, contact, location string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE buyers SET name = $1, contact = $2, location = $3 WHERE id = $4`, name, contact, location, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "buyer", ID: id}
	}
	return nil
}

func (r *buyerRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM buyers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "buyer", ID: id}
	}
	return nil
}

func (r *buyerRepository) RecalculateAggregates(ctx context.Context, id int32) error {
	query := `UPDATE buyers b
	          SET hass_fruits = s.hass_fruits,
	              hass_money = s.hass_money,
	              fuerte_fruits = s.fuerte_fruits,
	              fuerte_money = s.fuerte_money,
	              total_fruits = s.total_fruits,
	              total_money = s.total_money
	          FROM (
	              SELECT COALESCE(SUM(number_of_fruits) FILTER (WHERE avocado_type = 'hass'), 0) AS hass_fruits,
	                     COALESCE(SUM(total_amount) FILTER (WHERE avocado_type = 'hass'), 0) AS hass_money,
	                     COALESCE(SUM(number_of_fruits) FILTER (WHERE avocado_type = 'fuerte'), 0) AS fuerte_fruits,
	                     COALESCE(SUM(total_amount) FILTER (WHERE avocado_type = 'fuerte'), 0) AS fuerte_money,
	                     COALESCE(SUM(number_of_fruits), 0) AS total_fruits,
	                     COALESCE(SUM(total_amount), 0) AS total_money
	              FROM sales WHERE buyer_id = $1
	          ) s
	          WHERE b.id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "buyer", ID: id}
	}
	return nil
}

func (r *buyerRepository) AggregateDrift(ctx context.Context) ([]domain.AggregateDrift, error) {
	query := `SELECT b.id, b.name, b.total_fruits, COALESCE(SUM(s.number_of_fruits), 0), b.total_money, COALESCE(SUM(s.total_amount), 0)
	          FROM buyers b
	          LEFT JOIN sales s ON s.buyer_id = b.id
	          GROUP BY b.id, b.name, b.total_fruits, b.total_money
	          HAVING b.total_fruits <> COALESCE(SUM(s.number_of_fruits), 0)
	              OR b.total_money <> COALESCE(SUM(s.total_amount), 0)
	          ORDER BY b.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drifts []domain.AggregateDrift
	for rows.Next() {
		var d domain.AggregateDrift
		if err := rows.Scan(&d.PartyID, &d.Name, &d.StoredFruits, &d.ExpectedFruits, &d.StoredMoney, &d.ExpectedMoney); err != nil {
			return nil, err
		}
		drifts = append(drifts, d)
	}
	return drifts, rows.Err()
}
