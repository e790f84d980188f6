package postgres

import (
	"context"
	"database/sql"
	"errors"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/repository"
)

type farmerRepository struct {
	db *sql.DB
}

func NewFarmerRepository(db *sql.DB) repository.FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) Create(ctx context.Context, f *domain.Farmer) error {
	query := `INSERT INTO farmers (name, contact, location) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, f.Name, f.Contact, f.Location).Scan(&f.ID)
}

func (r *farmerRepository) GetByID(ctx context.Context, id int32) (*domain.Farmer, error) {
	f := &domain.Farmer{}
	query := `SELECT id, name, contact, location, hass_fruits, hass_money, fuerte_fruits, fuerte_money, total_fruits, total_money
	          FROM farmers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.Contact, &f.Location, &f.HassFruits, &f.HassMoney, &f.FuerteFruits, &f.FuerteMoney, &f.TotalFruits, &f.TotalMoney)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "farmer", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *farmerRepository) List(ctx context.Context) ([]domain.Farmer, error) {
	query := `SELECT id, name, contact, location, hass_fruits, hass_money, fuerte_fruits, fuerte_money, total_fruits, total_money
	          FROM farmers`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var farmers []domain.Farmer
	for rows.Next() {
		var f domain.Farmer
		if err := rows.Scan(&f.ID, &f.Name, &f.Contact, &f.Location, &f.HassFruits, &f.HassMoney, &f.FuerteFruits, &f.FuerteMoney, &f.TotalFruits, &f.TotalMoney); err != nil {
			return nil, err
		}
		farmers = append(farmers, f)
	}
	return farmers, rows.Err()
}

func (r *farmerRepository) ListNames(ctx context.Context) ([]domain.PartyName, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM farmers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []domain.PartyName
	for rows.Next() {
		var n domain.PartyName
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Update touches contact details only. Aggregate counters are never writable
// from outside the ledger protocol; RecalculateAggregates is the one override.
func (r *farmerRepository) Update(ctx context.Context, id int32, name, contact, location string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE farmers SET name = $1, contact = $2, location = $3 WHERE id = $4`, name, contact, location, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "farmer", ID: id}
	}
	return nil
}

func (r *farmerRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM farmers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "farmer", ID: id}
	}
	return nil
}

// RecalculateAggregates rebuilds all six counters from the farmer's order
// rows in a single statement.
func (r *farmerRepository) RecalculateAggregates(ctx context.Context, id int32) error {
	query := `UPDATE farmers f
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
	              FROM orders WHERE farmer_id = $1
	          ) s
	          WHERE f.id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "farmer", ID: id}
	}
	return nil
}

func (r *farmerRepository) AggregateDrift(ctx context.Context) ([]domain.AggregateDrift, error) {
	query := `SELECT f.id, f.name, f.total_fruits, COALESCE(SUM(o.number_of_fruits), 0), f.total_money, COALESCE(SUM(o.total_amount), 0)
	          FROM farmers f
	          LEFT JOIN orders o ON o.farmer_id = f.id
	          GROUP BY f.id, f.name, f.total_fruits, f.total_money
	          HAVING f.total_fruits <> COALESCE(SUM(o.number_of_fruits), 0)
	              OR f.total_money <> COALESCE(SUM(o.total_amount), 0)
	          ORDER BY f.id`
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
