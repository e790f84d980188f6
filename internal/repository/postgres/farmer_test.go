package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"avocado-hub-backend/internal/domain"
)

func TestFarmerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFarmerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := &domain.Farmer{Name: "Wanjiku", Contact: "0712345678", Location: "Murang'a"}

		mock.ExpectQuery("INSERT INTO farmers").
			WithArgs(f.Name, f.Contact, f.Location).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		err := repo.Create(ctx, f)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), f.ID)
	})
}

func TestFarmerRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFarmerRepository(db)
	ctx := context.Background()

	cols := []string{"id", "name", "contact", "location", "hass_fruits", "hass_money", "fuerte_fruits", "fuerte_money", "total_fruits", "total_money"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM farmers WHERE id").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(3, "Wanjiku", "0712345678", "Murang'a", 100, 1250.0, 0, 0.0, 100, 1250.0))

		f, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Wanjiku", f.Name)
		assert.Equal(t, int32(100), f.HassFruits)
		assert.Equal(t, 1250.0, f.TotalMoney)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM farmers WHERE id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows(cols))

		f, err := repo.GetByID(ctx, 404)
		assert.Nil(t, f)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestFarmerRepository_ListNames(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFarmerRepository(db)

	mock.ExpectQuery("SELECT id, name FROM farmers ORDER BY name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(2, "Atieno").
			AddRow(1, "Wanjiku"))

	names, err := repo.ListNames(context.Background())
	assert.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Equal(t, "Atieno", names[0].Name)
}

func TestFarmerRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFarmerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE farmers SET name").
			WithArgs("Wanjiku", "0798765432", "Nyeri", int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, 3, "Wanjiku", "0798765432", "Nyeri")
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE farmers SET name").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, 404, "x", "y", "z")
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestFarmerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFarmerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM farmers").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM farmers").
			WithArgs(int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, domain.IsNotFound(repo.Delete(ctx, 404)))
	})
}

func TestFarmerRepository_RecalculateAggregates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFarmerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE farmers f").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RecalculateAggregates(ctx, 3))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE farmers f").
			WithArgs(int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, domain.IsNotFound(repo.RecalculateAggregates(ctx, 404)))
	})
}

func TestFarmerRepository_AggregateDrift(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFarmerRepository(db)

	mock.ExpectQuery("SELECT f.id, f.name, f.total_fruits").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stored_fruits", "expected_fruits", "stored_money", "expected_money"}).
			AddRow(3, "Wanjiku", 100, 90, 1250.0, 1125.0))

	drifts, err := repo.AggregateDrift(context.Background())
	assert.NoError(t, err)
	assert.Len(t, drifts, 1)
	assert.Equal(t, int32(100), drifts[0].StoredFruits)
	assert.Equal(t, int32(90), drifts[0].ExpectedFruits)
}
