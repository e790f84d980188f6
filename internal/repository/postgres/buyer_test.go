package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"avocado-hub-backend/internal/domain"
)

func TestBuyerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBuyerRepository(db)

	b := &domain.Buyer{Name: "Fresh Mart", Contact: "0700111222", Location: "Nairobi"}

	mock.ExpectQuery("INSERT INTO buyers").
		WithArgs(b.Name, b.Contact, b.Location).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(context.Background(), b)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), b.ID)
}

func TestBuyerRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBuyerRepository(db)

	cols := []string{"id", "name", "contact", "location", "hass_fruits", "hass_money", "fuerte_fruits", "fuerte_money", "total_fruits", "total_money"}
	mock.ExpectQuery("SELECT (.+) FROM buyers ORDER BY name ASC").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(5, "Fresh Mart", "0700111222", "Nairobi", 0, 0.0, 200, 3000.0, 200, 3000.0))

	buyers, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, buyers, 1)
	assert.Equal(t, int32(200), buyers[0].FuerteFruits)
}

func TestBuyerRepository_RecalculateAggregates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBuyerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE buyers b").
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RecalculateAggregates(ctx, 5))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE buyers b").
			WithArgs(int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, domain.IsNotFound(repo.RecalculateAggregates(ctx, 404)))
	})
}
