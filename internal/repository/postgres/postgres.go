package postgres

import (
	"database/sql"

	"avocado-hub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.FarmerRepository
	repository.BuyerRepository
	repository.OrderRepository
	repository.SaleRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		FarmerRepository: NewFarmerRepository(db),
		BuyerRepository:  NewBuyerRepository(db),
		OrderRepository:  NewOrderRepository(db),
		SaleRepository:   NewSaleRepository(db),
		UserRepository:   NewUserRepository(db),
	}
}
