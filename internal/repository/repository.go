package repository

import (
	"context"

	"avocado-hub-backend/internal/domain"
)

type FarmerRepository interface {
	Create(ctx context.Context, farmer *domain.Farmer) error
	GetByID(ctx context.Context, id int32) (*domain.Farmer, error)
	List(ctx context.Context) ([]domain.Farmer, error)
	ListNames(ctx context.Context) ([]domain.PartyName, error)
	Update(ctx context.Context, id int32, name, contact, location string) error
	Delete(ctx context.Context, id int32) error

	// Aggregate maintenance. RecalculateAggregates rebuilds every counter from
	// the farmer's order rows; AggregateDrift lists farmers whose stored
	// counters disagree with those sums.
	RecalculateAggregates(ctx context.Context, id int32) error
	AggregateDrift(ctx context.Context) ([]domain.AggregateDrift, error)
}

type BuyerRepository interface {
	Create(ctx context.Context, buyer *domain.Buyer) error
	GetByID(ctx context.Context, id int32) (*domain.Buyer, error)
	List(ctx context.Context) ([]domain.Buyer, error)
	Update(ctx context.Context, id int32, name, contact, location string) error
	Delete(ctx context.Context, id int32) error

	RecalculateAggregates(ctx context.Context, id int32) error
	AggregateDrift(ctx context.Context) ([]domain.AggregateDrift, error)
}

// OrderRepository owns the farmer-side ledger write protocol. Record, Amend
// and Retract each pair the order-row write with the farmer aggregate
// adjustment inside one database transaction.
type OrderRepository interface {
	Record(ctx context.Context, order *domain.Order) error
	Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error
	Retract(ctx context.Context, id int32) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

// SaleRepository mirrors OrderRepository on the buyer side.
type SaleRepository interface {
	Record(ctx context.Context, sale *domain.Sale) error
	Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error
	Retract(ctx context.Context, id int32) error
	GetByID(ctx context.Context, id int32) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
