package service

import (
	"context"

	"avocado-hub-backend/internal/domain"
)

// OrderService is the coordinator for the farmer-side ledger: it validates
// requests, resolves the counterparty snapshot, and drives the transactional
// write protocol in the repository.
type OrderService interface {
	Record(ctx context.Context, farmerID int32, variety, customerName string, numberOfFruits int32, pricePerFruit, totalAmount float64) (*domain.Order, error)
	Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error
	Retract(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Order, error)
}

// SaleService mirrors OrderService on the buyer side.
type SaleService interface {
	Record(ctx context.Context, buyerID int32, variety, customerName string, numberOfFruits int32, pricePerFruit, totalAmount float64) (*domain.Sale, error)
	Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error
	Retract(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Sale, error)
}

type FarmerService interface {
	Create(ctx context.Context, name, contact, location string) (*domain.Farmer, error)
	Get(ctx context.Context, id int32) (*domain.Farmer, error)
	List(ctx context.Context) ([]domain.Farmer, error)
	ListNames(ctx context.Context) ([]domain.PartyName, error)
	Update(ctx context.Context, id int32, name, contact, location string) error
	Delete(ctx context.Context, id int32) error
	Recalculate(ctx context.Context, id int32) error
}

type BuyerService interface {
	Create(ctx context.Context, name, contact, location string) (*domain.Buyer, error)
	Get(ctx context.Context, id int32) (*domain.Buyer, error)
	List(ctx context.Context) ([]domain.Buyer, error)
	Update(ctx context.Context, id int32, name, contact, location string) error
	Delete(ctx context.Context, id int32) error
	Recalculate(ctx context.Context, id int32) error
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, access token
}

// LedgerAuditService compares stored party aggregates against the sums
// recomputed from transaction rows, optionally repairing any drift.
type LedgerAuditService interface {
	AuditFarmers(ctx context.Context, repair bool) ([]domain.AggregateDrift, error)
	AuditBuyers(ctx context.Context, repair bool) ([]domain.AggregateDrift, error)
}

type EmailService interface {
	SendDriftAlert(ctx context.Context, ledger string, drifts []domain.AggregateDrift) error
}
