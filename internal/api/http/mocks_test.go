package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"avocado-hub-backend/internal/domain"
)

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Record(ctx context.Context, farmerID int32, variety, customerName string, numberOfFruits int32, pricePerFruit, totalAmount float64) (*domain.Order, error) {
	args := m.Called(ctx, farmerID, variety, customerName, numberOfFruits, pricePerFruit, totalAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	args := m.Called(ctx, id, numberOfFruits, pricePerFruit, totalAmount)
	return args.Error(0)
}
func (m *MockOrderService) Retract(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderService) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockSaleService
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Record(ctx context.Context, buyerID int32, variety, customerName string, numberOfFruits int32, pricePerFruit, totalAmount float64) (*domain.Sale, error) {
	args := m.Called(ctx, buyerID, variety, customerName, numberOfFruits, pricePerFruit, totalAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	args := m.Called(ctx, id, numberOfFruits, pricePerFruit, totalAmount)
	return args.Error(0)
}
func (m *MockSaleService) Retract(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSaleService) List(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// MockFarmerService
type MockFarmerService struct {
	mock.Mock
}

func (m *MockFarmerService) Create(ctx context.Context, name, contact, location string) (*domain.Farmer, error) {
	args := m.Called(ctx, name, contact, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}
func (m *MockFarmerService) Get(ctx context.Context, id int32) (*domain.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}
func (m *MockFarmerService) List(ctx context.Context) ([]domain.Farmer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Farmer), args.Error(1)
}
func (m *MockFarmerService) ListNames(ctx context.Context) ([]domain.PartyName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyName), args.Error(1)
}
func (m *MockFarmerService) Update(ctx context.Context, id int32, name, contact, location string) error {
	args := m.Called(ctx, id, name, contact, location)
	return args.Error(0)
}
func (m *MockFarmerService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFarmerService) Recalculate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBuyerService
type MockBuyerService struct {
	mock.Mock
}

func (m *MockBuyerService) Create(ctx context.Context, name, contact, location string) (*domain.Buyer, error) {
	args := m.Called(ctx, name, contact, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}
func (m *MockBuyerService) Get(ctx context.Context, id int32) (*domain.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}
func (m *MockBuyerService) List(ctx context.Context) ([]domain.Buyer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Buyer), args.Error(1)
}
func (m *MockBuyerService) Update(ctx context.Context, id int32, name, contact, location string) error {
	args := m.Called(ctx, id, name, contact, location)
	return args.Error(0)
}
func (m *MockBuyerService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBuyerService) Recalculate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
