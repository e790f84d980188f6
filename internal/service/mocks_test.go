package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/security"
)

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Record(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	args := m.Called(ctx, id, numberOfFruits, pricePerFruit, totalAmount)
	return args.Error(0)
}
func (m *MockOrderRepo) Retract(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockSaleRepo
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Record(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}
func (m *MockSaleRepo) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	args := m.Called(ctx, id, numberOfFruits, pricePerFruit, totalAmount)
	return args.Error(0)
}
func (m *MockSaleRepo) Retract(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSaleRepo) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// MockFarmerRepo
type MockFarmerRepo struct {
	mock.Mock
}

func (m *MockFarmerRepo) Create(ctx context.Context, farmer *domain.Farmer) error {
	args := m.Called(ctx, farmer)
	return args.Error(0)
}
func (m *MockFarmerRepo) GetByID(ctx context.Context, id int32) (*domain.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}
func (m *MockFarmerRepo) List(ctx context.Context) ([]domain.Farmer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Farmer), args.Error(1)
}
func (m *MockFarmerRepo) ListNames(ctx context.Context) ([]domain.PartyName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyName), args.Error(1)
}
func (m *MockFarmerRepo) Update(ctx context.Context, id int32, name, contact, location string) error {
	args := m.Called(ctx, id, name, contact, location)
	return args.Error(0)
}
func (m *MockFarmerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFarmerRepo) RecalculateAggregates(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFarmerRepo) AggregateDrift(ctx context.Context) ([]domain.AggregateDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AggregateDrift), args.Error(1)
}

// MockBuyerRepo
type MockBuyerRepo struct {
	mock.Mock
}

func (m *MockBuyerRepo) Create(ctx context.Context, buyer *domain.Buyer) error {
	args := m.Called(ctx, buyer)
	return args.Error(0)
}
func (m *MockBuyerRepo) GetByID(ctx context.Context, id int32) (*domain.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}
func (m *MockBuyerRepo) List(ctx context.Context) ([]domain.Buyer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Buyer), args.Error(1)
}
func (m *MockBuyerRepo) Update(ctx context.Context, id int32, name, contact, location string) error {
	args := m.Called(ctx, id, name, contact, location)
	return args.Error(0)
}
func (m *MockBuyerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBuyerRepo) RecalculateAggregates(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBuyerRepo) AggregateDrift(ctx context.Context) ([]domain.AggregateDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AggregateDrift), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
