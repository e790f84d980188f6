package service

import (
	"context"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/logger"
	"avocado-hub-backend/internal/repository"
)

type orderService struct {
	orderRepo  repository.OrderRepository
	farmerRepo repository.FarmerRepository
}

func NewOrderService(orderRepo repository.OrderRepository, farmerRepo repository.FarmerRepository) OrderService {
	return &orderService{orderRepo: orderRepo, farmerRepo: farmerRepo}
}

func (s *orderService) Record(ctx context.Context, farmerID int32, variety, customerName string, numberOfFruits int32, pricePerFruit, totalAmount float64) (*domain.Order, error) {
	switch {
	case farmerID == 0:
		return nil, &domain.ValidationError{Field: "farmerId"}
	case variety == "":
		return nil, &domain.ValidationError{Field: "avocadoType"}
	case numberOfFruits == 0:
		return nil, &domain.ValidationError{Field: "numberOfFruits"}
	case pricePerFruit == 0:
		return nil, &domain.ValidationError{Field: "pricePerFruit"}
	case totalAmount == 0:
		return nil, &domain.ValidationError{Field: "totalAmount"}
	}

	v, err := domain.ParseVariety(variety)
	if err != nil {
		return nil, &domain.ValidationError{Field: "avocadoType"}
	}

	// Snapshot the farmer's current name when the caller did not supply one.
	// The lookup also guards the foreign reference before any write happens.
	if customerName == "" {
		farmer, err := s.farmerRepo.GetByID(ctx, farmerID)
		if err != nil {
			return nil, err
		}
		customerName = farmer.Name
	}

	order := &domain.Order{
		FarmerID:       farmerID,
		Variety:        v,
		CustomerName:   customerName,
		NumberOfFruits: numberOfFruits,
		PricePerFruit:  pricePerFruit,
		TotalAmount:    totalAmount,
	}
	if err := s.orderRepo.Record(ctx, order); err != nil {
		if domain.IsPartialFailure(err) {
			logger.Error("Order ledger write partially failed", "op", "record", "farmer_id", farmerID, "error", err)
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	switch {
	case numberOfFruits == 0:
		return &domain.ValidationError{Field: "numberOfFruits"}
	case pricePerFruit == 0:
		return &domain.ValidationError{Field: "pricePerFruit"}
	case totalAmount == 0:
		return &domain.ValidationError{Field: "totalAmount"}
	}

	if err := s.orderRepo.Amend(ctx, id, numberOfFruits, pricePerFruit, totalAmount); err != nil {
		if domain.IsPartialFailure(err) {
			logger.Error("Order ledger write partially failed", "op", "amend", "order_id", id, "error", err)
		}
		return err
	}
	return nil
}

func (s *orderService) Retract(ctx context.Context, id int32) error {
	if err := s.orderRepo.Retract(ctx, id); err != nil {
		if domain.IsPartialFailure(err) {
			// The row is gone, so there is nothing left to reconcile against.
			logger.Error("Order retraction left farmer totals unadjusted", "op", "retract", "order_id", id, "error", err)
		}
		return err
	}
	return nil
}

func (s *orderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.List(ctx)
}
