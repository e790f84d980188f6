package service

import (
	"context"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/logger"
	"avocado-hub-backend/internal/repository"
)

type saleService struct {
	saleRepo  repository.SaleRepository
	buyerRepo repository.BuyerRepository
}

func NewSaleService(saleRepo repository.SaleRepository, buyerRepo repository.BuyerRepository) SaleService {
	return &saleService{saleRepo: saleRepo, buyerRepo: buyerRepo}
}

func (s *saleService) Record(ctx context.Context, buyerID int32, variety, customerName string, numberOfFruits int32, pricePerFruit, totalAmount float64) (*domain.Sale, error) {
	switch {
	case buyerID == 0:
		return nil, &domain.ValidationError{Field: "buyerId"}
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

	if customerName == "" {
		buyer, err := s.buyerRepo.GetByID(ctx, buyerID)
		if err != nil {
			return nil, err
		}
		customerName = buyer.Name
	}

	sale := &domain.Sale{
		BuyerID:        buyerID,
		Variety:        v,
		CustomerName:   customerName,
		NumberOfFruits: numberOfFruits,
		PricePerFruit:  pricePerFruit,
		TotalAmount:    totalAmount,
	}
	if err := s.saleRepo.Record(ctx, sale); err != nil {
		if domain.IsPartialFailure(err) {
			logger.Error("Sale ledger write partially failed", "op", "record", "buyer_id", buyerID, "error", err)
		}
		return nil, err
	}
	return sale, nil
}

func (s *saleService) Amend(ctx context.Context, id, numberOfFruits int32, pricePerFruit, totalAmount float64) error {
	switch {
	case numberOfFruits == 0:
		return &domain.ValidationError{Field: "numberOfFruits"}
	case pricePerFruit == 0:
		return &domain.ValidationError{Field: "pricePerFruit"}
	case totalAmount == 0:
		return &domain.ValidationError{Field: "totalAmount"}
	}

	if err := s.saleRepo.Amend(ctx, id, numberOfFruits, pricePerFruit, totalAmount); err != nil {
		if domain.IsPartialFailure(err) {
			logger.Error("Sale ledger write partially failed", "op", "amend", "sale_id", id, "error", err)
		}
		return err
	}
	return nil
}

func (s *saleService) Retract(ctx context.Context, id int32) error {
	if err := s.saleRepo.Retract(ctx, id); err != nil {
		if domain.IsPartialFailure(err) {
			logger.Error("Sale retraction left buyer totals unadjusted", "op", "retract", "sale_id", id, "error", err)
		}
		return err
	}
	return nil
}

func (s *saleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.saleRepo.List(ctx)
}
