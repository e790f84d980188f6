package service

import (
	"context"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/logger"
	"avocado-hub-backend/internal/repository"
)

type ledgerAuditService struct {
	farmerRepo repository.FarmerRepository
	buyerRepo  repository.BuyerRepository
}

func NewLedgerAuditService(farmerRepo repository.FarmerRepository, buyerRepo repository.BuyerRepository) LedgerAuditService {
	return &ledgerAuditService{farmerRepo: farmerRepo, buyerRepo: buyerRepo}
}

func (s *ledgerAuditService) AuditFarmers(ctx context.Context, repair bool) ([]domain.AggregateDrift, error) {
	drifts, err := s.farmerRepo.AggregateDrift(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range drifts {
		logger.Warn("Farmer aggregates out of sync with orders",
			"farmer_id", d.PartyID,
			"name", d.Name,
			"stored_fruits", d.StoredFruits,
			"expected_fruits", d.ExpectedFruits,
			"stored_money", d.StoredMoney,
			"expected_money", d.ExpectedMoney)
		if repair {
			if err := s.farmerRepo.RecalculateAggregates(ctx, d.PartyID); err != nil {
				logger.Error("Failed to repair farmer aggregates", "farmer_id", d.PartyID, "error", err)
				continue
			}
			logger.Info("Farmer aggregates recalculated", "farmer_id", d.PartyID)
		}
	}
	return drifts, nil
}

func (s *ledgerAuditService) AuditBuyers(ctx context.Context, repair bool) ([]domain.AggregateDrift, error) {
	drifts, err := s.buyerRepo.AggregateDrift(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range drifts {
		logger.Warn("Buyer aggregates out of sync with sales",
			"buyer_id", d.PartyID,
			"name", d.Name,
			"stored_fruits", d.StoredFruits,
			"expected_fruits", d.ExpectedFruits,
			"stored_money", d.StoredMoney,
			"expected_money", d.ExpectedMoney)
		if repair {
			if err := s.buyerRepo.RecalculateAggregates(ctx, d.PartyID); err != nil {
				logger.Error("Failed to repair buyer aggregates", "buyer_id", d.PartyID, "error", err)
				continue
			}
			logger.Info("Buyer aggregates recalculated", "buyer_id", d.PartyID)
		}
	}
	return drifts, nil
}
