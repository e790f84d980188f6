package service

import (
	"context"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/repository"
)

type buyerService struct {
	buyerRepo repository.BuyerRepository
}

func NewBuyerService(buyerRepo repository.BuyerRepository) BuyerService {
	return &buyerService{buyerRepo: buyerRepo}
}

func (s *buyerService) Create(ctx context.Context, name, contact, location string) (*domain.Buyer, error) {
	switch {
	case name == "":
		return nil, &domain.ValidationError{Field: "name"}
	case contact == "":
		return nil, &domain.ValidationError{Field: "contact"}
	case location == "":
		return nil, &domain.ValidationError{Field: "location"}
	}

	buyer := &domain.Buyer{Name: name, Contact: contact, Location: location}
	if err := s.buyerRepo.Create(ctx, buyer); err != nil {
		return nil, err
	}
	return buyer, nil
}

func (s *buyerService) Get(ctx context.Context, id int32) (*domain.Buyer, error) {
	return s.buyerRepo.GetByID(ctx, id)
}

func (s *buyerService) List(ctx context.Context) ([]domain.Buyer, error) {
	return s.buyerRepo.List(ctx)
}

func (s *buyerService) Update(ctx context.Context, id int32, name, contact, location string) error {
	switch {
	case name == "":
		return &domain.ValidationError{Field: "name"}
	case contact == "":
		return &domain.ValidationError{Field: "contact"}
	case location == "":
		return &domain.ValidationError{Field: "location"}
	}
	return s.buyerRepo.Update(ctx, id, name, contact, location)
}

func (s *buyerService) Delete(ctx context.Context, id int32) error {
	return s.buyerRepo.Delete(ctx, id)
}

func (s *buyerService) Recalculate(ctx context.Context, id int32) error {
	return s.buyerRepo.RecalculateAggregates(ctx, id)
}
