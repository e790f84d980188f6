package service

import (
	"context"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/repository"
)

type farmerService struct {
	farmerRepo repository.FarmerRepository
}

func NewFarmerService(farmerRepo repository.FarmerRepository) FarmerService {
	return &farmerService{farmerRepo: farmerRepo}
}

func (s *farmerService) Create(ctx context.Context, name, contact, location string) (*domain.Farmer, error) {
	switch {
	case name == "":
		return nil, &domain.ValidationError{Field: "name"}
	case contact == "":
		return nil, &domain.ValidationError{Field: "contact"}
	case location == "":
		return nil, &domain.ValidationError{Field: "location"}
	}

	farmer := &domain.Farmer{Name: name, Contact: contact, Location: location}
	if err := s.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, err
	}
	return farmer, nil
}

func (s *farmerService) Get(ctx context.Context, id int32) (*domain.Farmer, error) {
	return s.farmerRepo.GetByID(ctx, id)
}

func (s *farmerService) List(ctx context.Context) ([]domain.Farmer, error) {
	return s.farmerRepo.List(ctx)
}

func (s *farmerService) ListNames(ctx context.Context) ([]domain.PartyName, error) {
	return s.farmerRepo.ListNames(ctx)
}

func (s *farmerService) Update(ctx context.Context, id int32, name, contact, location string) error {
	switch {
	case name == "":
		return &domain.ValidationError{Field: "name"}
	case contact == "":
		return &domain.ValidationError{Field: "contact"}
	case location == "":
		return &domain.ValidationError{Field: "location"}
	}
	return s.farmerRepo.Update(ctx, id, name, contact, location)
}

func (s *farmerService) Delete(ctx context.Context, id int32) error {
	return s.farmerRepo.Delete(ctx, id)
}

func (s *farmerService) Recalculate(ctx context.Context, id int32) error {
	return s.farmerRepo.RecalculateAggregates(ctx, id)
}
