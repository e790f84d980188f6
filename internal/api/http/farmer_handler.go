package http

import (
	"encoding/json"
	"net/http"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/service"
)

type FarmerHandler struct {
	farmerSvc service.FarmerService
}

func NewFarmerHandler(farmerSvc service.FarmerService) *FarmerHandler {
	return &FarmerHandler{farmerSvc: farmerSvc}
}

type partyRequest struct {
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Location string `json:"location" validate:"required"`
}

func (h *FarmerHandler) ListFarmers(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.farmerSvc.List(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch farmers.")
		return
	}
	if farmers == nil {
		farmers = []domain.Farmer{}
	}
	respondJSON(w, http.StatusOK, farmers)
}

// ListFarmerNames serves the id/name projection for dropdown pickers.
func (h *FarmerHandler) ListFarmerNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.farmerSvc.ListNames(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch farmers.")
		return
	}
	if names == nil {
		names = []domain.PartyName{}
	}
	respondJSON(w, http.StatusOK, names)
}

func (h *FarmerHandler) GetFarmer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid farmer id.")
		return
	}

	farmer, err := h.farmerSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to fetch farmer.")
		return
	}
	respondJSON(w, http.StatusOK, farmer)
}

func (h *FarmerHandler) CreateFarmer(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	farmer, err := h.farmerSvc.Create(r.Context(), req.Name, req.Contact, req.Location)
	if err != nil {
		respondError(w, err, "Failed to add farmer.")
		return
	}
	respondJSON(w, http.StatusCreated, createdResponse{Message: "Farmer added successfully!", ID: farmer.ID})
}

func (h *FarmerHandler) UpdateFarmer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid farmer id.")
		return
	}

	var req partyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	if err := h.farmerSvc.Update(r.Context(), id, req.Name, req.Contact, req.Location); err != nil {
		respondError(w, err, "Failed to update farmer.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Farmer updated successfully!"})
}

func (h *FarmerHandler) DeleteFarmer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid farmer id.")
		return
	}

	if err := h.farmerSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete farmer.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Farmer deleted successfully!"})
}

// RecalculateFarmer is the administrative override: it rebuilds the farmer's
// aggregates from the order rows instead of letting callers write totals.
func (h *FarmerHandler) RecalculateFarmer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid farmer id.")
		return
	}

	if err := h.farmerSvc.Recalculate(r.Context(), id); err != nil {
		respondError(w, err, "Failed to recalculate farmer totals.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Farmer totals recalculated from orders."})
}
