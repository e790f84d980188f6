package http

import (
	"encoding/json"
	"net/http"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/service"
)

type BuyerHandler struct {
	buyerSvc service.BuyerService
}

func NewBuyerHandler(buyerSvc service.BuyerService) *BuyerHandler {
	return &BuyerHandler{buyerSvc: buyerSvc}
}

func (h *BuyerHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	buyers, err := h.buyerSvc.List(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch buyers.")
		return
	}
	if buyers == nil {
		buyers = []domain.Buyer{}
	}
	respondJSON(w, http.StatusOK, buyers)
}

func (h *BuyerHandler) GetBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid buyer id.")
		return
	}

	buyer, err := h.buyerSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to fetch buyer.")
		return
	}
	respondJSON(w, http.StatusOK, buyer)
}

func (h *BuyerHandler) CreateBuyer(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	buyer, err := h.buyerSvc.Create(r.Context(), req.Name, req.Contact, req.Location)
	if err != nil {
		respondError(w, err, "Failed to add buyer.")
		return
	}
	respondJSON(w, http.StatusCreated, createdResponse{Message: "Buyer added successfully!", ID: buyer.ID})
}

func (h *BuyerHandler) UpdateBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid buyer id.")
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

	if err := h.buyerSvc.Update(r.Context(), id, req.Name, req.Contact, req.Location); err != nil {
		respondError(w, err, "Failed to update buyer.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Buyer updated successfully!"})
}

func (h *BuyerHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid buyer id.")
		return
	}

	if err := h.buyerSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete buyer.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Buyer deleted successfully!"})
}

func (h *BuyerHandler) RecalculateBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid buyer id.")
		return
	}

	if err := h.buyerSvc.Recalculate(r.Context(), id); err != nil {
		respondError(w, err, "Failed to recalculate buyer totals.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Buyer totals recalculated from sales."})
}
