package http

import (
	"encoding/json"
	"net/http"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/service"
)

type SaleHandler struct {
	saleSvc service.SaleService
}

func NewSaleHandler(saleSvc service.SaleService) *SaleHandler {
	return &SaleHandler{saleSvc: saleSvc}
}

type recordSaleRequest struct {
	BuyerID        int32   `json:"buyerId" validate:"required"`
	AvocadoType    string  `json:"avocadoType" validate:"required"`
	CustomerName   string  `json:"customerName"`
	NumberOfFruits int32   `json:"numberOfFruits" validate:"required"`
	PricePerFruit  float64 `json:"pricePerFruit" validate:"required"`
	TotalAmount    float64 `json:"totalAmount" validate:"required"`
}

func (h *SaleHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	sale, err := h.saleSvc.Record(r.Context(), req.BuyerID, req.AvocadoType, req.CustomerName, req.NumberOfFruits, req.PricePerFruit, req.TotalAmount)
	if err != nil {
		respondError(w, err, "Failed to record sale.")
		return
	}
	respondJSON(w, http.StatusCreated, createdResponse{Message: "Sale recorded and buyer updated!", ID: sale.ID})
}

func (h *SaleHandler) AmendSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid sale id.")
		return
	}

	var req amendTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	if err := h.saleSvc.Amend(r.Context(), id, req.NumberOfFruits, req.PricePerFruit, req.TotalAmount); err != nil {
		respondError(w, err, "Failed to update sale.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Sale and buyer updated successfully!"})
}

func (h *SaleHandler) RetractSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid sale id.")
		return
	}

	if err := h.saleSvc.Retract(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete sale.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Sale deleted and buyer totals updated successfully!"})
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.saleSvc.List(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch sales.")
		return
	}
	if sales == nil {
		sales = []domain.Sale{}
	}
	respondJSON(w, http.StatusOK, sales)
}
