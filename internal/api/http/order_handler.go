package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/service"
)

type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

type recordOrderRequest struct {
	FarmerID       int32   `json:"farmerId" validate:"required"`
	AvocadoType    string  `json:"avocadoType" validate:"required"`
	CustomerName   string  `json:"customerName"`
	NumberOfFruits int32   `json:"numberOfFruits" validate:"required"`
	PricePerFruit  float64 `json:"pricePerFruit" validate:"required"`
	TotalAmount    float64 `json:"totalAmount" validate:"required"`
}

type amendTransactionRequest struct {
	NumberOfFruits int32   `json:"numberOfFruits" validate:"required"`
	PricePerFruit  float64 `json:"pricePerFruit" validate:"required"`
	TotalAmount    float64 `json:"totalAmount" validate:"required"`
}

func (h *OrderHandler) RecordOrder(w http.ResponseWriter, r *http.Request) {
	var req recordOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	order, err := h.orderSvc.Record(r.Context(), req.FarmerID, req.AvocadoType, req.CustomerName, req.NumberOfFruits, req.PricePerFruit, req.TotalAmount)
	if err != nil {
		respondError(w, err, "Failed to record order.")
		return
	}
	respondJSON(w, http.StatusCreated, createdResponse{Message: "Order recorded and farmer updated!", ID: order.ID})
}

func (h *OrderHandler) AmendOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid order id.")
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

	if err := h.orderSvc.Amend(r.Context(), id, req.NumberOfFruits, req.PricePerFruit, req.TotalAmount); err != nil {
		respondError(w, err, "Failed to update order.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Order and farmer updated successfully!"})
}

func (h *OrderHandler) RetractOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err, "Invalid order id.")
		return
	}

	if err := h.orderSvc.Retract(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete order.")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Order deleted and farmer totals updated successfully!"})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.List(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch orders.")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

// pathID extracts the numeric {id} path variable.
func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id"}
	}
	return int32(id), nil
}
