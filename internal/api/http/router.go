package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// validate checks request DTOs against their struct tags. Field-presence
// failures surface as 400 before any service work happens.
var validate = validator.New()

// NewRouter wires every resource endpoint onto a mux router. Route prefixes
// match the frontend contract: /auth, /login, /farmers, /orders, /buyers,
// /sales.
func NewRouter(auth *AuthHandler, farmers *FarmerHandler, buyers *BuyerHandler, orders *OrderHandler, sales *SaleHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/auth", auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", auth.Login).Methods(http.MethodPost)

	r.HandleFunc("/farmers", farmers.ListFarmers).Methods(http.MethodGet)
	r.HandleFunc("/farmers/dropdown", farmers.ListFarmerNames).Methods(http.MethodGet)
	r.HandleFunc("/farmers", farmers.CreateFarmer).Methods(http.MethodPost)
	r.HandleFunc("/farmers/{id}", farmers.GetFarmer).Methods(http.MethodGet)
	r.HandleFunc("/farmers/{id}", farmers.UpdateFarmer).Methods(http.MethodPut)
	r.HandleFunc("/farmers/{id}", farmers.DeleteFarmer).Methods(http.MethodDelete)
	r.HandleFunc("/farmers/{id}/recalculate", farmers.RecalculateFarmer).Methods(http.MethodPost)

	r.HandleFunc("/buyers", buyers.ListBuyers).Methods(http.MethodGet)
	r.HandleFunc("/buyers", buyers.CreateBuyer).Methods(http.MethodPost)
	r.HandleFunc("/buyers/{id}", buyers.GetBuyer).Methods(http.MethodGet)
	r.HandleFunc("/buyers/{id}", buyers.UpdateBuyer).Methods(http.MethodPut)
	r.HandleFunc("/buyers/{id}", buyers.DeleteBuyer).Methods(http.MethodDelete)
	r.HandleFunc("/buyers/{id}/recalculate", buyers.RecalculateBuyer).Methods(http.MethodPost)

	r.HandleFunc("/orders", orders.RecordOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id}", orders.AmendOrder).Methods(http.MethodPut)
	r.HandleFunc("/orders/{id}", orders.RetractOrder).Methods(http.MethodDelete)
	r.HandleFunc("/orders", orders.ListOrders).Methods(http.MethodGet)

	r.HandleFunc("/sales", sales.RecordSale).Methods(http.MethodPost)
	r.HandleFunc("/sales/{id}", sales.AmendSale).Methods(http.MethodPut)
	r.HandleFunc("/sales/{id}", sales.RetractSale).Methods(http.MethodDelete)
	r.HandleFunc("/sales", sales.ListSales).Methods(http.MethodGet)

	return r
}
