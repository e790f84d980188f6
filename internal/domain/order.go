package domain

import "time"

// Order is a ledger row on the farmer side: a supply of avocados recorded
// against one farmer. Its existence implies its delta has been applied exactly
// once to the farmer's aggregates.
type Order struct {
	ID             int32     `json:"id"`
	FarmerID       int32     `json:"farmer_id"`
	Variety        Variety   `json:"avocado_type"`
	CustomerName   string    `json:"customer_name"`
	NumberOfFruits int32     `json:"number_of_fruits"`
	PricePerFruit  float64   `json:"price_per_fruit"`
	TotalAmount    float64   `json:"total_amount"`
	OrderDate      time.Time `json:"order_date"`
}
