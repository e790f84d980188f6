package domain

import "time"

// Sale is a ledger row on the buyer side, mirroring Order.
type Sale struct {
	ID             int32     `json:"id"`
	BuyerID        int32     `json:"buyer_id"`
	Variety        Variety   `json:"avocado_type"`
	CustomerName   string    `json:"customer_name"`
	NumberOfFruits int32     `json:"number_of_fruits"`
	PricePerFruit  float64   `json:"price_per_fruit"`
	TotalAmount    float64   `json:"total_amount"`
	SaleDate       time.Time `json:"sale_date"`
}
