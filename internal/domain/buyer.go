package domain

// Buyer is a purchasing party. Aggregate fields follow the same derived-sum
// invariant as Farmer, fed by sales instead of orders.
type Buyer struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	Contact      string  `json:"contact"`
	Location     string  `json:"location"`
	HassFruits   int32   `json:"hass_fruits"`
	HassMoney    float64 `json:"hass_money"`
	FuerteFruits int32   `json:"fuerte_fruits"`
	FuerteMoney  float64 `json:"fuerte_money"`
	TotalFruits  int32   `json:"total_fruits"`
	TotalMoney   float64 `json:"total_money"`
}
