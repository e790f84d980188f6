package domain

// Farmer is a supplying party. The six counter fields are derived aggregates:
// they must equal the sums over the farmer's current orders and are mutated
// only through the ledger write protocol or an explicit recalculation.
type Farmer struct {
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

// PartyName is the id/name projection used by dropdown pickers.
type PartyName struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// AggregateDrift describes a party whose stored aggregates no longer match the
// sums recomputed from its transaction rows.
type AggregateDrift struct {
	PartyID        int32   `json:"party_id"`
	Name           string  `json:"name"`
	StoredFruits   int32   `json:"stored_fruits"`
	ExpectedFruits int32   `json:"expected_fruits"`
	StoredMoney    float64 `json:"stored_money"`
	ExpectedMoney  float64 `json:"expected_money"`
}
