package domain

import (
	"fmt"
	"strings"
)

// Variety is the avocado cultivar enumeration. It selects which per-variety
// counter pair on a farmer or buyer a ledger transaction adjusts.
type Variety string

const (
	VarietyHass   Variety = "hass"
	VarietyFuerte Variety = "fuerte"
)

// Varieties lists every known cultivar.
var Varieties = []Variety{VarietyHass, VarietyFuerte}

// ParseVariety normalizes a request-supplied cultivar name. Matching is
// case-insensitive; unknown names are rejected so they can never reach a query.
func ParseVariety(s string) (Variety, error) {
	switch Variety(strings.ToLower(strings.TrimSpace(s))) {
	case VarietyHass:
		return VarietyHass, nil
	case VarietyFuerte:
		return VarietyFuerte, nil
	default:
		return "", fmt.Errorf("unknown avocado variety %q", s)
	}
}

func (v Variety) String() string {
	return string(v)
}
