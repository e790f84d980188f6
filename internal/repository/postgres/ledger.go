package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"avocado-hub-backend/internal/domain"
)

// counterColumns is the fixed table mapping each cultivar to its counter
// column pair. Column names only ever come from this table, never from request
// input, so nothing user-controlled reaches the statement text.
type varietyCounters struct {
	fruitsCol string
	moneyCol  string
}

var counterColumns = map[domain.Variety]varietyCounters{
	domain.VarietyHass:   {fruitsCol: "hass_fruits", moneyCol: "hass_money"},
	domain.VarietyFuerte: {fruitsCol: "fuerte_fruits", moneyCol: "fuerte_money"},
}

// applyPartyDelta applies a signed aggregate adjustment to one farmer or buyer
// row inside the caller's transaction. The update is relative
// (col = col + $n) so concurrent deltas against the same party commute.
func applyPartyDelta(ctx context.Context, tx *sql.Tx, table, entity string, partyID int32, variety domain.Variety, fruitDelta int32, moneyDelta float64) error {
	cols, ok := counterColumns[variety]
	if !ok {
		return fmt.Errorf("no counter columns for variety %q", variety)
	}

	query := fmt.Sprintf(`UPDATE %s
	          SET %s = %s + $1,
	              %s = %s + $2,
	              total_fruits = total_fruits + $1,
	              total_money = total_money + $2
	          WHERE id = $3`,
		table, cols.fruitsCol, cols.fruitsCol, cols.moneyCol, cols.moneyCol)

	result, err := tx.ExecContext(ctx, query, fruitDelta, moneyDelta, partyID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: entity, ID: partyID}
	}
	return nil
}
