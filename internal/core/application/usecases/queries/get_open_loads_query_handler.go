package queries

import (
	"context"
	"database/sql"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenLoadsQueryHandler lists posted, non-deleted loads for the
// marketplace board, newest first.
type GetOpenLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenLoadsQueryHandler creates a handler for the open load board.
func NewGetOpenLoadsQueryHandler(db *gorm.DB) GetOpenLoadsQueryHandler {
	return GetOpenLoadsQueryHandler{db: db}
}

// Handle executes the board query.
func (h GetOpenLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenLoadsQuery,
) ([]GetOpenLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads := make([]GetOpenLoadsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, species, head_count, weight_kg,
			pickup, dropoff, distance_km,
			offer_amount, currency, created_at
		FROM loads
		WHERE status = ? AND is_deleted = false
		ORDER BY created_at DESC
	`, load.Posted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOpenLoadsQueryResponse
		var id uuid.UUID
		var distance sql.NullFloat64

		err = rows.Scan(
			&id,
			&entry.Species,
			&entry.HeadCount,
			&entry.WeightKg,
			&entry.Pickup,
			&entry.Dropoff,
			&distance,
			&entry.OfferAmount,
			&entry.Currency,
			&entry.PostedAt,
		)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = loadID

		if distance.Valid {
			entry.DistanceKm = &distance.Float64
		}
		loads = append(loads, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
