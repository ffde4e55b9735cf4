package queries

import (
	"errors"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/guard"
)

var ErrGetOpenLoadsQueryIsNotConstructed = errors.New(
	"GetOpenLoadsQuery must be created via NewGetOpenLoadsQuery constructor",
)

// GetOpenLoadsQuery retrieves the marketplace board: every posted load still
// waiting for a carrier.
type GetOpenLoadsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenLoadsQuery creates a query for the open load board.
func NewGetOpenLoadsQuery() GetOpenLoadsQuery {
	return GetOpenLoadsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenLoadsQueryIsNotConstructed)
}

// GetOpenLoadsQueryResponse is one board entry.
type GetOpenLoadsQueryResponse struct {
	ID          kernel.UUID
	Species     string
	HeadCount   int
	WeightKg    float64
	Pickup      string
	Dropoff     string
	DistanceKm  *float64
	OfferAmount float64
	Currency    string
	PostedAt    time.Time
}
