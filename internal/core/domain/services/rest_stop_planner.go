package services

import (
	"fmt"

	"livehaul/internal/core/domain/model/trip"
)

// WelfareStopIntervalKm is the distance a livestock truck may cover before
// animals must be rested and watered.
const WelfareStopIntervalKm = 400.0

// RestStopPlanner is a domain service that lays out mandatory welfare stops
// along a trip route.
//
// Business rules:
//   - A stop is planned every WelfareStopIntervalKm kilometers
//   - Only offsets strictly inside the route count; a stop exactly at the
//     destination is pointless and is not planned
//   - An unknown or non-positive distance yields an empty plan
//
// Example usage:
//
//	planner := NewRestStopPlanner()
//	stops := planner.Plan(900) // stops at 400 km and 800 km
type RestStopPlanner struct{}

// NewRestStopPlanner creates a new RestStopPlanner instance.
func NewRestStopPlanner() RestStopPlanner {
	return RestStopPlanner{}
}

// Plan returns the welfare stops for a route of the given length, ordered by
// offset with sequence numbers starting at 1. A nil distance means the route
// length is unknown and no stops can be planned.
func (RestStopPlanner) Plan(distanceKm *float64) []trip.RestStop {
	if distanceKm == nil || *distanceKm <= 0 {
		return []trip.RestStop{}
	}

	stops := []trip.RestStop{}
	for offset := WelfareStopIntervalKm; offset < *distanceKm; offset += WelfareStopIntervalKm {
		stops = append(stops, trip.RestStop{
			Seq:      len(stops) + 1,
			OffsetKm: offset,
			Note:     fmt.Sprintf("Rest, water and inspect livestock at %.0f km", offset),
		})
	}

	return stops
}
