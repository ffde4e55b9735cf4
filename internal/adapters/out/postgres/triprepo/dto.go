// Package triprepo provides data transfer objects and mapping functions for
// trip persistence: the trip row itself, its rest-stop plan, and the
// operational records captured against it (pre-trip check, ePOD, expenses).
package triprepo

import (
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
// The rest-stop plan lives in its own table and is written once, when the
// provisioner creates the trip.
type TripDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CarrierID    uuid.UUID `gorm:"type:uuid;index"`
	TruckID      uuid.UUID `gorm:"type:uuid"`
	DriverID     uuid.UUID `gorm:"type:uuid"`
	Status       string    `gorm:"index"`
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	DistanceKm   *float64
	RestStops    []RestStopDTO `gorm:"foreignKey:TripID;references:ID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// RestStopDTO is one row of a trip's welfare stop plan.
type RestStopDTO struct {
	TripID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq      int       `gorm:"primaryKey"`
	OffsetKm float64
	Note     string
}

// TableName specifies the database table name for rest stop rows.
func (RestStopDTO) TableName() string {
	return "trip_rest_stops"
}

// PreTripCheckDTO is the pre-departure checklist snapshot, at most one per
// trip.
type PreTripCheckDTO struct {
	TripID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID         uuid.UUID `gorm:"type:uuid"`
	TruckID          uuid.UUID `gorm:"type:uuid"`
	Roadworthy       bool
	AnimalsFitToLoad bool
	Notes            string
	CheckedAt        time.Time
}

// TableName specifies the database table name for pre-trip checks.
func (PreTripCheckDTO) TableName() string {
	return "trip_pretrip_checks"
}

// EpodDTO is the proof-of-delivery record, at most one per trip.
type EpodDTO struct {
	TripID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveredAt  time.Time
	ReceiverName string
	PhotoURL     string
	Notes        string
}

// TableName specifies the database table name for ePOD records.
func (EpodDTO) TableName() string {
	return "trip_epods"
}

// ExpenseDTO is one row of a trip's append-only expense ledger.
type ExpenseDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TripID     uuid.UUID  `gorm:"type:uuid;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid"`
	Category   string
	Amount     float64
	Currency   string
	Note       string
	RecordedAt time.Time
}

// TableName specifies the database table name for expense rows.
func (ExpenseDTO) TableName() string {
	return "trip_expenses"
}

// fromDomain converts a trip domain aggregate to its database representation,
// including the rest-stop plan.
func fromDomain(aggregate *trip.Trip) TripDTO {
	stops := make([]RestStopDTO, 0, len(aggregate.RestStops()))
	for _, stop := range aggregate.RestStops() {
		stops = append(stops, RestStopDTO{
			TripID:   aggregate.ID().Bytes(),
			Seq:      stop.Seq,
			OffsetKm: stop.OffsetKm,
			Note:     stop.Note,
		})
	}

	return TripDTO{
		ID:           aggregate.ID().Bytes(),
		LoadID:       aggregate.LoadID().Bytes(),
		CarrierID:    aggregate.CarrierID().Bytes(),
		TruckID:      aggregate.TruckID().Bytes(),
		DriverID:     aggregate.DriverID().Bytes(),
		Status:       aggregate.Status().String(),
		PlannedStart: aggregate.PlannedStart(),
		PlannedEnd:   aggregate.PlannedEnd(),
		DistanceKm:   aggregate.DistanceKm(),
		RestStops:    stops,
	}
}

// toDomain converts a database DTO to a trip domain aggregate using
// RestoreTrip. RestStops are expected preloaded in seq order.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{dto.ID, dto.LoadID, dto.CarrierID, dto.TruckID, dto.DriverID} {
		parsed, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}

	status, err := trip.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	stops := make([]trip.RestStop, 0, len(dto.RestStops))
	for _, stop := range dto.RestStops {
		stops = append(stops, trip.RestStop{
			Seq:      stop.Seq,
			OffsetKm: stop.OffsetKm,
			Note:     stop.Note,
		})
	}

	return trip.RestoreTrip(
		ids[0], ids[1], ids[2], ids[3], ids[4],
		status,
		dto.PlannedStart, dto.PlannedEnd,
		dto.DistanceKm,
		stops,
	)
}

func checkFromDomain(check *trip.PreTripCheck) PreTripCheckDTO {
	return PreTripCheckDTO{
		TripID:           check.TripID.Bytes(),
		DriverID:         check.DriverID.Bytes(),
		TruckID:          check.TruckID.Bytes(),
		Roadworthy:       check.Roadworthy,
		AnimalsFitToLoad: check.AnimalsFitToLoad,
		Notes:            check.Notes,
		CheckedAt:        check.CheckedAt,
	}
}

func epodFromDomain(epod *trip.Epod) EpodDTO {
	return EpodDTO{
		TripID:       epod.TripID.Bytes(),
		DeliveredAt:  epod.DeliveredAt,
		ReceiverName: epod.ReceiverName,
		PhotoURL:     epod.PhotoURL,
		Notes:        epod.Notes,
	}
}

func epodToDomain(dto EpodDTO) (*trip.Epod, error) {
	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	return &trip.Epod{
		TripID:       tripID,
		DeliveredAt:  dto.DeliveredAt,
		ReceiverName: dto.ReceiverName,
		PhotoURL:     dto.PhotoURL,
		Notes:        dto.Notes,
	}, nil
}

func expenseFromDomain(expense *trip.Expense) ExpenseDTO {
	var driverID *uuid.UUID
	if id := expense.DriverID; id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return ExpenseDTO{
		ID:         expense.ID.Bytes(),
		TripID:     expense.TripID.Bytes(),
		DriverID:   driverID,
		Category:   expense.Category,
		Amount:     expense.Amount,
		Currency:   expense.Currency,
		Note:       expense.Note,
		RecordedAt: expense.RecordedAt,
	}
}
