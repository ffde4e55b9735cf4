// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"livehaul/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// PaymentUoW manages transactions for ledger operations. The load
	// repository rides along for ownership checks on funding.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		LoadRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// TripUoW manages transactions for trip operations. Trip commands touch
	// the load (status sync), the payment (release on ePOD) and the carrier
	// resources (driver resolution), so all four repositories are in scope.
	TripUoW interface {
		TxManager
		TripRepoFactory
		LoadRepoFactory
		PaymentRepoFactory
		CarrierRepoFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// UoW manages transactions spanning every aggregate. Used by the
	// assignment orchestrator, which must move the load, provision the trip
	// and open the payment atomically.
	UoW interface {
		TxManager
		LoadRepoFactory
		TripRepoFactory
		PaymentRepoFactory
		CarrierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
