// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"verification/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ObservationRepoFactory provides access to the observation repository within a transaction.
	ObservationRepoFactory interface {
		ObservationRepository() ports.ObservationRepository
	}

	// ReportRepoFactory provides access to the report repository within a transaction.
	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	// VerifierRepoFactory provides access to the verifier repository within a transaction.
	VerifierRepoFactory interface {
		VerifierRepository() ports.VerifierRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ObservationUoW manages transactions for observation sub-lifecycle
	// operations, which read the owning order and write observations.
	ObservationUoW interface {
		TxManager
		OrderRepoFactory
		ObservationRepoFactory
	}

	// ObservationUoWFactory creates new observation unit of work instances.
	ObservationUoWFactory interface {
		Create() ObservationUoW
	}

	// ReportUoW manages transactions for report-only operations.
	ReportUoW interface {
		TxManager
		ReportRepoFactory
	}

	// ReportUoWFactory creates new report unit of work instances.
	ReportUoWFactory interface {
		Create() ReportUoW
	}

	// OrderReportUoW manages transactions spanning order and report
	// aggregates, such as order completion with report skeleton creation.
	OrderReportUoW interface {
		TxManager
		OrderRepoFactory
		ReportRepoFactory
	}

	// OrderReportUoWFactory creates new order+report unit of work instances.
	OrderReportUoWFactory interface {
		Create() OrderReportUoW
	}

	// VerifierUoW manages transactions for verifier-only operations.
	VerifierUoW interface {
		TxManager
		VerifierRepoFactory
	}

	// VerifierUoWFactory creates new verifier unit of work instances.
	VerifierUoWFactory interface {
		Create() VerifierUoW
	}

	// UoW manages transactions across order and verifier aggregates.
	// Used for assignment commands that coordinate both.
	UoW interface {
		TxManager
		OrderRepoFactory
		VerifierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
