// Package commands contains the write use cases of the fleet service.
// Every command follows the same shape: a command value built through its constructor,
// and a handler that validates it, opens a unit of work, applies domain rules and commits.
package commands

import (
	"context"

	"medidrone/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DroneRepoFactory provides the drone repository bound to the transaction.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// MedicationRepoFactory provides the medication repository bound to the transaction.
	MedicationRepoFactory interface {
		MedicationRepository() ports.MedicationRepository
	}

	// DroneUoW is used by commands that only touch drone rows.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	// DroneUoWFactory creates new drone unit of work instances.
	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// MedicationUoW is used by commands that only touch medication rows.
	MedicationUoW interface {
		TxManager
		MedicationRepoFactory
	}

	// MedicationUoWFactory creates new medication unit of work instances.
	MedicationUoWFactory interface {
		Create() MedicationUoW
	}

	// UoW spans drones and medications, for commands that change assignments.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DroneRepository().Get(ctx, droneID)
	//   meds, err := uow.MedicationRepository().GetMany(ctx, ids)
	//   // ... apply rules, attach
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DroneRepoFactory
		MedicationRepoFactory
	}

	// UoWFactory creates new cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
