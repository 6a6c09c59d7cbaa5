package ports

import (
	"context"

	"medidrone/internal/core/domain/model/medication"
)

// MedicationRepository persists Medication aggregates.
type MedicationRepository interface {
	// Add stores a new medication and returns it with its store-assigned id.
	Add(ctx context.Context, aggregate *medication.Medication) (*medication.Medication, error)

	// Update writes every medication field including the drone reference.
	Update(ctx context.Context, aggregate *medication.Medication) error

	// Get returns errs.ObjectNotFoundError if the medication does not exist.
	Get(ctx context.Context, id int64) (*medication.Medication, error)

	// GetMany returns the medications that exist among ids, in the order of ids.
	// Unknown ids are left out without error.
	GetMany(ctx context.Context, ids []int64) ([]*medication.Medication, error)

	Remove(ctx context.Context, id int64) error

	// DetachFromDrone clears the drone reference of every medication on droneID.
	DetachFromDrone(ctx context.Context, droneID int64) error
}
