// Package ports defines the contracts between the core and its infrastructure:
// repositories, the unit of work and image storage.
package ports

import (
	"context"

	"medidrone/internal/core/domain/model/drone"
)

// DroneRepository persists Drone aggregates together with their medication assignments.
type DroneRepository interface {
	// Add stores a new drone and returns it restored with its store-assigned id.
	Add(ctx context.Context, aggregate *drone.Drone) (*drone.Drone, error)

	// Update writes the drone fields and points every attached medication at the drone.
	// Returns errs.ObjectNotFoundError if the drone does not exist.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get loads a drone with its medications ordered by id.
	// Returns errs.ObjectNotFoundError if the drone does not exist.
	Get(ctx context.Context, id int64) (*drone.Drone, error)

	// Remove deletes the drone row. Medications must be detached first.
	// Returns errs.ObjectNotFoundError if the drone does not exist.
	Remove(ctx context.Context, id int64) error
}
