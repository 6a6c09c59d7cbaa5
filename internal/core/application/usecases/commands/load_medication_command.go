package commands

import (
	"errors"

	"medidrone/internal/pkg/guard"
)

var ErrLoadMedicationCommandIsNotConstructed = errors.New(
	"LoadMedicationCommand must be created via NewLoadMedicationCommand constructor",
)

// LoadMedicationCommand attaches a single medication to a drone.
type LoadMedicationCommand struct { //nolint:recvcheck //using for validation
	droneID      int64
	medicationID int64

	guard guard.ConstructorGuard
}

func NewLoadMedicationCommand(droneID, medicationID int64) (LoadMedicationCommand, error) {
	if err := errors.Join(
		checkID("drone_id", droneID),
		checkID("medication_id", medicationID),
	); err != nil {
		return LoadMedicationCommand{}, err
	}

	return LoadMedicationCommand{
		droneID:      droneID,
		medicationID: medicationID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c LoadMedicationCommand) Validate() error {
	return c.guard.Validate(ErrLoadMedicationCommandIsNotConstructed)
}

func (c LoadMedicationCommand) DroneID() int64 {
	return c.droneID
}

func (c LoadMedicationCommand) MedicationID() int64 {
	return c.medicationID
}
