package commands

import (
	"errors"

	"medidrone/internal/pkg/guard"
)

var ErrRemoveMedicationCommandIsNotConstructed = errors.New(
	"RemoveMedicationCommand must be created via NewRemoveMedicationCommand constructor",
)

// RemoveMedicationCommand deletes a medication together with its stored image.
type RemoveMedicationCommand struct { //nolint:recvcheck //using for validation
	medicationID int64

	guard guard.ConstructorGuard
}

func NewRemoveMedicationCommand(medicationID int64) (RemoveMedicationCommand, error) {
	if err := checkID("medication_id", medicationID); err != nil {
		return RemoveMedicationCommand{}, err
	}

	return RemoveMedicationCommand{
		medicationID: medicationID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveMedicationCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMedicationCommandIsNotConstructed)
}

func (c RemoveMedicationCommand) MedicationID() int64 {
	return c.medicationID
}
