package commands

import (
	"errors"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/guard"
)

var ErrUpdateMedicationCommandIsNotConstructed = errors.New(
	"UpdateMedicationCommand must be created via NewUpdateMedicationCommand constructor",
)

// MedicationPatch lists the changes of a partial medication update. Nil fields are left untouched.
type MedicationPatch struct {
	Name   *string
	Weight *float64
	Code   *string
	Image  *medication.ImageUpload
}

// UpdateMedicationCommand changes medication fields and optionally replaces its image.
// The drone assignment is not part of the patch; it changes through drone commands.
type UpdateMedicationCommand struct { //nolint:recvcheck //using for validation
	medicationID int64
	patch        MedicationPatch

	guard guard.ConstructorGuard
}

func NewUpdateMedicationCommand(medicationID int64, patch MedicationPatch) (UpdateMedicationCommand, error) {
	var imageErr error
	if patch.Image != nil {
		imageErr = patch.Image.Validate()
	}
	if err := errors.Join(checkID("medication_id", medicationID), imageErr); err != nil {
		return UpdateMedicationCommand{}, err
	}

	return UpdateMedicationCommand{
		medicationID: medicationID,
		patch: MedicationPatch{
			Name:   clonePtr(patch.Name),
			Weight: clonePtr(patch.Weight),
			Code:   clonePtr(patch.Code),
			Image:  clonePtr(patch.Image),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMedicationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMedicationCommandIsNotConstructed)
}

func (c UpdateMedicationCommand) MedicationID() int64 {
	return c.medicationID
}

func (c UpdateMedicationCommand) Name() (string, bool) {
	if c.patch.Name == nil {
		return "", false
	}
	return *c.patch.Name, true
}

func (c UpdateMedicationCommand) Weight() (float64, bool) {
	if c.patch.Weight == nil {
		return 0, false
	}
	return *c.patch.Weight, true
}

func (c UpdateMedicationCommand) Code() (string, bool) {
	if c.patch.Code == nil {
		return "", false
	}
	return *c.patch.Code, true
}

func (c UpdateMedicationCommand) Image() (medication.ImageUpload, bool) {
	if c.patch.Image == nil {
		return medication.ImageUpload{}, false
	}
	return *c.patch.Image, true
}
