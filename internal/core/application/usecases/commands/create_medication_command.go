package commands

import (
	"errors"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/guard"
)

var ErrCreateMedicationCommandIsNotConstructed = errors.New(
	"CreateMedicationCommand must be created via NewCreateMedicationCommand constructor",
)

// CreateMedicationCommand registers an unassigned medication, optionally with an image.
// Field formats are checked by the Medication aggregate when the handler builds it.
type CreateMedicationCommand struct { //nolint:recvcheck //using for validation
	name   string
	weight float64
	code   string
	image  *medication.ImageUpload

	guard guard.ConstructorGuard
}

// NewCreateMedicationCommand accepts a nil image for medications without a picture.
func NewCreateMedicationCommand(
	name string,
	weight float64,
	code string,
	image *medication.ImageUpload,
) (CreateMedicationCommand, error) {
	if image != nil {
		if err := image.Validate(); err != nil {
			return CreateMedicationCommand{}, err
		}
	}

	return CreateMedicationCommand{
		name:   name,
		weight: weight,
		code:   code,
		image:  image,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMedicationCommand) Validate() error {
	return c.guard.Validate(ErrCreateMedicationCommandIsNotConstructed)
}

func (c CreateMedicationCommand) Name() string {
	return c.name
}

func (c CreateMedicationCommand) Weight() float64 {
	return c.weight
}

func (c CreateMedicationCommand) Code() string {
	return c.code
}

// Image returns the upload and whether one was given.
func (c CreateMedicationCommand) Image() (medication.ImageUpload, bool) {
	if c.image == nil {
		return medication.ImageUpload{}, false
	}
	return *c.image, true
}
