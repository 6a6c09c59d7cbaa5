package queries

import (
	"errors"
	"math"

	"medidrone/internal/pkg/errs"
	"medidrone/internal/pkg/guard"
)

var ErrGetMedicationQueryIsNotConstructed = errors.New(
	"GetMedicationQuery must be created via NewGetMedicationQuery constructor",
)

type GetMedicationQuery struct {
	medicationID int64

	guard guard.ConstructorGuard
}

func NewGetMedicationQuery(medicationID int64) (GetMedicationQuery, error) {
	if medicationID <= 0 {
		return GetMedicationQuery{}, errs.NewValueIsOutOfRangeError(
			"medication_id", medicationID, 1, int64(math.MaxInt64),
		)
	}
	return GetMedicationQuery{medicationID: medicationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMedicationQuery) Validate() error {
	return q.guard.Validate(ErrGetMedicationQueryIsNotConstructed)
}

func (q GetMedicationQuery) MedicationID() int64 {
	return q.medicationID
}

// GetMedicationQueryResponse is a medication with the drone carrying it, if any.
type GetMedicationQueryResponse struct {
	MedicationResponse
	Drone *DroneSummary
}
