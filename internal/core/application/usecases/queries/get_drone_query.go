package queries

import (
	"errors"
	"math"

	"medidrone/internal/pkg/errs"
	"medidrone/internal/pkg/guard"
)

var ErrGetDroneQueryIsNotConstructed = errors.New(
	"GetDroneQuery must be created via NewGetDroneQuery constructor",
)

type GetDroneQuery struct {
	droneID int64

	guard guard.ConstructorGuard
}

func NewGetDroneQuery(droneID int64) (GetDroneQuery, error) {
	if droneID <= 0 {
		return GetDroneQuery{}, errs.NewValueIsOutOfRangeError("drone_id", droneID, 1, int64(math.MaxInt64))
	}
	return GetDroneQuery{droneID: droneID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

func (q GetDroneQuery) DroneID() int64 {
	return q.droneID
}
