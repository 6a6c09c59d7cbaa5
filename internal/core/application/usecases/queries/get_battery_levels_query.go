package queries

import (
	"errors"

	"medidrone/internal/pkg/guard"
)

var ErrGetBatteryLevelsQueryIsNotConstructed = errors.New(
	"GetBatteryLevelsQuery must be created via NewGetBatteryLevelsQuery constructor",
)

// GetBatteryLevelsQuery reads the battery level of every drone for the periodic audit log.
type GetBatteryLevelsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBatteryLevelsQuery() GetBatteryLevelsQuery {
	return GetBatteryLevelsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBatteryLevelsQuery) Validate() error {
	return q.guard.Validate(ErrGetBatteryLevelsQueryIsNotConstructed)
}

type BatteryLevelResponse struct {
	DroneID         int64
	SerialNumber    string
	BatteryCapacity int
}
