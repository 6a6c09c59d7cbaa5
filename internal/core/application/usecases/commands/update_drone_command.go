package commands

import (
	"errors"
	"fmt"
	"slices"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/pkg/guard"
)

var ErrUpdateDroneCommandIsNotConstructed = errors.New(
	"UpdateDroneCommand must be created via NewUpdateDroneCommand constructor",
)

// DronePatch lists the changes of a partial drone update. Nil fields are left untouched.
// MedicationIDs are attached in order on top of the medications the drone already carries.
type DronePatch struct {
	WeightLimit     *float64
	BatteryCapacity *int
	State           *drone.State
	MedicationIDs   []int64
}

// UpdateDroneCommand applies a DronePatch to one drone as a single all-or-nothing change.
//
// Example:
//
//	loading := drone.Loading
//	cmd, err := NewUpdateDroneCommand(droneID, DronePatch{
//	    State:         &loading,
//	    MedicationIDs: []int64{3, 7},
//	})
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrBatteryTooLow):
//	    // drone stays as it was
//	case errors.Is(err, services.ErrOverCapacity):
//	    // no medication was attached
//	}
type UpdateDroneCommand struct { //nolint:recvcheck //using for validation
	droneID int64
	patch   DronePatch

	guard guard.ConstructorGuard
}

func NewUpdateDroneCommand(droneID int64, patch DronePatch) (UpdateDroneCommand, error) {
	command := UpdateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setPatch(patch),
	); err != nil {
		return UpdateDroneCommand{}, err
	}

	return command, nil
}

func (c UpdateDroneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDroneCommandIsNotConstructed)
}

func (c UpdateDroneCommand) DroneID() int64 {
	return c.droneID
}

func (c UpdateDroneCommand) WeightLimit() (float64, bool) {
	if c.patch.WeightLimit == nil {
		return 0, false
	}
	return *c.patch.WeightLimit, true
}

func (c UpdateDroneCommand) BatteryCapacity() (int, bool) {
	if c.patch.BatteryCapacity == nil {
		return 0, false
	}
	return *c.patch.BatteryCapacity, true
}

func (c UpdateDroneCommand) State() (drone.State, bool) {
	if c.patch.State == nil {
		return drone.UnknownState, false
	}
	return *c.patch.State, true
}

// MedicationIDs returns a copy of the ids to attach, in request order.
func (c UpdateDroneCommand) MedicationIDs() []int64 {
	return slices.Clone(c.patch.MedicationIDs)
}

func (c *UpdateDroneCommand) setDroneID(id int64) error {
	if err := checkID("drone_id", id); err != nil {
		return err
	}
	c.droneID = id
	return nil
}

func (c *UpdateDroneCommand) setPatch(patch DronePatch) error {
	var errList []error
	if patch.State != nil {
		if err := patch.State.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	for i, id := range patch.MedicationIDs {
		if err := checkID(fmt.Sprintf("medication_ids[%d]", i), id); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.patch = DronePatch{
		WeightLimit:     clonePtr(patch.WeightLimit),
		BatteryCapacity: clonePtr(patch.BatteryCapacity),
		State:           clonePtr(patch.State),
		MedicationIDs:   slices.Clone(patch.MedicationIDs),
	}
	return nil
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
