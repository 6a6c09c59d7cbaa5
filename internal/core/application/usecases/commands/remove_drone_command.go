package commands

import (
	"errors"

	"medidrone/internal/pkg/guard"
)

var ErrRemoveDroneCommandIsNotConstructed = errors.New(
	"RemoveDroneCommand must be created via NewRemoveDroneCommand constructor",
)

// RemoveDroneCommand deletes a drone. Its medications stay and become unassigned.
type RemoveDroneCommand struct { //nolint:recvcheck //using for validation
	droneID int64

	guard guard.ConstructorGuard
}

func NewRemoveDroneCommand(droneID int64) (RemoveDroneCommand, error) {
	if err := checkID("drone_id", droneID); err != nil {
		return RemoveDroneCommand{}, err
	}

	return RemoveDroneCommand{
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveDroneCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDroneCommandIsNotConstructed)
}

func (c RemoveDroneCommand) DroneID() int64 {
	return c.droneID
}
