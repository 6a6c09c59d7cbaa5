package commands

import (
	"errors"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/pkg/errs"
	"medidrone/internal/pkg/guard"
)

var ErrCreateDroneCommandIsNotConstructed = errors.New(
	"CreateDroneCommand must be created via NewCreateDroneCommand constructor",
)

// CreateDroneCommand registers a new drone. Range checks on the numeric fields are left
// to the Drone aggregate; the command only rejects values that cannot describe a drone at all.
//
// Example:
//
//	cmd, err := NewCreateDroneCommand("DA0144", drone.Heavyweight,
//	    drone.DefaultWeightLimit, drone.DefaultBatteryCapacity, drone.Idle)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateDroneCommand struct { //nolint:recvcheck //using for validation
	serialNumber    string
	model           drone.Model
	weightLimit     float64
	batteryCapacity int
	state           drone.State

	guard guard.ConstructorGuard
}

func NewCreateDroneCommand(
	serialNumber string,
	model drone.Model,
	weightLimit float64,
	batteryCapacity int,
	state drone.State,
) (CreateDroneCommand, error) {
	command := CreateDroneCommand{
		weightLimit:     weightLimit,
		batteryCapacity: batteryCapacity,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerialNumber(serialNumber),
		command.setModel(model),
		command.setState(state),
	); err != nil {
		return CreateDroneCommand{}, err
	}

	return command, nil
}

func (c CreateDroneCommand) Validate() error {
	return c.guard.Validate(ErrCreateDroneCommandIsNotConstructed)
}

func (c CreateDroneCommand) SerialNumber() string {
	return c.serialNumber
}

func (c CreateDroneCommand) Model() drone.Model {
	return c.model
}

func (c CreateDroneCommand) WeightLimit() float64 {
	return c.weightLimit
}

func (c CreateDroneCommand) BatteryCapacity() int {
	return c.batteryCapacity
}

func (c CreateDroneCommand) State() drone.State {
	return c.state
}

func (c *CreateDroneCommand) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return errs.NewValueIsRequiredError("serial_number")
	}
	c.serialNumber = serialNumber
	return nil
}

func (c *CreateDroneCommand) setModel(model drone.Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	c.model = model
	return nil
}

func (c *CreateDroneCommand) setState(state drone.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.state = state
	return nil
}
