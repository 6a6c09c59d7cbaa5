package commands

import (
	"context"

	"medidrone/internal/core/domain/model/drone"
)

// CreateDroneCommandHandler persists new drones. Creation is not gated by the battery
// threshold: a drone may be registered directly in the Loading state.
type CreateDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

func NewCreateDroneCommandHandler(uowFactory DroneUoWFactory) CreateDroneCommandHandler {
	return CreateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored drone with its assigned id.
func (h CreateDroneCommandHandler) Handle(ctx context.Context, cmd CreateDroneCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := drone.NewDrone(cmd.SerialNumber(), cmd.Model(), cmd.WeightLimit(), cmd.BatteryCapacity(), cmd.State())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.DroneRepository().Add(ctx, d)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
