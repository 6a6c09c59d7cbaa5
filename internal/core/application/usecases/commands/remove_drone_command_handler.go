package commands

import (
	"context"
)

// RemoveDroneCommandHandler detaches the drone's medications and deletes the drone in
// one transaction, so the detach holds even where the store does not enforce ON DELETE SET NULL.
type RemoveDroneCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveDroneCommandHandler(uowFactory UoWFactory) RemoveDroneCommandHandler {
	return RemoveDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ObjectNotFoundError when the drone does not exist.
func (h RemoveDroneCommandHandler) Handle(ctx context.Context, cmd RemoveDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MedicationRepository().DetachFromDrone(ctx, cmd.DroneID()); err != nil {
		return err
	}

	if err := uow.DroneRepository().Remove(ctx, cmd.DroneID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
