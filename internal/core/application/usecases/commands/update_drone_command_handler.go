package commands

import (
	"context"
	"errors"
	"log/slog"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/services"
)

// UpdateDroneCommandHandler applies partial drone updates under the fleet rules.
//
// Order of checks, all inside one unit of work:
//  1. the drone must exist
//  2. a move to Loading is checked against the battery level stored before the patch
//  3. field changes are applied; a lowered weight limit must still hold the current load
//  4. requested medications are resolved, unknown ids are skipped, and the rest are checked
//     cumulatively against the weight limit
//
// Any failure leaves the stored drone and its medications unchanged.
type UpdateDroneCommandHandler struct {
	uowFactory UoWFactory
	guard      services.StateTransitionGuard
	engine     services.CapacityRuleEngine
	logger     *slog.Logger
}

func NewUpdateDroneCommandHandler(uowFactory UoWFactory, logger *slog.Logger) UpdateDroneCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateDroneCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewStateTransitionGuard(),
		engine:     services.NewCapacityRuleEngine(),
		logger:     logger.With("component", "UpdateDroneCommandHandler"),
	}
}

// Handle returns the updated drone with its full medication list.
func (h UpdateDroneCommandHandler) Handle(ctx context.Context, cmd UpdateDroneCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	d, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return nil, err
	}

	if state, ok := cmd.State(); ok && state == drone.Loading {
		if err = h.guard.CheckTransition(d, state); err != nil {
			return nil, err
		}
	}

	if err = h.applyFields(d, cmd); err != nil {
		return nil, err
	}

	if ids := cmd.MedicationIDs(); len(ids) > 0 {
		if err = h.attachMedications(ctx, uow, d, ids); err != nil {
			return nil, err
		}
	}

	if err = droneRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func (h UpdateDroneCommandHandler) applyFields(d *drone.Drone, cmd UpdateDroneCommand) error {
	var errList []error

	weightLimit, weightChanged := cmd.WeightLimit()
	if weightChanged {
		errList = append(errList, d.SetWeightLimit(weightLimit))
	}
	if battery, ok := cmd.BatteryCapacity(); ok {
		errList = append(errList, d.SetBatteryCapacity(battery))
	}
	if state, ok := cmd.State(); ok {
		errList = append(errList, d.ChangeState(state))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if weightChanged {
		return h.engine.ValidateLoad(d)
	}
	return nil
}

func (h UpdateDroneCommandHandler) attachMedications(ctx context.Context, uow UoW, d *drone.Drone, ids []int64) error {
	candidates, err := uow.MedicationRepository().GetMany(ctx, ids)
	if err != nil {
		return err
	}
	if skipped := len(ids) - len(candidates); skipped > 0 {
		h.logger.DebugContext(ctx, "skipping unknown medications",
			"drone_id", d.ID(), "requested", len(ids), "skipped", skipped)
	}

	accepted, err := h.engine.PlanLoad(d, candidates)
	if err != nil {
		return err
	}

	for _, m := range accepted {
		if err = d.AttachMedication(m); err != nil {
			return err
		}
	}
	return nil
}
