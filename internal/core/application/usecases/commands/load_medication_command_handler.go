package commands

import (
	"context"
	"log/slog"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/services"
)

// LoadMedicationCommandHandler attaches one medication to a drone without the capacity check
// that UpdateDroneCommandHandler applies. The load is still measured so that an overloaded
// drone shows up in the logs.
//
// TODO: route this through CapacityRuleEngine.PlanLoad once clients stop relying on the
// unchecked single-item path.
type LoadMedicationCommandHandler struct {
	uowFactory UoWFactory
	engine     services.CapacityRuleEngine
	logger     *slog.Logger
}

func NewLoadMedicationCommandHandler(uowFactory UoWFactory, logger *slog.Logger) LoadMedicationCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return LoadMedicationCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewCapacityRuleEngine(),
		logger:     logger.With("component", "LoadMedicationCommandHandler"),
	}
}

// Handle returns the drone with the medication appended. Loading a medication the drone
// already carries changes nothing.
func (h LoadMedicationCommandHandler) Handle(ctx context.Context, cmd LoadMedicationCommand) (*drone.Drone, error) {
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

	m, err := uow.MedicationRepository().Get(ctx, cmd.MedicationID())
	if err != nil {
		return nil, err
	}

	if !d.HasMedication(m.ID()) && !h.engine.HasCapacityFor(d, m.Weight()) {
		h.logger.WarnContext(ctx, "drone loaded above its weight limit",
			"drone_id", d.ID(),
			"medication_id", m.ID(),
			"weight_limit", d.WeightLimit(),
			"load", h.engine.UsedCapacity(d)+m.Weight())
	}

	if err = d.AttachMedication(m); err != nil {
		return nil, err
	}

	if err = droneRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
