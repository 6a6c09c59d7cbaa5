package commands

import (
	"context"
	"errors"
	"log/slog"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/core/domain/services"
	"medidrone/internal/core/ports"
)

// UpdateMedicationCommandHandler applies a MedicationPatch. A replaced image is deleted
// only after the new URL has been committed; a failed update deletes the new image instead.
// A new weight for a medication attached to a drone must still fit that drone's limit.
type UpdateMedicationCommandHandler struct {
	uowFactory UoWFactory
	capacity   services.CapacityRuleEngine
	images     ports.ImageStorage
	logger     *slog.Logger
}

func NewUpdateMedicationCommandHandler(
	uowFactory UoWFactory,
	images ports.ImageStorage,
	logger *slog.Logger,
) UpdateMedicationCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateMedicationCommandHandler{
		uowFactory: uowFactory,
		capacity:   services.NewCapacityRuleEngine(),
		images:     images,
		logger:     logger.With("component", "UpdateMedicationCommandHandler"),
	}
}

func (h UpdateMedicationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateMedicationCommand,
) (*medication.Medication, error) {
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

	repo := uow.MedicationRepository()
	m, err := repo.Get(ctx, cmd.MedicationID())
	if err != nil {
		return nil, err
	}

	previousWeight := m.Weight()
	if err = applyMedicationFields(m, cmd); err != nil {
		return nil, err
	}

	if droneID := m.DroneID(); droneID != nil && m.Weight() > previousWeight {
		d, getErr := uow.DroneRepository().Get(ctx, *droneID)
		if getErr != nil {
			return nil, getErr
		}
		if err = h.capacity.ValidateReweigh(d, m); err != nil {
			return nil, err
		}
	}

	var newImage, previousImage *string
	if upload, ok := cmd.Image(); ok {
		url, saveErr := h.images.Save(ctx, upload)
		if saveErr != nil {
			return nil, saveErr
		}
		newImage = &url
		if previousImage, err = m.ReplaceImage(url); err != nil {
			discardImage(ctx, h.images, h.logger, newImage)
			return nil, err
		}
	}

	if err = repo.Update(ctx, m); err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		discardImage(ctx, h.images, h.logger, newImage)
		return nil, err
	}

	discardImage(ctx, h.images, h.logger, previousImage)
	return m, nil
}

func applyMedicationFields(m *medication.Medication, cmd UpdateMedicationCommand) error {
	var errList []error
	if name, ok := cmd.Name(); ok {
		errList = append(errList, m.SetName(name))
	}
	if weight, ok := cmd.Weight(); ok {
		errList = append(errList, m.SetWeight(weight))
	}
	if code, ok := cmd.Code(); ok {
		errList = append(errList, m.SetCode(code))
	}
	return errors.Join(errList...)
}
