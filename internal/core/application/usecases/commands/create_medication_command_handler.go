package commands

import (
	"context"
	"log/slog"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/core/ports"
)

// CreateMedicationCommandHandler stores the image first and then the medication row.
// When the row cannot be written the stored image is deleted again.
type CreateMedicationCommandHandler struct {
	uowFactory MedicationUoWFactory
	images     ports.ImageStorage
	logger     *slog.Logger
}

func NewCreateMedicationCommandHandler(
	uowFactory MedicationUoWFactory,
	images ports.ImageStorage,
	logger *slog.Logger,
) CreateMedicationCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateMedicationCommandHandler{
		uowFactory: uowFactory,
		images:     images,
		logger:     logger.With("component", "CreateMedicationCommandHandler"),
	}
}

func (h CreateMedicationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateMedicationCommand,
) (*medication.Medication, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	m, err := medication.NewMedication(cmd.Name(), cmd.Weight(), cmd.Code(), nil)
	if err != nil {
		return nil, err
	}

	if upload, ok := cmd.Image(); ok {
		url, saveErr := h.images.Save(ctx, upload)
		if saveErr != nil {
			return nil, saveErr
		}
		if _, err = m.ReplaceImage(url); err != nil {
			return nil, err
		}
	}

	stored, err := h.persist(ctx, m)
	if err != nil {
		discardImage(ctx, h.images, h.logger, m.Image())
		return nil, err
	}

	return stored, nil
}

func (h CreateMedicationCommandHandler) persist(
	ctx context.Context,
	m *medication.Medication,
) (*medication.Medication, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.MedicationRepository().Add(ctx, m)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}

// discardImage deletes an image that is no longer referenced. Failures are logged only:
// the request outcome is already decided.
func discardImage(ctx context.Context, images ports.ImageStorage, logger *slog.Logger, url *string) {
	if url == nil {
		return
	}
	if err := images.Delete(ctx, *url); err != nil {
		logger.ErrorContext(ctx, "failed to delete image", "image", *url, "error", err)
	}
}
