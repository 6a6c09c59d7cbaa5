package commands

import (
	"context"
	"log/slog"

	"medidrone/internal/core/ports"
)

// RemoveMedicationCommandHandler deletes the row and, once the delete is committed,
// its image. A failed image delete is logged and does not fail the command.
type RemoveMedicationCommandHandler struct {
	uowFactory MedicationUoWFactory
	images     ports.ImageStorage
	logger     *slog.Logger
}

func NewRemoveMedicationCommandHandler(
	uowFactory MedicationUoWFactory,
	images ports.ImageStorage,
	logger *slog.Logger,
) RemoveMedicationCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return RemoveMedicationCommandHandler{
		uowFactory: uowFactory,
		images:     images,
		logger:     logger.With("component", "RemoveMedicationCommandHandler"),
	}
}

func (h RemoveMedicationCommandHandler) Handle(ctx context.Context, cmd RemoveMedicationCommand) error {
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

	repo := uow.MedicationRepository()
	m, err := repo.Get(ctx, cmd.MedicationID())
	if err != nil {
		return err
	}

	if err = repo.Remove(ctx, m.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	discardImage(ctx, h.images, h.logger, m.Image())
	return nil
}
