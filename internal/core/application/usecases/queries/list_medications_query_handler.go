package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListMedicationsQueryHandler reads medications ordered by id, assigned or not.
type ListMedicationsQueryHandler struct {
	db *gorm.DB
}

func NewListMedicationsQueryHandler(db *gorm.DB) ListMedicationsQueryHandler {
	return ListMedicationsQueryHandler{db: db}
}

func (h ListMedicationsQueryHandler) Handle(
	ctx context.Context,
	query ListMedicationsQuery,
) ([]MedicationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+medicationColumns+` FROM medications ORDER BY id LIMIT ? OFFSET ?`,
		query.Page().Limit(), query.Page().Offset(),
	).Rows()
	if err != nil {
		return nil, err
	}

	return scanMedications(rows)
}
