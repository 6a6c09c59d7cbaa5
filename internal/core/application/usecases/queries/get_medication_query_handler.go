package queries

import (
	"context"
	"strconv"

	"medidrone/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMedicationQueryHandler struct {
	db *gorm.DB
}

func NewGetMedicationQueryHandler(db *gorm.DB) GetMedicationQueryHandler {
	return GetMedicationQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown ids.
func (h GetMedicationQueryHandler) Handle(
	ctx context.Context,
	query GetMedicationQuery,
) (GetMedicationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMedicationQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+medicationColumns+` FROM medications WHERE id = ?`, query.MedicationID(),
	).Rows()
	if err != nil {
		return GetMedicationQueryResponse{}, err
	}
	medications, err := scanMedications(rows)
	if err != nil {
		return GetMedicationQueryResponse{}, err
	}
	if len(medications) == 0 {
		return GetMedicationQueryResponse{}, errs.NewObjectNotFoundError(
			"medication", strconv.FormatInt(query.MedicationID(), 10),
		)
	}

	response := GetMedicationQueryResponse{MedicationResponse: medications[0]}
	if droneID := response.DroneID; droneID != nil {
		summary, summaryErr := getDroneSummary(ctx, h.db, *droneID)
		if summaryErr != nil {
			return GetMedicationQueryResponse{}, summaryErr
		}
		response.Drone = &summary
	}

	return response, nil
}
