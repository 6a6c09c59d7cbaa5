package queries

import (
	"context"
	"strconv"

	"medidrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDroneQueryHandler reads one drone with its medications.
type GetDroneQueryHandler struct {
	db *gorm.DB
}

func NewGetDroneQueryHandler(db *gorm.DB) GetDroneQueryHandler {
	return GetDroneQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown ids.
func (h GetDroneQueryHandler) Handle(ctx context.Context, query GetDroneQuery) (DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return DroneResponse{}, err
	}

	summary, err := getDroneSummary(ctx, h.db, query.DroneID())
	if err != nil {
		return DroneResponse{}, err
	}

	drones, err := withMedications(ctx, h.db, []DroneSummary{summary})
	if err != nil {
		return DroneResponse{}, err
	}
	return drones[0], nil
}

func getDroneSummary(ctx context.Context, db *gorm.DB, id int64) (DroneSummary, error) {
	rows, err := db.WithContext(ctx).Raw(`SELECT `+droneColumns+` FROM drones WHERE id = ?`, id).Rows()
	if err != nil {
		return DroneSummary{}, err
	}
	summaries, err := scanDroneSummaries(rows)
	if err != nil {
		return DroneSummary{}, err
	}
	if len(summaries) == 0 {
		return DroneSummary{}, errs.NewObjectNotFoundError("drone", strconv.FormatInt(id, 10))
	}
	return summaries[0], nil
}
