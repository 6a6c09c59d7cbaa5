package queries

import (
	"context"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListAvailableDronesQueryHandler returns idle drones whose current load fits their limit.
//
// The state filter runs in SQL and selects the page; the capacity filter runs on that page,
// so a page can hold fewer than limit drones when stored loads are inconsistent.
type ListAvailableDronesQueryHandler struct {
	db     *gorm.DB
	engine services.CapacityRuleEngine
}

func NewListAvailableDronesQueryHandler(db *gorm.DB) ListAvailableDronesQueryHandler {
	return ListAvailableDronesQueryHandler{
		db:     db,
		engine: services.NewCapacityRuleEngine(),
	}
}

func (h ListAvailableDronesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableDronesQuery,
) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+droneColumns+` FROM drones WHERE state = ? ORDER BY id LIMIT ? OFFSET ?`,
		drone.Idle.String(), query.Page().Limit(), query.Page().Offset(),
	).Rows()
	if err != nil {
		return nil, err
	}
	summaries, err := scanDroneSummaries(rows)
	if err != nil {
		return nil, err
	}

	idle, err := withMedications(ctx, h.db, summaries)
	if err != nil {
		return nil, err
	}

	available := make([]DroneResponse, 0, len(idle))
	for _, candidate := range idle {
		d, aggErr := candidate.aggregate()
		if aggErr != nil {
			return nil, aggErr
		}
		if h.engine.HasCapacityFor(d, 0) {
			available = append(available, candidate)
		}
	}

	return available, nil
}
