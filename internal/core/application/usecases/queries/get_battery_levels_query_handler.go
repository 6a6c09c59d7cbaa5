package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetBatteryLevelsQueryHandler struct {
	db *gorm.DB
}

func NewGetBatteryLevelsQueryHandler(db *gorm.DB) GetBatteryLevelsQueryHandler {
	return GetBatteryLevelsQueryHandler{db: db}
}

// Handle returns every drone ordered by id. Drones are few, so the list is not paged.
func (h GetBatteryLevelsQueryHandler) Handle(
	ctx context.Context,
	query GetBatteryLevelsQuery,
) ([]BatteryLevelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	levels := make([]BatteryLevelResponse, 0)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			serial_number,
			battery_capacity
		FROM drones
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var level BatteryLevelResponse
		if err = rows.Scan(&level.DroneID, &level.SerialNumber, &level.BatteryCapacity); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return levels, nil
}
