package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDronesQueryHandler reads drones with their medications, ordered by id.
type ListDronesQueryHandler struct {
	db *gorm.DB
}

func NewListDronesQueryHandler(db *gorm.DB) ListDronesQueryHandler {
	return ListDronesQueryHandler{db: db}
}

func (h ListDronesQueryHandler) Handle(ctx context.Context, query ListDronesQuery) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `SELECT ` + droneColumns + ` FROM drones`
	args := make([]any, 0, 3)
	if state, ok := query.State(); ok {
		stmt += ` WHERE state = ?`
		args = append(args, state.String())
	}
	stmt += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, query.Page().Limit(), query.Page().Offset())

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	summaries, err := scanDroneSummaries(rows)
	if err != nil {
		return nil, err
	}

	return withMedications(ctx, h.db, summaries)
}
