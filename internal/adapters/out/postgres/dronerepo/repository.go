package dronerepo

import (
	"context"
	"errors"
	"strconv"

	"medidrone/internal/adapters/out/postgres/medicationrepo"
	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDroneRepository implements ports.DroneRepository using GORM.
type GormDroneRepository struct {
	db *gorm.DB
}

// NewGormDroneRepository creates a repository on db, which may be a transaction.
func NewGormDroneRepository(db *gorm.DB) *GormDroneRepository {
	return &GormDroneRepository{db: db}
}

// Add inserts a new drone row. Medications are never written by Add.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) (*drone.Drone, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := FromDomain(aggregate)
	dto.ID = 0
	dto.Medications = nil
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return nil, err
	}

	return ToDomain(dto)
}

// Update writes the drone columns, then assigns every attached medication to the drone.
// Columns are listed explicitly: Save would insert a missing row instead of failing.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"serial_number":    dto.SerialNumber,
			"model":            dto.Model,
			"weight_limit":     dto.WeightLimit,
			"battery_capacity": dto.BatteryCapacity,
			"state":            dto.State,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("drone", strconv.FormatInt(dto.ID, 10))
	}

	if len(dto.Medications) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(dto.Medications))
	for _, m := range dto.Medications {
		ids = append(ids, m.ID)
	}

	return r.db.WithContext(ctx).
		Model(&medicationrepo.MedicationDTO{}).
		Where("id IN ?", ids).
		Update("drone_id", dto.ID).Error
}

// Get retrieves a drone by id with its medications ordered by id.
func (r *GormDroneRepository) Get(ctx context.Context, id int64) (*drone.Drone, error) {
	var dto DroneDTO
	err := r.db.WithContext(ctx).
		Preload("Medications", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drone", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Remove deletes the drone row.
func (r *GormDroneRepository) Remove(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DroneDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("drone", strconv.FormatInt(id, 10))
	}
	return nil
}
