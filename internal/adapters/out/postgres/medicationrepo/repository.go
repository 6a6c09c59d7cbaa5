package medicationrepo

import (
	"context"
	"errors"
	"strconv"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMedicationRepository implements ports.MedicationRepository using GORM.
type GormMedicationRepository struct {
	db *gorm.DB
}

// NewGormMedicationRepository creates a repository on db, which may be a transaction.
func NewGormMedicationRepository(db *gorm.DB) *GormMedicationRepository {
	return &GormMedicationRepository{db: db}
}

// Add inserts a new medication and returns it with its generated id.
func (r *GormMedicationRepository) Add(
	ctx context.Context,
	aggregate *medication.Medication,
) (*medication.Medication, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := FromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return ToDomain(dto)
}

// Update writes all columns of an existing medication.
func (r *GormMedicationRepository) Update(ctx context.Context, aggregate *medication.Medication) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MedicationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":     dto.Name,
			"weight":   dto.Weight,
			"code":     dto.Code,
			"image":    dto.Image,
			"drone_id": dto.DroneID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medication", strconv.FormatInt(dto.ID, 10))
	}

	return nil
}

// Get retrieves a medication by id.
func (r *GormMedicationRepository) Get(ctx context.Context, id int64) (*medication.Medication, error) {
	var dto MedicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medication", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetMany loads the medications that exist among ids, keeping the order of ids.
func (r *GormMedicationRepository) GetMany(ctx context.Context, ids []int64) ([]*medication.Medication, error) {
	result := make([]*medication.Medication, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var dtos []MedicationDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]MedicationDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	for _, id := range ids {
		dto, ok := byID[id]
		if !ok {
			continue
		}
		m, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, nil
}

// Remove deletes a medication row.
func (r *GormMedicationRepository) Remove(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MedicationDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medication", strconv.FormatInt(id, 10))
	}
	return nil
}

// DetachFromDrone sets drone_id to NULL for every medication of droneID.
func (r *GormMedicationRepository) DetachFromDrone(ctx context.Context, droneID int64) error {
	return r.db.WithContext(ctx).
		Model(&MedicationDTO{}).
		Where("drone_id = ?", droneID).
		Update("drone_id", nil).Error
}
