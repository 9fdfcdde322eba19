package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// RoutineRepository defines persistence operations for routine entries.
// Slot uniqueness is enforced by the service-level conflict check, not here.
type RoutineRepository interface {
	List(ctx context.Context) ([]models.RoutineEntry, error)
	GetByID(ctx context.Context, id uint) (models.RoutineEntry, error)
	Create(ctx context.Context, entry *models.RoutineEntry) error
	Update(ctx context.Context, entry *models.RoutineEntry) error
	Delete(ctx context.Context, id uint) error
}

type routineRepository struct {
	db *gorm.DB
}

// NewRoutineRepository instantiates a GORM-backed repository.
func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &routineRepository{db: db}
}

func (r *routineRepository) List(ctx context.Context) ([]models.RoutineEntry, error) {
	var entries []models.RoutineEntry
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *routineRepository) GetByID(ctx context.Context, id uint) (models.RoutineEntry, error) {
	var entry models.RoutineEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return models.RoutineEntry{}, err
	}

	return entry, nil
}

func (r *routineRepository) Create(ctx context.Context, entry *models.RoutineEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *routineRepository) Update(ctx context.Context, entry *models.RoutineEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *routineRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.RoutineEntry{}, id).Error
}
