package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// GradeRepository defines persistence operations for grade records.
type GradeRepository interface {
	List(ctx context.Context) ([]models.GradeRecord, error)
	GetByID(ctx context.Context, id uint) (models.GradeRecord, error)
	Create(ctx context.Context, record *models.GradeRecord) error
	Update(ctx context.Context, record *models.GradeRecord) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository instantiates a GORM-backed repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) List(ctx context.Context) ([]models.GradeRecord, error) {
	var records []models.GradeRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *gradeRepository) GetByID(ctx context.Context, id uint) (models.GradeRecord, error) {
	var record models.GradeRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return models.GradeRecord{}, err
	}

	return record, nil
}

func (r *gradeRepository) Create(ctx context.Context, record *models.GradeRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *gradeRepository) Update(ctx context.Context, record *models.GradeRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *gradeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.GradeRecord{}, id).Error
}

func (r *gradeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.GradeRecord{}).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}
