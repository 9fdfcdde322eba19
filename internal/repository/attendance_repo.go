package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// AttendanceRepository defines persistence operations for attendance records.
type AttendanceRepository interface {
	List(ctx context.Context) ([]models.AttendanceRecord, error)
	GetByID(ctx context.Context, id uint) (models.AttendanceRecord, error)
	Create(ctx context.Context, record *models.AttendanceRecord) error
	Update(ctx context.Context, record *models.AttendanceRecord) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository instantiates a GORM-backed repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) List(ctx context.Context) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uint) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return models.AttendanceRecord{}, err
	}

	return record, nil
}

func (r *attendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) Update(ctx context.Context, record *models.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.AttendanceRecord{}, id).Error
}

func (r *attendanceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AttendanceRecord{}).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}
