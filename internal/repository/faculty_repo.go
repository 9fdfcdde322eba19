package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// FacultyRepository defines persistence operations for faculty members.
type FacultyRepository interface {
	List(ctx context.Context) ([]models.Faculty, error)
	GetByID(ctx context.Context, id uint) (models.Faculty, error)
	GetByFacultyID(ctx context.Context, facultyID string) (models.Faculty, error)
	Create(ctx context.Context, member *models.Faculty) error
	Update(ctx context.Context, member *models.Faculty) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type facultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository instantiates a GORM-backed repository.
func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	var faculty []models.Faculty
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&faculty).Error; err != nil {
		return nil, err
	}

	return faculty, nil
}

func (r *facultyRepository) GetByID(ctx context.Context, id uint) (models.Faculty, error) {
	var member models.Faculty
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return models.Faculty{}, err
	}

	return member, nil
}

func (r *facultyRepository) GetByFacultyID(ctx context.Context, facultyID string) (models.Faculty, error) {
	var member models.Faculty
	if err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).First(&member).Error; err != nil {
		return models.Faculty{}, err
	}

	return member, nil
}

func (r *facultyRepository) Create(ctx context.Context, member *models.Faculty) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *facultyRepository) Update(ctx context.Context, member *models.Faculty) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *facultyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Faculty{}, id).Error
}

func (r *facultyRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Faculty{}).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}
