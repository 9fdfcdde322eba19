package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// CalendarEventRepository defines persistence operations for calendar events.
// Events are kept in insertion order; duplicates are permitted.
type CalendarEventRepository interface {
	List(ctx context.Context) ([]models.CalendarEvent, error)
	GetByID(ctx context.Context, id uint) (models.CalendarEvent, error)
	Create(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, id uint) error
}

type calendarEventRepository struct {
	db *gorm.DB
}

// NewCalendarEventRepository instantiates a GORM-backed repository.
func NewCalendarEventRepository(db *gorm.DB) CalendarEventRepository {
	return &calendarEventRepository{db: db}
}

func (r *calendarEventRepository) List(ctx context.Context) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *calendarEventRepository) GetByID(ctx context.Context, id uint) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return models.CalendarEvent{}, err
	}

	return event, nil
}

func (r *calendarEventRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *calendarEventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.CalendarEvent{}, id).Error
}
