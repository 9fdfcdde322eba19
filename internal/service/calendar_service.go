package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/models"
	"github.com/acadia-edu/acadia-go-api/internal/repository"
)

// ErrCalendarEventNotFound indicates the calendar event was not located.
var ErrCalendarEventNotFound = errors.New("calendar event not found")

// ErrInvalidEventType indicates the event type label is not recognised.
var ErrInvalidEventType = errors.New("event type is not recognised")

// ErrInvalidDate indicates a date string is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

// CalendarService manages academic calendar events and day classification.
type CalendarService interface {
	ListEvents(ctx context.Context) ([]dto.CalendarEventResponse, error)
	AddEvent(ctx context.Context, payload dto.CalendarEventCreateRequest) (dto.CalendarEventResponse, error)
	DeleteEvent(ctx context.Context, id uint) error
	Day(ctx context.Context, date string) (dto.CalendarDayResponse, error)
}

type calendarService struct {
	repo      repository.CalendarEventRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewCalendarService constructs the calendar service.
func NewCalendarService(repo repository.CalendarEventRepository, validator *validator.Validate, logger zerolog.Logger) CalendarService {
	return &calendarService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "calendar_service").Logger(),
		now:       time.Now,
	}
}

func (s *calendarService) ListEvents(ctx context.Context) ([]dto.CalendarEventResponse, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewCalendarEventResponseSlice(events), nil
}

func (s *calendarService) AddEvent(ctx context.Context, payload dto.CalendarEventCreateRequest) (dto.CalendarEventResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CalendarEventResponse{}, err
	}

	eventType := models.EventType(payload.Type)
	if !eventType.Valid() {
		return dto.CalendarEventResponse{}, ErrInvalidEventType
	}

	event := models.CalendarEvent{
		Date:        payload.Date,
		Description: payload.Description,
		Type:        eventType,
	}

	if err := s.repo.Create(ctx, &event); err != nil {
		return dto.CalendarEventResponse{}, err
	}

	s.logger.Info().Uint("id", event.ID).Str("date", event.Date).Str("type", string(event.Type)).Msg("calendar event added")

	return dto.NewCalendarEventResponse(event), nil
}

func (s *calendarService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCalendarEventNotFound
		}

		return err
	}

	return s.repo.Delete(ctx, id)
}

// Day returns the events of one date plus its visual classification. The
// today flag is an overlay computed from the clock, independent of events.
func (s *calendarService) Day(ctx context.Context, date string) (dto.CalendarDayResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return dto.CalendarDayResponse{}, ErrInvalidDate
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return dto.CalendarDayResponse{}, err
	}

	onDay := EventsOn(events, date)

	return dto.CalendarDayResponse{
		Date:    date,
		State:   string(ClassifyDay(onDay)),
		IsToday: date == s.now().Format(dateLayout),
		Events:  dto.NewCalendarEventResponseSlice(onDay),
	}, nil
}
