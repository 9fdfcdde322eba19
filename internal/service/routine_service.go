package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/models"
	"github.com/acadia-edu/acadia-go-api/internal/observability"
	"github.com/acadia-edu/acadia-go-api/internal/repository"
)

// ErrRoutineEntryNotFound indicates the routine entry was not located.
var ErrRoutineEntryNotFound = errors.New("routine entry not found")

// ErrInvalidWeekday indicates the weekday is not a teaching day.
var ErrInvalidWeekday = errors.New("weekday must be one of Sunday through Thursday")

// ErrInvalidTimeSlot indicates the time slot is not a recognised period.
var ErrInvalidTimeSlot = errors.New("time slot is not a recognised teaching period")

// RoutineService manages the conflict-free class routine.
type RoutineService interface {
	List(ctx context.Context) ([]dto.RoutineEntryResponse, error)
	Get(ctx context.Context, id uint) (dto.RoutineEntryResponse, error)
	Create(ctx context.Context, payload dto.RoutineEntryRequest) (dto.RoutineEntryResponse, error)
	Update(ctx context.Context, id uint, payload dto.RoutineEntryRequest) (dto.RoutineEntryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type routineService struct {
	repo      repository.RoutineRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewRoutineService constructs the routine service.
func NewRoutineService(repo repository.RoutineRepository, validator *validator.Validate, logger zerolog.Logger) RoutineService {
	return &routineService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "routine_service").Logger(),
	}
}

func (s *routineService) List(ctx context.Context) ([]dto.RoutineEntryResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewRoutineEntryResponseSlice(entries), nil
}

func (s *routineService) Get(ctx context.Context, id uint) (dto.RoutineEntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RoutineEntryResponse{}, ErrRoutineEntryNotFound
		}

		return dto.RoutineEntryResponse{}, err
	}

	return dto.NewRoutineEntryResponse(entry), nil
}

func (s *routineService) Create(ctx context.Context, payload dto.RoutineEntryRequest) (dto.RoutineEntryResponse, error) {
	return s.place(ctx, models.RoutineEntry{}, payload)
}

func (s *routineService) Update(ctx context.Context, id uint, payload dto.RoutineEntryRequest) (dto.RoutineEntryResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RoutineEntryResponse{}, ErrRoutineEntryNotFound
		}

		return dto.RoutineEntryResponse{}, err
	}

	return s.place(ctx, existing, payload)
}

// place runs the shared add/edit path: validate, refetch the routine
// snapshot, check the candidate slot against it (excluding the entry being
// edited) and persist on acceptance. current is the stored entry on edits
// (the zero value on create); its ID and CreatedAt carry over so a save
// does not wipe the original timestamp.
func (s *routineService) place(ctx context.Context, current models.RoutineEntry, payload dto.RoutineEntryRequest) (dto.RoutineEntryResponse, error) {
	id := current.ID

	tracer := otel.Tracer("github.com/acadia-edu/acadia-go-api/internal/service/routine")
	ctx, span := tracer.Start(ctx, "routine.place")
	span.SetAttributes(
		attribute.Int64("routine.entry_id", int64(id)),
		attribute.String("routine.weekday", payload.Weekday),
		attribute.String("routine.time_slot", payload.TimeSlot),
	)
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.RoutineEntryResponse{}, err
	}

	candidate := models.RoutineEntry{
		ID:         id,
		CourseCode: payload.CourseCode,
		TimeSlot:   models.TimeSlot(payload.TimeSlot),
		Weekday:    models.Weekday(payload.Weekday),
		CreatedAt:  current.CreatedAt,
	}

	if !candidate.Weekday.Valid() {
		span.SetStatus(codes.Error, "invalid_weekday")
		return dto.RoutineEntryResponse{}, ErrInvalidWeekday
	}
	if !candidate.TimeSlot.Valid() {
		span.SetStatus(codes.Error, "invalid_time_slot")
		return dto.RoutineEntryResponse{}, ErrInvalidTimeSlot
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot_fetch_failed")
		return dto.RoutineEntryResponse{}, err
	}

	if conflict := FindSlotConflict(existing, candidate, id); conflict != nil {
		span.SetStatus(codes.Error, "slot_conflict")
		observability.SlotConflicts().Inc()
		s.logger.Info().
			Uint("clashing_entry_id", conflict.EntryID).
			Str("weekday", string(conflict.Weekday)).
			Str("time_slot", string(conflict.TimeSlot)).
			Msg("routine slot conflict rejected")
		return dto.RoutineEntryResponse{}, conflict
	}

	if id == 0 {
		err = s.repo.Create(ctx, &candidate)
	} else {
		err = s.repo.Update(ctx, &candidate)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist_failed")
		return dto.RoutineEntryResponse{}, err
	}

	s.logger.Info().Uint("entry_id", candidate.ID).Msg("routine entry placed")

	return dto.NewRoutineEntryResponse(candidate), nil
}

func (s *routineService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoutineEntryNotFound
		}

		return err
	}

	return s.repo.Delete(ctx, id)
}
