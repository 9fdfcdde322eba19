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
	"github.com/acadia-edu/acadia-go-api/internal/repository"
)

// ErrGradeNotFound indicates the grade record was not located.
var ErrGradeNotFound = errors.New("grade record not found")

// ErrInvalidAssessmentType indicates the assessment label is not recognised.
var ErrInvalidAssessmentType = errors.New("assessment type is not recognised")

// GradeService manages grade records and the GPA summary.
type GradeService interface {
	List(ctx context.Context) ([]dto.GradeRecordResponse, error)
	Create(ctx context.Context, payload dto.GradeEntryRequest) (dto.GradeRecordResponse, error)
	Update(ctx context.Context, id uint, payload dto.GradeEntryRequest) (dto.GradeRecordResponse, error)
	Delete(ctx context.Context, id uint) error
	GPASummary(ctx context.Context) ([]dto.GPASummaryRow, error)
}

type gradeService struct {
	repo      repository.GradeRepository
	students  repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(repo repository.GradeRepository, students repository.StudentRepository, validator *validator.Validate, logger zerolog.Logger) GradeService {
	return &gradeService{
		repo:      repo,
		students:  students,
		validator: validator,
		logger:    logger.With().Str("component", "grade_service").Logger(),
	}
}

func (s *gradeService) List(ctx context.Context) ([]dto.GradeRecordResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewGradeRecordResponseSlice(records), nil
}

func (s *gradeService) Create(ctx context.Context, payload dto.GradeEntryRequest) (dto.GradeRecordResponse, error) {
	return s.write(ctx, models.GradeRecord{}, payload)
}

func (s *gradeService) Update(ctx context.Context, id uint, payload dto.GradeEntryRequest) (dto.GradeRecordResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GradeRecordResponse{}, ErrGradeNotFound
		}

		return dto.GradeRecordResponse{}, err
	}

	return s.write(ctx, existing, payload)
}

// write is the shared create/update path. The grade point is derived from
// the supplied marks here, at write time, and stored; it is the only place
// the banding function runs. current is the stored record on updates (the
// zero value on create); its ID and CreatedAt carry over so a save does
// not wipe the original timestamp.
func (s *gradeService) write(ctx context.Context, current models.GradeRecord, payload dto.GradeEntryRequest) (dto.GradeRecordResponse, error) {
	id := current.ID

	tracer := otel.Tracer("github.com/acadia-edu/acadia-go-api/internal/service/grade")
	ctx, span := tracer.Start(ctx, "grade.write")
	span.SetAttributes(
		attribute.Int64("grade.record_id", int64(id)),
		attribute.String("grade.student_id", payload.StudentID),
		attribute.Float64("grade.marks", payload.Marks),
	)
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.GradeRecordResponse{}, err
	}

	assessment := models.AssessmentType(payload.AssessmentType)
	if !assessment.Valid() {
		span.SetStatus(codes.Error, "invalid_assessment_type")
		return dto.GradeRecordResponse{}, ErrInvalidAssessmentType
	}

	record := models.GradeRecord{
		ID:             id,
		StudentID:      payload.StudentID,
		AssessmentType: assessment,
		Marks:          payload.Marks,
		GradePoint:     GradePointOf(payload.Marks),
		CreatedAt:      current.CreatedAt,
	}

	var err error
	if id == 0 {
		err = s.repo.Create(ctx, &record)
	} else {
		err = s.repo.Update(ctx, &record)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist_failed")
		return dto.GradeRecordResponse{}, err
	}

	s.logger.Info().
		Uint("id", record.ID).
		Str("student_id", record.StudentID).
		Float64("grade_point", record.GradePoint).
		Msg("grade recorded")

	return dto.NewGradeRecordResponse(record), nil
}

func (s *gradeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGradeNotFound
		}

		return err
	}

	return s.repo.Delete(ctx, id)
}

// GPASummary refetches both collections and folds the grade snapshot into
// per-student mean grade points, keeping stored grade points as-is.
func (s *gradeService) GPASummary(ctx context.Context) ([]dto.GPASummaryRow, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	return SummarizeGPA(records, studentNameIndex(students)), nil
}
