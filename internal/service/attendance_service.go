package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/models"
	"github.com/acadia-edu/acadia-go-api/internal/repository"
)

// ErrAttendanceNotFound indicates the attendance record was not located.
var ErrAttendanceNotFound = errors.New("attendance record not found")

// ErrInvalidAttendanceStatus indicates the status is neither Present nor Absent.
var ErrInvalidAttendanceStatus = errors.New("attendance status must be Present or Absent")

// AttendanceService manages attendance records and their per-student summary.
type AttendanceService interface {
	List(ctx context.Context) ([]dto.AttendanceRecordResponse, error)
	Mark(ctx context.Context, payload dto.AttendanceMarkRequest) (dto.AttendanceRecordResponse, error)
	Update(ctx context.Context, id uint, payload dto.AttendanceMarkRequest) (dto.AttendanceRecordResponse, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context) ([]dto.AttendanceSummaryRow, error)
}

type attendanceService struct {
	repo      repository.AttendanceRepository
	students  repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo repository.AttendanceRepository, students repository.StudentRepository, validator *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		repo:      repo,
		students:  students,
		validator: validator,
		logger:    logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) List(ctx context.Context) ([]dto.AttendanceRecordResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewAttendanceRecordResponseSlice(records), nil
}

func (s *attendanceService) Mark(ctx context.Context, payload dto.AttendanceMarkRequest) (dto.AttendanceRecordResponse, error) {
	record, err := s.buildRecord(payload)
	if err != nil {
		return dto.AttendanceRecordResponse{}, err
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return dto.AttendanceRecordResponse{}, err
	}

	s.logger.Info().
		Uint("id", record.ID).
		Str("student_id", record.StudentID).
		Str("date", record.Date).
		Msg("attendance marked")

	return dto.NewAttendanceRecordResponse(record), nil
}

func (s *attendanceService) Update(ctx context.Context, id uint, payload dto.AttendanceMarkRequest) (dto.AttendanceRecordResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AttendanceRecordResponse{}, ErrAttendanceNotFound
		}

		return dto.AttendanceRecordResponse{}, err
	}

	record, err := s.buildRecord(payload)
	if err != nil {
		return dto.AttendanceRecordResponse{}, err
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, &record); err != nil {
		return dto.AttendanceRecordResponse{}, err
	}

	return dto.NewAttendanceRecordResponse(record), nil
}

func (s *attendanceService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}

		return err
	}

	return s.repo.Delete(ctx, id)
}

// Summary refetches both collections and folds the attendance snapshot into
// per-student rows. Records referencing unknown students are kept and shown
// under their raw ID.
func (s *attendanceService) Summary(ctx context.Context) ([]dto.AttendanceSummaryRow, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	return SummarizeAttendance(records, studentNameIndex(students)), nil
}

func (s *attendanceService) buildRecord(payload dto.AttendanceMarkRequest) (models.AttendanceRecord, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.AttendanceRecord{}, err
	}

	status := models.AttendanceStatus(payload.Status)
	if !status.Valid() {
		return models.AttendanceRecord{}, ErrInvalidAttendanceStatus
	}

	return models.AttendanceRecord{
		StudentID: payload.StudentID,
		Status:    status,
		Date:      payload.Date,
	}, nil
}

func studentNameIndex(students []models.Student) map[string]string {
	names := make(map[string]string, len(students))
	for _, student := range students {
		names[student.StudentID] = student.Name
	}

	return names
}
