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

// ErrStudentNotFound indicates the student was not located.
var ErrStudentNotFound = errors.New("student not found")

// ErrStudentIDTaken indicates the human-assigned student ID is already in use.
var ErrStudentIDTaken = errors.New("student id already in use")

// StudentService manages the student register.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id uint) (dto.StudentResponse, error)
	Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error)
	Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validator *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewStudentResponseSlice(students), nil
}

func (s *studentService) Get(ctx context.Context, id uint) (dto.StudentResponse, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}

		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	if err := s.ensureStudentIDFree(ctx, payload.StudentID, 0); err != nil {
		return dto.StudentResponse{}, err
	}

	student := models.Student{
		StudentID: payload.StudentID,
		Name:      payload.Name,
		Major:     payload.Major,
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Uint("id", student.ID).Str("student_id", student.StudentID).Msg("student registered")

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}

		return dto.StudentResponse{}, err
	}

	if payload.StudentID != nil && *payload.StudentID != student.StudentID {
		if err := s.ensureStudentIDFree(ctx, *payload.StudentID, id); err != nil {
			return dto.StudentResponse{}, err
		}
		student.StudentID = *payload.StudentID
	}
	if payload.Name != nil {
		student.Name = *payload.Name
	}
	if payload.Major != nil {
		student.Major = *payload.Major
	}

	if err := s.repo.Update(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}

		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *studentService) ensureStudentIDFree(ctx context.Context, studentID string, selfID uint) error {
	existing, err := s.repo.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return err
	}
	if existing.ID == selfID {
		return nil
	}

	return ErrStudentIDTaken
}
