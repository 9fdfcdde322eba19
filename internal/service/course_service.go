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

// ErrCourseNotFound indicates the course was not located.
var ErrCourseNotFound = errors.New("course not found")

// ErrCourseCodeTaken indicates the course code is already in use.
var ErrCourseCodeTaken = errors.New("course code already in use")

// CourseService manages the course catalog.
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Get(ctx context.Context, id uint) (dto.CourseResponse, error)
	Create(ctx context.Context, payload dto.CourseCreateRequest) (dto.CourseResponse, error)
	Update(ctx context.Context, id uint, payload dto.CourseUpdateRequest) (dto.CourseResponse, error)
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	repo      repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo repository.CourseRepository, validator *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResponseSlice(courses), nil
}

func (s *courseService) Get(ctx context.Context, id uint) (dto.CourseResponse, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}

		return dto.CourseResponse{}, err
	}

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Create(ctx context.Context, payload dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	if err := s.ensureCourseCodeFree(ctx, payload.CourseCode, 0); err != nil {
		return dto.CourseResponse{}, err
	}

	course := models.Course{
		CourseCode:    payload.CourseCode,
		CourseName:    payload.CourseName,
		Program:       payload.Program,
		Credits:       payload.Credits,
		Prerequisites: payload.Prerequisites,
	}

	if err := s.repo.Create(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.logger.Info().Uint("id", course.ID).Str("course_code", course.CourseCode).Msg("course added")

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Update(ctx context.Context, id uint, payload dto.CourseUpdateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}

		return dto.CourseResponse{}, err
	}

	if payload.CourseCode != nil && *payload.CourseCode != course.CourseCode {
		if err := s.ensureCourseCodeFree(ctx, *payload.CourseCode, id); err != nil {
			return dto.CourseResponse{}, err
		}
		course.CourseCode = *payload.CourseCode
	}
	if payload.CourseName != nil {
		course.CourseName = *payload.CourseName
	}
	if payload.Program != nil {
		course.Program = *payload.Program
	}
	if payload.Credits != nil {
		course.Credits = *payload.Credits
	}
	if payload.Prerequisites != nil {
		course.Prerequisites = *payload.Prerequisites
	}

	if err := s.repo.Update(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}

		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *courseService) ensureCourseCodeFree(ctx context.Context, courseCode string, selfID uint) error {
	existing, err := s.repo.GetByCourseCode(ctx, courseCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return err
	}
	if existing.ID == selfID {
		return nil
	}

	return ErrCourseCodeTaken
}
