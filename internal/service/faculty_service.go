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

// ErrFacultyNotFound indicates the faculty member was not located.
var ErrFacultyNotFound = errors.New("faculty member not found")

// ErrFacultyIDTaken indicates the faculty ID is already in use.
var ErrFacultyIDTaken = errors.New("faculty id already in use")

// FacultyService manages the faculty register.
type FacultyService interface {
	List(ctx context.Context) ([]dto.FacultyResponse, error)
	Get(ctx context.Context, id uint) (dto.FacultyResponse, error)
	Create(ctx context.Context, payload dto.FacultyCreateRequest) (dto.FacultyResponse, error)
	Update(ctx context.Context, id uint, payload dto.FacultyUpdateRequest) (dto.FacultyResponse, error)
	Delete(ctx context.Context, id uint) error
}

type facultyService struct {
	repo      repository.FacultyRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewFacultyService constructs the faculty service.
func NewFacultyService(repo repository.FacultyRepository, validator *validator.Validate, logger zerolog.Logger) FacultyService {
	return &facultyService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "faculty_service").Logger(),
	}
}

func (s *facultyService) List(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculty, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewFacultyResponseSlice(faculty), nil
}

func (s *facultyService) Get(ctx context.Context, id uint) (dto.FacultyResponse, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FacultyResponse{}, ErrFacultyNotFound
		}

		return dto.FacultyResponse{}, err
	}

	return dto.NewFacultyResponse(member), nil
}

func (s *facultyService) Create(ctx context.Context, payload dto.FacultyCreateRequest) (dto.FacultyResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FacultyResponse{}, err
	}

	if err := s.ensureFacultyIDFree(ctx, payload.FacultyID, 0); err != nil {
		return dto.FacultyResponse{}, err
	}

	member := models.Faculty{
		FacultyID:   payload.FacultyID,
		Name:        payload.Name,
		Department:  payload.Department,
		Rank:        payload.Rank,
		ContactInfo: payload.ContactInfo,
	}

	if err := s.repo.Create(ctx, &member); err != nil {
		return dto.FacultyResponse{}, err
	}

	s.logger.Info().Uint("id", member.ID).Str("faculty_id", member.FacultyID).Msg("faculty member registered")

	return dto.NewFacultyResponse(member), nil
}

func (s *facultyService) Update(ctx context.Context, id uint, payload dto.FacultyUpdateRequest) (dto.FacultyResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FacultyResponse{}, err
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FacultyResponse{}, ErrFacultyNotFound
		}

		return dto.FacultyResponse{}, err
	}

	if payload.FacultyID != nil && *payload.FacultyID != member.FacultyID {
		if err := s.ensureFacultyIDFree(ctx, *payload.FacultyID, id); err != nil {
			return dto.FacultyResponse{}, err
		}
		member.FacultyID = *payload.FacultyID
	}
	if payload.Name != nil {
		member.Name = *payload.Name
	}
	if payload.Department != nil {
		member.Department = *payload.Department
	}
	if payload.Rank != nil {
		member.Rank = *payload.Rank
	}
	if payload.ContactInfo != nil {
		member.ContactInfo = *payload.ContactInfo
	}

	if err := s.repo.Update(ctx, &member); err != nil {
		return dto.FacultyResponse{}, err
	}

	return dto.NewFacultyResponse(member), nil
}

func (s *facultyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultyNotFound
		}

		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *facultyService) ensureFacultyIDFree(ctx context.Context, facultyID string, selfID uint) error {
	existing, err := s.repo.GetByFacultyID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return err
	}
	if existing.ID == selfID {
		return nil
	}

	return ErrFacultyIDTaken
}
