package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/repository"
)

const dashboardCacheKey = "dashboard:counts:v1"

// DashboardService produces the headline counts for the landing view.
type DashboardService interface {
	GetDashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	students   repository.StudentRepository
	faculty    repository.FacultyRepository
	courses    repository.CourseRepository
	attendance repository.AttendanceRepository
	grades     repository.GradeRepository
	events     repository.CalendarEventRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	window     time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

// NewDashboardService builds the dashboard aggregator.
func NewDashboardService(
	students repository.StudentRepository,
	faculty repository.FacultyRepository,
	courses repository.CourseRepository,
	attendance repository.AttendanceRepository,
	grades repository.GradeRepository,
	events repository.CalendarEventRepository,
	cache *redis.Client,
	ttl time.Duration,
	window time.Duration,
	logger zerolog.Logger,
) DashboardService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if window <= 0 {
		window = 30 * 24 * time.Hour
	}
	return &dashboardService{
		students:   students,
		faculty:    faculty,
		courses:    courses,
		attendance: attendance,
		grades:     grades,
		events:     events,
		cache:      cache,
		cacheTTL:   ttl,
		window:     window,
		logger:     logger.With().Str("component", "dashboard_service").Logger(),
		now:        time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (dto.DashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	response, err := s.buildResponse(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) buildResponse(ctx context.Context) (dto.DashboardResponse, error) {
	var response dto.DashboardResponse
	var err error

	if response.Students, err = s.students.Count(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.Faculty, err = s.faculty.Count(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.Courses, err = s.courses.Count(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.AttendanceRecords, err = s.attendance.Count(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.GradesEntered, err = s.grades.Count(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	response.UpcomingEvents = CountUpcoming(events, s.now(), s.window)

	return response, nil
}
