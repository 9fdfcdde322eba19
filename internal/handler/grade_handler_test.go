package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/handler"
	"github.com/acadia-edu/acadia-go-api/internal/service"
)

type stubGradeService struct {
	rows []dto.GPASummaryRow
	err  error
}

func (s stubGradeService) List(context.Context) ([]dto.GradeRecordResponse, error) {
	return nil, s.err
}

func (s stubGradeService) Create(context.Context, dto.GradeEntryRequest) (dto.GradeRecordResponse, error) {
	return dto.GradeRecordResponse{}, s.err
}

func (s stubGradeService) Update(context.Context, uint, dto.GradeEntryRequest) (dto.GradeRecordResponse, error) {
	return dto.GradeRecordResponse{}, s.err
}

func (s stubGradeService) Delete(context.Context, uint) error {
	return s.err
}

func (s stubGradeService) GPASummary(context.Context) ([]dto.GPASummaryRow, error) {
	return s.rows, s.err
}

func newGradeTestApp(svc service.GradeService) *fiber.App {
	app := fiber.New()
	handler.NewGradeHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/grades"))
	return app
}

func TestGradeHandlerGPASummary(t *testing.T) {
	app := newGradeTestApp(stubGradeService{rows: []dto.GPASummaryRow{
		{StudentID: "S-1", Name: "Ayesha Rahman", OverallGPA: 3.50},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/grades/gpa-summary", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)
	rows, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)
}

func TestGradeHandlerInvalidAssessmentType(t *testing.T) {
	app := newGradeTestApp(stubGradeService{err: service.ErrInvalidAssessmentType})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/grades",
		strings.NewReader(`{"student_id":"S-1","assessment_type":"Quiz","marks":50}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGradeHandlerDeleteMissing(t *testing.T) {
	app := newGradeTestApp(stubGradeService{err: service.ErrGradeNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/grades/9", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
