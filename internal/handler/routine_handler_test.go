package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/handler"
	"github.com/acadia-edu/acadia-go-api/internal/models"
	"github.com/acadia-edu/acadia-go-api/internal/repository"
	"github.com/acadia-edu/acadia-go-api/internal/service"
	"github.com/acadia-edu/acadia-go-api/internal/utils"
)

func newRoutineTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:routine_handler?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.RoutineEntry{}))
	require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.RoutineEntry{}).Error)

	svc := service.NewRoutineService(
		repository.NewRoutineRepository(db),
		validator.New(validator.WithRequiredStructEnabled()),
		zerolog.Nop(),
	)

	app := fiber.New()
	handler.NewRoutineHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/routine"))

	return app
}

func postRoutineEntry(t *testing.T, app *fiber.App, payload map[string]string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/routine", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) utils.APIResponse {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(raw, &envelope))

	return envelope
}

func TestRoutineHandlerCreateAndList(t *testing.T) {
	app := newRoutineTestApp(t)

	resp := postRoutineEntry(t, app, map[string]string{
		"course_code": "CSE101",
		"time_slot":   string(models.TimeSlotFirst),
		"weekday":     string(models.WeekdaySunday),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routine", nil)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	listEnvelope := decodeEnvelope(t, listResp)
	entries, ok := listEnvelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)
}

func TestRoutineHandlerConflictReturns409(t *testing.T) {
	app := newRoutineTestApp(t)

	resp := postRoutineEntry(t, app, map[string]string{
		"course_code": "CSE101",
		"time_slot":   string(models.TimeSlotSecond),
		"weekday":     string(models.WeekdayMonday),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postRoutineEntry(t, app, map[string]string{
		"course_code": "MAT110",
		"time_slot":   string(models.TimeSlotSecond),
		"weekday":     string(models.WeekdayMonday),
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.False(t, envelope.Success)
	require.Contains(t, envelope.Message, "Monday")
}

func TestRoutineHandlerRejectsUnknownWeekday(t *testing.T) {
	app := newRoutineTestApp(t)

	resp := postRoutineEntry(t, app, map[string]string{
		"course_code": "CSE101",
		"time_slot":   string(models.TimeSlotFirst),
		"weekday":     "Saturday",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoutineHandlerMissingEntry(t *testing.T) {
	app := newRoutineTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/routine/404", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutineHandlerBadIDParam(t *testing.T) {
	app := newRoutineTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routine/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
