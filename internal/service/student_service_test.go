package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/models"
)

func newStudentServiceForTest(repo *studentRepoStub) StudentService {
	return NewStudentService(repo, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
}

func TestStudentServiceCreate(t *testing.T) {
	repo := &studentRepoStub{}
	svc := newStudentServiceForTest(repo)

	created, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		StudentID: "S-1",
		Name:      "Ayesha Rahman",
		Major:     "CSE",
	})
	require.NoError(t, err)
	require.Equal(t, "S-1", created.StudentID)
	require.Len(t, repo.students, 1)
}

func TestStudentServiceCreateRejectsDuplicateStudentID(t *testing.T) {
	repo := &studentRepoStub{students: []models.Student{
		{ID: 1, StudentID: "S-1", Name: "Ayesha Rahman"},
	}}
	svc := newStudentServiceForTest(repo)

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		StudentID: "S-1",
		Name:      "Impostor",
	})
	require.ErrorIs(t, err, ErrStudentIDTaken)
	require.Len(t, repo.students, 1)
}

func TestStudentServiceCreateValidatesPayload(t *testing.T) {
	svc := newStudentServiceForTest(&studentRepoStub{})

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{StudentID: "S-1"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestStudentServiceUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := &studentRepoStub{students: []models.Student{
		{ID: 1, StudentID: "S-1", Name: "Ayesha Rahman", Major: "CSE"},
	}}
	svc := newStudentServiceForTest(repo)

	name := "Ayesha R."
	updated, err := svc.Update(context.Background(), 1, dto.StudentUpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Ayesha R.", updated.Name)
	require.Equal(t, "S-1", updated.StudentID)
	require.Equal(t, "CSE", updated.Major)
}

func TestStudentServiceUpdateMissing(t *testing.T) {
	svc := newStudentServiceForTest(&studentRepoStub{})

	name := "Nobody"
	_, err := svc.Update(context.Background(), 9, dto.StudentUpdateRequest{Name: &name})
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentServiceDeleteMissing(t *testing.T) {
	svc := newStudentServiceForTest(&studentRepoStub{})

	require.ErrorIs(t, svc.Delete(context.Background(), 3), ErrStudentNotFound)
}
