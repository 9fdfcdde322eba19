package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/models"
)

type gradeRepoStub struct {
	records []models.GradeRecord
	nextID  uint
}

func (r *gradeRepoStub) List(ctx context.Context) ([]models.GradeRecord, error) {
	out := make([]models.GradeRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *gradeRepoStub) GetByID(ctx context.Context, id uint) (models.GradeRecord, error) {
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return models.GradeRecord{}, gorm.ErrRecordNotFound
}

func (r *gradeRepoStub) Create(ctx context.Context, record *models.GradeRecord) error {
	r.nextID++
	record.ID = r.nextID
	r.records = append(r.records, *record)
	return nil
}

func (r *gradeRepoStub) Update(ctx context.Context, record *models.GradeRecord) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *gradeRepoStub) Delete(ctx context.Context, id uint) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *gradeRepoStub) Count(ctx context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

func newGradeServiceForTest(repo *gradeRepoStub, students *studentRepoStub) GradeService {
	return NewGradeService(repo, students, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
}

func TestGradeServiceCreateDerivesGradePoint(t *testing.T) {
	repo := &gradeRepoStub{}
	svc := newGradeServiceForTest(repo, &studentRepoStub{})

	created, err := svc.Create(context.Background(), dto.GradeEntryRequest{
		StudentID:      "S-1",
		AssessmentType: string(models.AssessmentMidterm),
		Marks:          82,
	})
	require.NoError(t, err)
	require.Equal(t, 4.00, created.GradePoint)
	require.Equal(t, 4.00, repo.records[0].GradePoint)
}

func TestGradeServiceUpdateRebandsGradePoint(t *testing.T) {
	repo := &gradeRepoStub{}
	svc := newGradeServiceForTest(repo, &studentRepoStub{})

	created, err := svc.Create(context.Background(), dto.GradeEntryRequest{
		StudentID:      "S-1",
		AssessmentType: string(models.AssessmentFinal),
		Marks:          82,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, dto.GradeEntryRequest{
		StudentID:      "S-1",
		AssessmentType: string(models.AssessmentFinal),
		Marks:          58,
	})
	require.NoError(t, err)
	require.Equal(t, 2.75, updated.GradePoint)
}

func TestGradeServiceUpdatePreservesCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	repo := &gradeRepoStub{
		records: []models.GradeRecord{{
			ID:             1,
			StudentID:      "S-1",
			AssessmentType: models.AssessmentMidterm,
			Marks:          82,
			GradePoint:     4.00,
			CreatedAt:      createdAt,
		}},
		nextID: 1,
	}
	svc := newGradeServiceForTest(repo, &studentRepoStub{})

	updated, err := svc.Update(context.Background(), 1, dto.GradeEntryRequest{
		StudentID:      "S-1",
		AssessmentType: string(models.AssessmentMidterm),
		Marks:          58,
	})
	require.NoError(t, err)
	require.Equal(t, createdAt, updated.CreatedAt)
	require.Equal(t, createdAt, repo.records[0].CreatedAt)
}

func TestGradeServiceRejectsUnknownAssessmentType(t *testing.T) {
	svc := newGradeServiceForTest(&gradeRepoStub{}, &studentRepoStub{})

	_, err := svc.Create(context.Background(), dto.GradeEntryRequest{
		StudentID:      "S-1",
		AssessmentType: "Quiz",
		Marks:          50,
	})
	require.ErrorIs(t, err, ErrInvalidAssessmentType)
}

func TestGradeServiceRejectsMarksOutOfRange(t *testing.T) {
	svc := newGradeServiceForTest(&gradeRepoStub{}, &studentRepoStub{})

	_, err := svc.Create(context.Background(), dto.GradeEntryRequest{
		StudentID:      "S-1",
		AssessmentType: string(models.AssessmentViva),
		Marks:          101,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestGradeServiceGPASummaryUsesStoredSnapshots(t *testing.T) {
	// Records seeded with grade points that diverge from current banding
	// must be averaged as stored.
	repo := &gradeRepoStub{
		records: []models.GradeRecord{
			{ID: 1, StudentID: "S-1", AssessmentType: models.AssessmentMidterm, Marks: 90, GradePoint: 3.00},
			{ID: 2, StudentID: "S-1", AssessmentType: models.AssessmentFinal, Marks: 40, GradePoint: 4.00},
		},
		nextID: 2,
	}
	students := &studentRepoStub{students: []models.Student{
		{ID: 1, StudentID: "S-1", Name: "Ayesha Rahman"},
	}}
	svc := newGradeServiceForTest(repo, students)

	rows, err := svc.GPASummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ayesha Rahman", rows[0].Name)
	require.Equal(t, 3.50, rows[0].OverallGPA)
}

func TestGradeServiceDeleteMissing(t *testing.T) {
	svc := newGradeServiceForTest(&gradeRepoStub{}, &studentRepoStub{})

	require.ErrorIs(t, svc.Delete(context.Background(), 5), ErrGradeNotFound)
}
