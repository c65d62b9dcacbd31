package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

func newReportUsecaseForTest() (*ReportUsecase, *fakeReportRepo, *fakeLessonRepo) {
	reportRepo := &fakeReportRepo{}
	lessonRepo := newFakeLessonRepo()
	uc := NewReportUsecase(reportRepo, lessonRepo, testLogger{})
	return uc, reportRepo, lessonRepo
}

func TestReportLesson_ReasonTooShort(t *testing.T) {
	uc, _, lessonRepo := newReportUsecaseForTest()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	_, err := uc.ReportLesson(context.Background(), "l1", "caller", "c@example.com", "bad")
	assert.ErrorIs(t, err, ErrReasonTooShort)

	// Whitespace padding does not satisfy the minimum.
	_, err = uc.ReportLesson(context.Background(), "l1", "caller", "c@example.com", "  ab  ")
	assert.ErrorIs(t, err, ErrReasonTooShort)
}

func TestReportLesson_LessonMustExist(t *testing.T) {
	uc, _, _ := newReportUsecaseForTest()

	_, err := uc.ReportLesson(context.Background(), "missing", "caller", "c@example.com", "spam content")
	assert.ErrorIs(t, err, contract.ErrLessonNotFound)
}

func TestReportLesson_FilesPendingReport(t *testing.T) {
	uc, reportRepo, lessonRepo := newReportUsecaseForTest()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	id, err := uc.ReportLesson(context.Background(), "l1", "caller", "c@example.com", "plagiarized content")
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	assert.Len(t, reportRepo.reports, 1)
	report := reportRepo.reports[0]
	assert.Equal(t, entity.ReportStatusPending, report.Status)
	assert.Equal(t, "caller", report.ReporterUserID)
	assert.Equal(t, "c@example.com", report.ReportedUserEmail)
}
