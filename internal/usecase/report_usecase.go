package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

const minReportReasonLength = 5

// ReportUsecase implements the IReportUseCase interface.
type ReportUsecase struct {
	reportRepo contract.IReportRepository
	lessonRepo contract.ILessonRepository
	logger     usecasecontract.IAppLogger
}

// NewReportUsecase creates and returns a new ReportUsecase instance.
func NewReportUsecase(reportRepo contract.IReportRepository, lessonRepo contract.ILessonRepository, logger usecasecontract.IAppLogger) *ReportUsecase {
	return &ReportUsecase{
		reportRepo: reportRepo,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// ReportLesson files a moderation report against an existing lesson and
// returns the stored report id.
func (u *ReportUsecase) ReportLesson(ctx context.Context, lessonID, reporterUID, reporterEmail, reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) < minReportReasonLength {
		return "", ErrReasonTooShort
	}

	if _, err := u.lessonRepo.GetLessonByID(ctx, lessonID); err != nil {
		return "", err
	}

	report := &entity.Report{
		LessonID:          lessonID,
		ReporterUserID:    reporterUID,
		ReportedUserEmail: reporterEmail,
		Reason:            reason,
		Status:            entity.ReportStatusPending,
	}
	if err := u.reportRepo.Create(ctx, report); err != nil {
		return "", fmt.Errorf("failed to file report: %w", err)
	}

	u.logger.Infof("lesson %s reported by %s (report %s)", lessonID, reporterUID, report.ID)
	return report.ID, nil
}

var _ usecasecontract.IReportUseCase = (*ReportUsecase)(nil)
