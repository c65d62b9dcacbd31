package contract

import (
	"context"
)

type IReportUseCase interface {
	// ReportLesson files an abuse report against a lesson and returns the
	// report id. The reason must be at least five characters.
	ReportLesson(ctx context.Context, lessonID, reporterUID, reporterEmail, reason string) (string, error)
}
