package mocks

import (
	"context"

	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// MockReportUsecase is a mock implementation of the IReportUseCase interface
type MockReportUsecase struct {
	// Errors returned verbatim when set
	ReportErr error

	// Return values
	MockReportID string
}

// Ensure MockReportUsecase implements the correct interface for NewReportHandler
var _ usecasecontract.IReportUseCase = (*MockReportUsecase)(nil)

func NewMockReportUsecase() *MockReportUsecase {
	return &MockReportUsecase{
		MockReportID: "mock-report-id",
	}
}

func (m *MockReportUsecase) ReportLesson(ctx context.Context, lessonID, reporterUID, reporterEmail, reason string) (string, error) {
	if m.ReportErr != nil {
		return "", m.ReportErr
	}
	return m.MockReportID, nil
}
