package mocks

import (
	"context"
	"errors"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// MockEngagementUsecase is a mock implementation of the IEngagementUseCase interface
type MockEngagementUsecase struct {
	// Control mock behavior
	ShouldFailList  bool
	ShouldFailCount bool

	// Errors returned verbatim when set
	ToggleErr error

	// Return values
	MockOutcome   usecasecontract.ToggleOutcome
	MockFavorites []*entity.Lesson
	MockCount     int

	// Recorded call arguments
	LastAction string
}

// Ensure MockEngagementUsecase implements the correct interface for NewEngagementHandler
var _ usecasecontract.IEngagementUseCase = (*MockEngagementUsecase)(nil)

func NewMockEngagementUsecase() *MockEngagementUsecase {
	return &MockEngagementUsecase{
		MockOutcome:   usecasecontract.ToggleOutcome{Success: true, Message: "Lesson liked"},
		MockFavorites: []*entity.Lesson{},
	}
}

func (m *MockEngagementUsecase) ToggleLike(ctx context.Context, lessonID, callerUID, action string) (*usecasecontract.ToggleOutcome, error) {
	m.LastAction = action
	if m.ToggleErr != nil {
		return nil, m.ToggleErr
	}
	return &m.MockOutcome, nil
}

func (m *MockEngagementUsecase) ToggleFavorite(ctx context.Context, lessonID, callerUID, action string) (*usecasecontract.ToggleOutcome, error) {
	m.LastAction = action
	if m.ToggleErr != nil {
		return nil, m.ToggleErr
	}
	return &m.MockOutcome, nil
}

func (m *MockEngagementUsecase) ListFavorites(ctx context.Context, callerUID, category, tone string) ([]*entity.Lesson, error) {
	if m.ShouldFailList {
		return nil, errors.New("favorites lookup failed")
	}
	return m.MockFavorites, nil
}

func (m *MockEngagementUsecase) CountFavorites(ctx context.Context, callerUID string) (int, error) {
	if m.ShouldFailCount {
		return 0, errors.New("favorites count failed")
	}
	return m.MockCount, nil
}
