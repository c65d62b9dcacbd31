package mocks

import (
	"context"
	"errors"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// MockLessonUsecase is a mock implementation of the ILessonUseCase interface
type MockLessonUsecase struct {
	// Control mock behavior
	ShouldFailCreate   bool
	ShouldFailList     bool
	ShouldFailCount    bool
	ShouldFailActivity bool

	// Errors returned verbatim when set, so tests can exercise the sentinel
	// to HTTP status mapping.
	DetailErr error
	UpdateErr error
	DeleteErr error
	PageErr   error

	// Return values
	MockLessonID string
	MockLesson   entity.Lesson
	MockDetail   usecasecontract.LessonDetail
	MockPage     usecasecontract.LessonPage
	MockActivity []contract.ActivityBucket
}

// Ensure MockLessonUsecase implements the correct interface for NewLessonHandler
var _ usecasecontract.ILessonUseCase = (*MockLessonUsecase)(nil)

func NewMockLessonUsecase() *MockLessonUsecase {
	lesson := entity.Lesson{
		ID:    "mock-lesson-id",
		Title: "Test Lesson",
		Author: entity.LessonAuthor{
			UID:   "mock-user-id",
			Email: "test@example.com",
		},
		Content: "Lesson content",
		Metadata: entity.LessonMetadata{
			Privacy:     entity.PrivacyPublic,
			Visibility:  entity.VisibilityVisible,
			AccessLevel: entity.AccessLevelFree,
		},
		Stats: entity.LessonStats{LikesArray: []string{}},
	}
	return &MockLessonUsecase{
		MockLessonID: lesson.ID,
		MockLesson:   lesson,
		MockDetail:   usecasecontract.LessonDetail{Lesson: &lesson},
		MockPage: usecasecontract.LessonPage{
			Lessons:      []*entity.Lesson{&lesson},
			TotalLessons: 1,
			CurrentPage:  1,
			TotalPages:   1,
		},
	}
}

func (m *MockLessonUsecase) CreateLesson(ctx context.Context, callerUID, callerEmail string, lesson *entity.Lesson) (string, error) {
	if m.ShouldFailCreate {
		return "", errors.New("lesson creation failed")
	}
	return m.MockLessonID, nil
}

func (m *MockLessonUsecase) GetLessonDetail(ctx context.Context, lessonID, callerUID string) (*usecasecontract.LessonDetail, error) {
	if m.DetailErr != nil {
		return nil, m.DetailErr
	}
	return &m.MockDetail, nil
}

func (m *MockLessonUsecase) ListLessons(ctx context.Context, authorUID string) ([]*entity.Lesson, error) {
	if m.ShouldFailList {
		return nil, errors.New("listing failed")
	}
	return []*entity.Lesson{&m.MockLesson}, nil
}

func (m *MockLessonUsecase) ListMyLessons(ctx context.Context, callerUID string) ([]*entity.Lesson, error) {
	if m.ShouldFailList {
		return nil, errors.New("listing failed")
	}
	return []*entity.Lesson{&m.MockLesson}, nil
}

func (m *MockLessonUsecase) ListMyLessonsPage(ctx context.Context, callerUID string, page, limit int) (*usecasecontract.LessonPage, error) {
	if m.PageErr != nil {
		return nil, m.PageErr
	}
	return &m.MockPage, nil
}

func (m *MockLessonUsecase) CountMyLessons(ctx context.Context, callerUID string) (int64, error) {
	if m.ShouldFailCount {
		return 0, errors.New("count failed")
	}
	return m.MockPage.TotalLessons, nil
}

func (m *MockLessonUsecase) ListPublicLessons(ctx context.Context, page, limit int) (*usecasecontract.LessonPage, error) {
	if m.PageErr != nil {
		return nil, m.PageErr
	}
	return &m.MockPage, nil
}

func (m *MockLessonUsecase) GetSimilarLessons(ctx context.Context, lessonID, category, tone string) ([]*entity.Lesson, error) {
	if m.ShouldFailList {
		return nil, errors.New("similar lookup failed")
	}
	return []*entity.Lesson{&m.MockLesson}, nil
}

func (m *MockLessonUsecase) UpdateLesson(ctx context.Context, lessonID, callerUID string, updates map[string]interface{}) error {
	return m.UpdateErr
}

func (m *MockLessonUsecase) DeleteLesson(ctx context.Context, lessonID, callerUID string) error {
	return m.DeleteErr
}

func (m *MockLessonUsecase) UserActivity(ctx context.Context, callerUID string) ([]contract.ActivityBucket, error) {
	if m.ShouldFailActivity {
		return nil, errors.New("activity aggregation failed")
	}
	return m.MockActivity, nil
}
