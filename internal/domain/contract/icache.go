package contract

import (
	"context"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

// CachedLessonsPage is the cached payload for paginated public listings.
type CachedLessonsPage struct {
	Lessons []entity.Lesson `json:"lessons"`
	Total   int64           `json:"total"`
}

// ILessonCache defines caching operations for lessons.
type ILessonCache interface {
	// Detail (by lesson id)
	GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, bool, error)
	SetLessonByID(ctx context.Context, lessonID string, lesson *entity.Lesson) error
	InvalidateLessonByID(ctx context.Context, lessonID string) error

	// Public list pages (key built by usecase)
	GetLessonsPage(ctx context.Context, key string) (*CachedLessonsPage, bool, error)
	SetLessonsPage(ctx context.Context, key string, page *CachedLessonsPage) error
	InvalidateLessonLists(ctx context.Context) error
}
