package contract

import (
	"context"

	domaincontract "github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

// LessonDetail is the access-resolved lesson plus the engagement flags the
// client renders.
type LessonDetail struct {
	Lesson           *entity.Lesson
	IsAuthor         bool
	IsPremiumUser    bool
	UserHasLiked     bool
	UserHasFavorited bool
}

// LessonPage is one page of a paginated listing.
type LessonPage struct {
	Lessons      []*entity.Lesson
	TotalLessons int64
	CurrentPage  int
	TotalPages   int
}

type ILessonUseCase interface {
	// CreateLesson stores the lesson with the author overwritten from the
	// verified identity and bumps the author's lesson counter. Returns the new
	// lesson id.
	CreateLesson(ctx context.Context, callerUID, callerEmail string, lesson *entity.Lesson) (string, error)
	// GetLessonDetail resolves visibility for the caller and returns the lesson
	// with engagement flags.
	GetLessonDetail(ctx context.Context, lessonID, callerUID string) (*LessonDetail, error)
	// ListLessons lists public lessons, optionally narrowed to one author.
	ListLessons(ctx context.Context, authorUID string) ([]*entity.Lesson, error)
	// ListMyLessons lists everything the caller authored, newest first.
	ListMyLessons(ctx context.Context, callerUID string) ([]*entity.Lesson, error)
	// ListMyLessonsPage is the paginated variant of ListMyLessons.
	ListMyLessonsPage(ctx context.Context, callerUID string, page, limit int) (*LessonPage, error)
	// CountMyLessons counts the caller's authored lessons.
	CountMyLessons(ctx context.Context, callerUID string) (int64, error)
	// ListPublicLessons pages through the public listing.
	ListPublicLessons(ctx context.Context, page, limit int) (*LessonPage, error)
	// GetSimilarLessons returns up to six public lessons sharing the category
	// or tone; empty when neither is supplied.
	GetSimilarLessons(ctx context.Context, lessonID, category, tone string) ([]*entity.Lesson, error)
	// UpdateLesson applies an author-only partial update.
	UpdateLesson(ctx context.Context, lessonID, callerUID string, updates map[string]interface{}) error
	// DeleteLesson removes an authored lesson and unwinds its derived state.
	DeleteLesson(ctx context.Context, lessonID, callerUID string) error
	// UserActivity returns per-day creation counts for the trailing seven days.
	UserActivity(ctx context.Context, callerUID string) ([]domaincontract.ActivityBucket, error)
}
