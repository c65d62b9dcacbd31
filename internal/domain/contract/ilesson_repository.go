package contract

import (
	"context"
	"time"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

// LessonFilterOptions narrows and paginates lesson listings. PublicOnly
// enforces both exclusion filters (privacy != Private, visibility != Hidden).
// Page/PageSize of zero mean "no pagination" (return everything matching).
type LessonFilterOptions struct {
	AuthorUID  *string
	PublicOnly bool
	Page       int
	PageSize   int
}

// ActivityBucket is one day of lesson-creation activity.
type ActivityBucket struct {
	Day     string `bson:"_id" json:"day"`
	Lessons int    `bson:"count" json:"lessons"`
}

type ILessonRepository interface {
	// CreateLesson inserts a new lesson document.
	CreateLesson(ctx context.Context, lesson *entity.Lesson) error
	// GetLessonByID retrieves a single lesson by its id.
	GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, error)
	// GetLessons retrieves lessons matching the filter, newest first, together
	// with the total match count.
	GetLessons(ctx context.Context, opts *LessonFilterOptions) ([]*entity.Lesson, int64, error)
	// GetLessonsByIDs retrieves lessons by id, optionally narrowed by category
	// and/or tone, newest first. Unknown ids are skipped.
	GetLessonsByIDs(ctx context.Context, ids []string, category, tone string) ([]*entity.Lesson, error)
	// GetSimilarLessons returns up to limit public lessons other than excludeID
	// whose category or tone matches.
	GetSimilarLessons(ctx context.Context, excludeID, category, tone string, limit int) ([]*entity.Lesson, error)
	// UpdateLesson applies a partial update to a lesson.
	UpdateLesson(ctx context.Context, lessonID string, updates map[string]interface{}) error
	// DeleteLesson removes a lesson document.
	DeleteLesson(ctx context.Context, lessonID string) error
	// CountByAuthor counts lessons authored by the given uid.
	CountByAuthor(ctx context.Context, uid string) (int64, error)
	// SetLikeMembership adds (add=true) or removes the uid from the lesson's
	// like-member set, moving the derived like counter in the same atomic
	// mutation. It reports whether the set actually changed.
	SetLikeMembership(ctx context.Context, lessonID, uid string, add bool) (bool, error)
	// IncrementFavoriteCount moves the lesson's derived favorite counter.
	IncrementFavoriteCount(ctx context.Context, lessonID string, delta int) error
	// ActivityByDay groups the author's lesson creations per day since the
	// given time, ascending by day.
	ActivityByDay(ctx context.Context, uid string, since time.Time) ([]ActivityBucket, error)
	// SyncAuthorSnapshot rewrites the denormalized author name/photo on all
	// lessons authored by uid.
	SyncAuthorSnapshot(ctx context.Context, uid, name, photoURL string) error
}
