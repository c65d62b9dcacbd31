package contract

import (
	"context"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

type ICommentRepository interface {
	// Create inserts a new comment document.
	Create(ctx context.Context, comment *entity.Comment) error
	// GetByLessonID retrieves all comments for a lesson, newest first.
	GetByLessonID(ctx context.Context, lessonID string) ([]*entity.Comment, error)
}
