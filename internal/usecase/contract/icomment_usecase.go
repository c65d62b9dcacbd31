package contract

import (
	"context"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

type ICommentUseCase interface {
	// GetLessonComments lists a lesson's comments, newest first.
	GetLessonComments(ctx context.Context, lessonID string) ([]*entity.Comment, error)
	// PostComment stores a comment with the caller's profile snapshot.
	PostComment(ctx context.Context, lessonID, callerUID, callerEmail, content string) (*entity.Comment, error)
}
