package contract

import (
	"context"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

// ToggleOutcome reports whether a like/favorite toggle actually changed state.
// Success is false for idempotent no-ops (already liked, not favorited, ...).
type ToggleOutcome struct {
	Success bool
	Message string
}

type IEngagementUseCase interface {
	// ToggleLike applies a like/unlike action for the caller on the lesson.
	ToggleLike(ctx context.Context, lessonID, callerUID, action string) (*ToggleOutcome, error)
	// ToggleFavorite applies a favorite/unfavorite action, user document first,
	// then mirrors the lesson's favorite counter on actual change.
	ToggleFavorite(ctx context.Context, lessonID, callerUID, action string) (*ToggleOutcome, error)
	// ListFavorites resolves the caller's favorites set to lesson documents,
	// optionally filtered by category and/or tone.
	ListFavorites(ctx context.Context, callerUID, category, tone string) ([]*entity.Lesson, error)
	// CountFavorites returns the caller's saved-lessons count.
	CountFavorites(ctx context.Context, callerUID string) (int, error)
}
