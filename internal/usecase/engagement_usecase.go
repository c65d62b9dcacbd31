package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

const (
	ActionLike       = "like"
	ActionUnlike     = "unlike"
	ActionFavorite   = "favorite"
	ActionUnfavorite = "unfavorite"
)

// EngagementUsecase implements the like/favorite toggle engine. Both toggles
// are idempotent: replays report Success=false and never move a counter.
type EngagementUsecase struct {
	lessonRepo  contract.ILessonRepository
	userRepo    contract.IUserRepository
	logger      usecasecontract.IAppLogger
	lessonCache contract.ILessonCache
}

// NewEngagementUsecase creates and returns a new EngagementUsecase instance.
func NewEngagementUsecase(lessonRepo contract.ILessonRepository, userRepo contract.IUserRepository, logger usecasecontract.IAppLogger) *EngagementUsecase {
	return &EngagementUsecase{
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// SetLessonCache wires the optional Redis-backed cache. Toggles that change
// state evict the affected lesson so detail reads never serve stale
// counters or membership flags.
func (u *EngagementUsecase) SetLessonCache(cache contract.ILessonCache) {
	u.lessonCache = cache
}

// ToggleLike adds or removes the caller from the lesson's like-member set.
// The set and the likes counter move in one atomic document mutation, so the
// counter never drifts from the set.
func (u *EngagementUsecase) ToggleLike(ctx context.Context, lessonID, callerUID, action string) (*usecasecontract.ToggleOutcome, error) {
	if action != ActionLike && action != ActionUnlike {
		return nil, ErrInvalidAction
	}

	if _, err := u.lessonRepo.GetLessonByID(ctx, lessonID); err != nil {
		return nil, err
	}

	add := action == ActionLike
	changed, err := u.lessonRepo.SetLikeMembership(ctx, lessonID, callerUID, add)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	if changed {
		u.invalidateLesson(ctx, lessonID)
	}

	message := "Lesson unliked"
	if add {
		message = "Lesson liked"
	}
	return &usecasecontract.ToggleOutcome{Success: changed, Message: message}, nil
}

// ToggleFavorite updates the caller's favorites set first, then mirrors the
// lesson's favorite counter. The user document is the source of truth; the
// mirror is best-effort and logged on failure rather than rolled back.
func (u *EngagementUsecase) ToggleFavorite(ctx context.Context, lessonID, callerUID, action string) (*usecasecontract.ToggleOutcome, error) {
	if action != ActionFavorite && action != ActionUnfavorite {
		return nil, ErrInvalidAction
	}

	if _, err := u.lessonRepo.GetLessonByID(ctx, lessonID); err != nil {
		return nil, err
	}

	add := action == ActionFavorite
	changed, err := u.userRepo.ToggleFavorite(ctx, callerUID, lessonID, add)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	if changed {
		delta := 1
		if !add {
			delta = -1
		}
		if err := u.lessonRepo.IncrementFavoriteCount(ctx, lessonID, delta); err != nil {
			u.logger.Errorf("favorite counter mirror on lesson %s failed: %v", lessonID, err)
		}
		u.invalidateLesson(ctx, lessonID)
	}

	message := "Lesson unfavorited"
	if add {
		message = "Lesson favorited"
	}
	return &usecasecontract.ToggleOutcome{Success: changed, Message: message}, nil
}

// ListFavorites resolves the caller's favorites set to lesson documents. Ids
// pointing at deleted lessons are silently skipped.
func (u *EngagementUsecase) ListFavorites(ctx context.Context, callerUID, category, tone string) ([]*entity.Lesson, error) {
	user, err := u.userRepo.GetUserByUID(ctx, callerUID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return []*entity.Lesson{}, nil
		}
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}
	if len(user.FavoritesArray) == 0 {
		return []*entity.Lesson{}, nil
	}

	lessons, err := u.lessonRepo.GetLessonsByIDs(ctx, user.FavoritesArray, category, tone)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve favorites: %w", err)
	}
	return lessons, nil
}

// CountFavorites returns the caller's saved-lessons count. A missing user
// document means zero favorites.
func (u *EngagementUsecase) CountFavorites(ctx context.Context, callerUID string) (int, error) {
	user, err := u.userRepo.GetUserByUID(ctx, callerUID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load caller: %w", err)
	}
	if user.SavedLessons == 0 && len(user.FavoritesArray) > 0 {
		return len(user.FavoritesArray), nil
	}
	return user.SavedLessons, nil
}

func (u *EngagementUsecase) invalidateLesson(ctx context.Context, lessonID string) {
	if u.lessonCache == nil {
		return
	}
	if err := u.lessonCache.InvalidateLessonByID(ctx, lessonID); err != nil {
		u.logger.Warnf("failed to invalidate cached lesson %s: %v", lessonID, err)
	}
	if err := u.lessonCache.InvalidateLessonLists(ctx); err != nil {
		u.logger.Warnf("failed to invalidate cached lesson lists: %v", err)
	}
}

var _ usecasecontract.IEngagementUseCase = (*EngagementUsecase)(nil)
