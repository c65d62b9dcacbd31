package contract

import (
	"context"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

type IUserRepository interface {
	// GetUserByUID retrieves a user by the identity provider uid.
	GetUserByUID(ctx context.Context, uid string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers retrieves all user documents.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// UpsertProfile sets profile fields on the user document, creating it if absent.
	UpsertProfile(ctx context.Context, uid string, updates map[string]interface{}) error
	// IncrementTotalLessons adjusts the derived authored-lesson counter by delta,
	// creating the document on positive delta if absent.
	IncrementTotalLessons(ctx context.Context, uid string, delta int) error
	// ToggleFavorite adds (add=true) or removes the lesson id from the user's
	// favorites set together with the savedLessons counter, upserting the user
	// document if needed. It reports whether the document actually changed.
	ToggleFavorite(ctx context.Context, uid, lessonID string, add bool) (bool, error)
	// SetPremium marks the user premium. Re-applying to an already-premium user
	// is a no-op; the bool reports whether the flag actually flipped.
	SetPremium(ctx context.Context, uid string) (bool, error)
	// RemoveFavoriteFromAll pulls the lesson id out of every user's favorites
	// set, decrementing their savedLessons counters.
	RemoveFavoriteFromAll(ctx context.Context, lessonID string) error
}
