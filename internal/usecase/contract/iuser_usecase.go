package contract

import (
	"context"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

// UserSummary is the private dashboard summary for the caller.
type UserSummary struct {
	IsPremium    bool `json:"isPremium"`
	TotalLessons int  `json:"totalLessons"`
	SavedLessons int  `json:"savedLessons"`
}

// PublicProfile is the projection safe to expose on profile pages. Email is
// intentionally omitted.
type PublicProfile struct {
	UID          string `json:"uid"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoURL"`
	TotalLessons int    `json:"totalLessons"`
	SavedLessons int    `json:"savedLessons"`
	IsPremium    bool   `json:"isPremium"`
}

type IUserUseCase interface {
	// ListUsers returns all user documents.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// GetMe returns the caller's dashboard summary.
	GetMe(ctx context.Context, callerUID string) (*UserSummary, error)
	// UpdateProfile updates display name / photo and syncs the denormalized
	// author snapshot on authored lessons.
	UpdateProfile(ctx context.Context, callerUID, displayName, photoURL string) error
	// GetPublicProfile returns the public projection for a uid.
	GetPublicProfile(ctx context.Context, uid string) (*PublicProfile, error)
	// GetUserByEmail looks a user up by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// RegisterUser stores a user document on explicit registration.
	RegisterUser(ctx context.Context, user *entity.User) error
}
