package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

const anonymousDisplayName = "Anonymous User"

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	lessonRepo contract.ILessonRepository
	logger     usecasecontract.IAppLogger
}

// NewUserUsecase creates and returns a new UserUsecase instance.
func NewUserUsecase(userRepo contract.IUserRepository, lessonRepo contract.ILessonRepository, logger usecasecontract.IAppLogger) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// ListUsers returns all user documents.
func (u *UserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := u.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []*entity.User{}
	}
	return users, nil
}

// GetMe returns the caller's dashboard summary. A caller without a stored
// document gets the zero-value summary, not an error.
func (u *UserUsecase) GetMe(ctx context.Context, callerUID string) (*usecasecontract.UserSummary, error) {
	user, err := u.userRepo.GetUserByUID(ctx, callerUID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return &usecasecontract.UserSummary{}, nil
		}
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}
	return &usecasecontract.UserSummary{
		IsPremium:    user.IsPremium,
		TotalLessons: user.TotalLessons,
		SavedLessons: user.SavedLessons,
	}, nil
}

// UpdateProfile stores the new display name / photo and rewrites the
// denormalized author snapshot on every lesson the caller authored.
func (u *UserUsecase) UpdateProfile(ctx context.Context, callerUID, displayName, photoURL string) error {
	updates := map[string]interface{}{}
	if displayName != "" {
		updates["displayName"] = displayName
	}
	if photoURL != "" {
		updates["photoURL"] = photoURL
	}
	if len(updates) == 0 {
		return nil
	}

	if err := u.userRepo.UpsertProfile(ctx, callerUID, updates); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	// Re-read so the snapshot carries the merged state, not just this patch.
	user, err := u.userRepo.GetUserByUID(ctx, callerUID)
	if err != nil {
		return fmt.Errorf("profile updated but reload failed: %w", err)
	}
	if err := u.lessonRepo.SyncAuthorSnapshot(ctx, callerUID, user.DisplayName, user.PhotoURL); err != nil {
		u.logger.Errorf("author snapshot sync for %s failed: %v", callerUID, err)
	}
	return nil
}

// GetPublicProfile returns the public projection for a uid. Email never
// leaves this layer.
func (u *UserUsecase) GetPublicProfile(ctx context.Context, uid string) (*usecasecontract.PublicProfile, error) {
	user, err := u.userRepo.GetUserByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	displayName := user.DisplayName
	if displayName == "" {
		displayName = anonymousDisplayName
	}
	return &usecasecontract.PublicProfile{
		UID:          user.UID,
		DisplayName:  displayName,
		PhotoURL:     user.PhotoURL,
		TotalLessons: user.TotalLessons,
		SavedLessons: user.SavedLessons,
		IsPremium:    user.IsPremium,
	}, nil
}

// GetUserByEmail looks a user up by email.
func (u *UserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.userRepo.GetUserByEmail(ctx, email)
}

// RegisterUser stores a user document on explicit registration. An existing
// document for the uid is refreshed rather than duplicated.
func (u *UserUsecase) RegisterUser(ctx context.Context, user *entity.User) error {
	updates := map[string]interface{}{
		"email": user.Email,
	}
	if user.DisplayName != "" {
		updates["displayName"] = user.DisplayName
	}
	if user.PhotoURL != "" {
		updates["photoURL"] = user.PhotoURL
	}
	if err := u.userRepo.UpsertProfile(ctx, user.UID, updates); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)
