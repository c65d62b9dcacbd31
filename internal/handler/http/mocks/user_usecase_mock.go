package mocks

import (
	"context"
	"errors"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailListUsers     bool
	ShouldFailGetMe         bool
	ShouldFailUpdateProfile bool
	ShouldFailRegister      bool

	// Errors returned verbatim when set
	ProfileErr error

	// Return values
	MockUser    entity.User
	MockSummary usecasecontract.UserSummary
	MockProfile usecasecontract.PublicProfile
}

// Ensure MockUserUsecase implements the correct interface for NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			UID:            "mock-user-id",
			Email:          "test@example.com",
			DisplayName:    "Test User",
			FavoritesArray: []string{},
		},
		MockSummary: usecasecontract.UserSummary{TotalLessons: 2, SavedLessons: 1},
		MockProfile: usecasecontract.PublicProfile{
			UID:          "mock-user-id",
			DisplayName:  "Test User",
			TotalLessons: 2,
			SavedLessons: 1,
		},
	}
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailListUsers {
		return nil, errors.New("listing users failed")
	}
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) GetMe(ctx context.Context, callerUID string) (*usecasecontract.UserSummary, error) {
	if m.ShouldFailGetMe {
		return nil, errors.New("summary lookup failed")
	}
	return &m.MockSummary, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, callerUID, displayName, photoURL string) error {
	if m.ShouldFailUpdateProfile {
		return errors.New("profile update failed")
	}
	return nil
}

func (m *MockUserUsecase) GetPublicProfile(ctx context.Context, uid string) (*usecasecontract.PublicProfile, error) {
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	return &m.MockProfile, nil
}

func (m *MockUserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RegisterUser(ctx context.Context, user *entity.User) error {
	if m.ShouldFailRegister {
		return errors.New("registration failed")
	}
	return nil
}
