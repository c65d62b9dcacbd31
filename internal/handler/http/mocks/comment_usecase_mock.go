package mocks

import (
	"context"
	"errors"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// MockCommentUsecase is a mock implementation of the ICommentUseCase interface
type MockCommentUsecase struct {
	// Control mock behavior
	ShouldFailGet bool

	// Errors returned verbatim when set
	PostErr error

	// Return values
	MockComment entity.Comment
}

// Ensure MockCommentUsecase implements the correct interface for NewCommentHandler
var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	return &MockCommentUsecase{
		MockComment: entity.Comment{
			ID:       "mock-comment-id",
			LessonID: "mock-lesson-id",
			Content:  "Nice lesson!",
			Author:   entity.CommentAuthor{UID: "mock-user-id", Name: "Test User"},
		},
	}
}

func (m *MockCommentUsecase) GetLessonComments(ctx context.Context, lessonID string) ([]*entity.Comment, error) {
	if m.ShouldFailGet {
		return nil, errors.New("comment lookup failed")
	}
	return []*entity.Comment{&m.MockComment}, nil
}

func (m *MockCommentUsecase) PostComment(ctx context.Context, lessonID, callerUID, callerEmail, content string) (*entity.Comment, error) {
	if m.PostErr != nil {
		return nil, m.PostErr
	}
	return &m.MockComment, nil
}
