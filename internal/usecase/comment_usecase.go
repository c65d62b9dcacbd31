package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// CommentUsecase implements the ICommentUseCase interface.
type CommentUsecase struct {
	commentRepo contract.ICommentRepository
	lessonRepo  contract.ILessonRepository
	userRepo    contract.IUserRepository
	logger      usecasecontract.IAppLogger
}

// NewCommentUsecase creates and returns a new CommentUsecase instance.
func NewCommentUsecase(commentRepo contract.ICommentRepository, lessonRepo contract.ILessonRepository, userRepo contract.IUserRepository, logger usecasecontract.IAppLogger) *CommentUsecase {
	return &CommentUsecase{
		commentRepo: commentRepo,
		lessonRepo:  lessonRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetLessonComments retrieves all comments for a lesson, newest first.
func (u *CommentUsecase) GetLessonComments(ctx context.Context, lessonID string) ([]*entity.Comment, error) {
	comments, err := u.commentRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve comments: %w", err)
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}

// PostComment appends a comment to an existing lesson. The author snapshot is
// taken from the caller's stored profile, falling back to the credential email
// when no display name exists.
func (u *CommentUsecase) PostComment(ctx context.Context, lessonID, callerUID, callerEmail, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	if _, err := u.lessonRepo.GetLessonByID(ctx, lessonID); err != nil {
		return nil, err
	}

	author := entity.CommentAuthor{UID: callerUID, Name: callerEmail}
	if user, err := u.userRepo.GetUserByUID(ctx, callerUID); err == nil {
		if user.DisplayName != "" {
			author.Name = user.DisplayName
		}
		author.ProfileImage = user.PhotoURL
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		u.logger.Warnf("comment author lookup for %s failed: %v", callerUID, err)
	}

	comment := &entity.Comment{
		LessonID: lessonID,
		Content:  content,
		Author:   author,
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to post comment: %w", err)
	}
	return comment, nil
}

var _ usecasecontract.ICommentUseCase = (*CommentUsecase)(nil)
