package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

const similarLessonsLimit = 6

// LessonUsecase implements the access-control and visibility rules for
// lessons: who may open a detail, what is listable, and who may mutate.
type LessonUsecase struct {
	lessonRepo  contract.ILessonRepository
	userRepo    contract.IUserRepository
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	lessonCache contract.ILessonCache
}

// NewLessonUsecase creates and returns a new LessonUsecase instance.
func NewLessonUsecase(lessonRepo contract.ILessonRepository, userRepo contract.IUserRepository, uuidGen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *LessonUsecase {
	return &LessonUsecase{
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
		uuidGen:    uuidGen,
		logger:     logger,
	}
}

// SetLessonCache wires the optional Redis-backed cache.
func (u *LessonUsecase) SetLessonCache(cache contract.ILessonCache) {
	u.lessonCache = cache
}

// CreateLesson stores the lesson and bumps the author's derived lesson
// counter. The author identity always comes from the verified credential, not
// the request body.
func (u *LessonUsecase) CreateLesson(ctx context.Context, callerUID, callerEmail string, lesson *entity.Lesson) (string, error) {
	lesson.ID = u.uuidGen.NewUUID()
	lesson.Author.UID = callerUID
	lesson.Author.Email = callerEmail
	lesson.Metadata.CreatedDate = time.Now()

	if lesson.Metadata.Privacy == "" {
		lesson.Metadata.Privacy = entity.PrivacyPublic
	}
	if lesson.Metadata.Visibility == "" {
		lesson.Metadata.Visibility = entity.VisibilityVisible
	}
	if lesson.Metadata.AccessLevel == "" {
		lesson.Metadata.AccessLevel = entity.AccessLevelFree
	}

	// Fill the denormalized snapshot from the stored profile when available.
	if user, err := u.userRepo.GetUserByUID(ctx, callerUID); err == nil {
		if lesson.Author.Name == "" {
			lesson.Author.Name = user.DisplayName
		}
		if lesson.Author.ProfileImage == "" {
			lesson.Author.ProfileImage = user.PhotoURL
		}
	}

	if err := u.lessonRepo.CreateLesson(ctx, lesson); err != nil {
		return "", fmt.Errorf("failed to create lesson: %w", err)
	}

	if err := u.userRepo.IncrementTotalLessons(ctx, callerUID, 1); err != nil {
		return "", fmt.Errorf("lesson created but author counter update failed: %w", err)
	}

	u.invalidateLists(ctx)
	return lesson.ID, nil
}

// GetLessonDetail resolves visibility for the caller. Decision order: not
// found, private (author only), premium (premium users and the author), then
// granted with the engagement flags.
func (u *LessonUsecase) GetLessonDetail(ctx context.Context, lessonID, callerUID string) (*usecasecontract.LessonDetail, error) {
	lesson, err := u.getLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	// The caller may be authenticated yet have no stored document; that is a
	// valid non-premium caller, not an error.
	var user *entity.User
	if found, err := u.userRepo.GetUserByUID(ctx, callerUID); err == nil {
		user = found
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	isAuthor := lesson.Author.UID == callerUID
	isPremium := user != nil && user.IsPremium

	if lesson.Metadata.Privacy == entity.PrivacyPrivate && !isAuthor {
		return nil, ErrPrivateLesson
	}
	if lesson.Metadata.AccessLevel == entity.AccessLevelPremium && !isPremium && !isAuthor {
		return nil, ErrPremiumRequired
	}

	return &usecasecontract.LessonDetail{
		Lesson:           lesson,
		IsAuthor:         isAuthor,
		IsPremiumUser:    isPremium,
		UserHasLiked:     lesson.HasLiked(callerUID),
		UserHasFavorited: user != nil && user.HasFavorited(lessonID),
	}, nil
}

// ListLessons lists public lessons, optionally narrowed to one author's
// profile page.
func (u *LessonUsecase) ListLessons(ctx context.Context, authorUID string) ([]*entity.Lesson, error) {
	opts := &contract.LessonFilterOptions{PublicOnly: true}
	if authorUID != "" {
		opts.AuthorUID = &authorUID
	}
	lessons, _, err := u.lessonRepo.GetLessons(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

// ListMyLessons lists everything the caller authored, including private and
// hidden lessons.
func (u *LessonUsecase) ListMyLessons(ctx context.Context, callerUID string) ([]*entity.Lesson, error) {
	opts := &contract.LessonFilterOptions{AuthorUID: &callerUID}
	lessons, _, err := u.lessonRepo.GetLessons(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list authored lessons: %w", err)
	}
	return lessons, nil
}

// ListMyLessonsPage is the paginated variant of ListMyLessons.
func (u *LessonUsecase) ListMyLessonsPage(ctx context.Context, callerUID string, page, limit int) (*usecasecontract.LessonPage, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidPagination
	}
	opts := &contract.LessonFilterOptions{AuthorUID: &callerUID, Page: page, PageSize: limit}
	lessons, total, err := u.lessonRepo.GetLessons(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list authored lessons: %w", err)
	}
	return buildPage(lessons, total, page, limit), nil
}

// CountMyLessons counts the caller's authored lessons from the source
// collection, not the denormalized counter.
func (u *LessonUsecase) CountMyLessons(ctx context.Context, callerUID string) (int64, error) {
	count, err := u.lessonRepo.CountByAuthor(ctx, callerUID)
	if err != nil {
		return 0, fmt.Errorf("failed to count authored lessons: %w", err)
	}
	return count, nil
}

// ListPublicLessons pages through the public listing, cache-first when a
// cache is wired.
func (u *LessonUsecase) ListPublicLessons(ctx context.Context, page, limit int) (*usecasecontract.LessonPage, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidPagination
	}

	cacheKey := fmt.Sprintf("lessons:list:public:p%d:s%d", page, limit)
	if u.lessonCache != nil {
		if cached, ok, err := u.lessonCache.GetLessonsPage(ctx, cacheKey); err == nil && ok {
			lessons := make([]*entity.Lesson, 0, len(cached.Lessons))
			for i := range cached.Lessons {
				lessons = append(lessons, &cached.Lessons[i])
			}
			return buildPage(lessons, cached.Total, page, limit), nil
		}
	}

	opts := &contract.LessonFilterOptions{PublicOnly: true, Page: page, PageSize: limit}
	lessons, total, err := u.lessonRepo.GetLessons(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list public lessons: %w", err)
	}

	if u.lessonCache != nil {
		cached := &contract.CachedLessonsPage{Total: total}
		for _, l := range lessons {
			cached.Lessons = append(cached.Lessons, *l)
		}
		if err := u.lessonCache.SetLessonsPage(ctx, cacheKey, cached); err != nil {
			u.logger.Warnf("failed to cache public lessons page: %v", err)
		}
	}

	return buildPage(lessons, total, page, limit), nil
}

// GetSimilarLessons returns up to six public lessons sharing the category or
// tone. No criteria means an empty result, never a full scan.
func (u *LessonUsecase) GetSimilarLessons(ctx context.Context, lessonID, category, tone string) ([]*entity.Lesson, error) {
	if category == "" && tone == "" {
		return []*entity.Lesson{}, nil
	}
	lessons, err := u.lessonRepo.GetSimilarLessons(ctx, lessonID, category, tone, similarLessonsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar lessons: %w", err)
	}
	return lessons, nil
}

// UpdateLesson applies an author-only partial update. Upgrading the access
// level to Premium additionally requires the editor to hold premium,
// independent of authorship.
func (u *LessonUsecase) UpdateLesson(ctx context.Context, lessonID, callerUID string, updates map[string]interface{}) error {
	lesson, err := u.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}
	if lesson.Author.UID != callerUID {
		return ErrForbidden
	}

	if level, ok := updates["metadata.accessLevel"].(string); ok && level == string(entity.AccessLevelPremium) {
		user, err := u.userRepo.GetUserByUID(ctx, callerUID)
		if err != nil || !user.IsPremium {
			return ErrPremiumRequired
		}
	}

	updates["metadata.lastUpdated"] = time.Now()
	if err := u.lessonRepo.UpdateLesson(ctx, lessonID, updates); err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	u.invalidateLesson(ctx, lessonID)
	return nil
}

// DeleteLesson removes an authored lesson, decrements the author's counter
// and eagerly cleans the lesson id out of all users' favorites sets so no
// dangling references survive the delete.
func (u *LessonUsecase) DeleteLesson(ctx context.Context, lessonID, callerUID string) error {
	lesson, err := u.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}
	if lesson.Author.UID != callerUID {
		return ErrForbidden
	}

	if err := u.lessonRepo.DeleteLesson(ctx, lessonID); err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if err := u.userRepo.IncrementTotalLessons(ctx, callerUID, -1); err != nil {
		return fmt.Errorf("lesson deleted but author counter update failed: %w", err)
	}
	if err := u.userRepo.RemoveFavoriteFromAll(ctx, lessonID); err != nil {
		u.logger.Errorf("favorites cleanup after deleting lesson %s failed: %v", lessonID, err)
	}

	u.invalidateLesson(ctx, lessonID)
	return nil
}

// UserActivity returns per-day creation counts for the trailing seven days.
func (u *LessonUsecase) UserActivity(ctx context.Context, callerUID string) ([]contract.ActivityBucket, error) {
	since := time.Now().AddDate(0, 0, -7)
	buckets, err := u.lessonRepo.ActivityByDay(ctx, callerUID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activity: %w", err)
	}
	if buckets == nil {
		buckets = []contract.ActivityBucket{}
	}
	return buckets, nil
}

// getLesson reads through the optional detail cache.
func (u *LessonUsecase) getLesson(ctx context.Context, lessonID string) (*entity.Lesson, error) {
	if u.lessonCache != nil {
		if lesson, ok, err := u.lessonCache.GetLessonByID(ctx, lessonID); err == nil && ok {
			return lesson, nil
		}
	}
	lesson, err := u.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if u.lessonCache != nil {
		if err := u.lessonCache.SetLessonByID(ctx, lessonID, lesson); err != nil {
			u.logger.Warnf("failed to cache lesson %s: %v", lessonID, err)
		}
	}
	return lesson, nil
}

func (u *LessonUsecase) invalidateLesson(ctx context.Context, lessonID string) {
	if u.lessonCache == nil {
		return
	}
	if err := u.lessonCache.InvalidateLessonByID(ctx, lessonID); err != nil {
		u.logger.Warnf("failed to invalidate cached lesson %s: %v", lessonID, err)
	}
	u.invalidateLists(ctx)
}

func (u *LessonUsecase) invalidateLists(ctx context.Context) {
	if u.lessonCache == nil {
		return
	}
	if err := u.lessonCache.InvalidateLessonLists(ctx); err != nil {
		u.logger.Warnf("failed to invalidate cached lesson lists: %v", err)
	}
}

func buildPage(lessons []*entity.Lesson, total int64, page, limit int) *usecasecontract.LessonPage {
	if lessons == nil {
		lessons = []*entity.Lesson{}
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &usecasecontract.LessonPage{
		Lessons:      lessons,
		TotalLessons: total,
		CurrentPage:  page,
		TotalPages:   totalPages,
	}
}

var _ usecasecontract.ILessonUseCase = (*LessonUsecase)(nil)
