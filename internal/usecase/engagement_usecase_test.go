package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

func newEngagementUsecaseForTest() (*EngagementUsecase, *fakeLessonRepo, *fakeUserRepo) {
	lessonRepo := newFakeLessonRepo()
	userRepo := newFakeUserRepo()
	uc := NewEngagementUsecase(lessonRepo, userRepo, testLogger{})
	return uc, lessonRepo, userRepo
}

func TestToggleLike_InvalidAction(t *testing.T) {
	uc, lessonRepo, _ := newEngagementUsecaseForTest()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	_, err := uc.ToggleLike(context.Background(), "l1", "caller", "smash")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = uc.ToggleFavorite(context.Background(), "l1", "caller", "like")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestToggleLike_LessonNotFound(t *testing.T) {
	uc, _, _ := newEngagementUsecaseForTest()

	_, err := uc.ToggleLike(context.Background(), "missing", "caller", "like")
	assert.ErrorIs(t, err, contract.ErrLessonNotFound)
}

func TestToggleLike_IdempotentBothDirections(t *testing.T) {
	uc, lessonRepo, _ := newEngagementUsecaseForTest()
	ctx := context.Background()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	out, err := uc.ToggleLike(ctx, "l1", "caller", "like")
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Lesson liked", out.Message)

	// Replayed like: no state change, success=false, counter untouched.
	out, err = uc.ToggleLike(ctx, "l1", "caller", "like")
	assert.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, 1, lessonRepo.lessons["l1"].Stats.Likes)

	out, err = uc.ToggleLike(ctx, "l1", "caller", "unlike")
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Lesson unliked", out.Message)

	out, err = uc.ToggleLike(ctx, "l1", "caller", "unlike")
	assert.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, 0, lessonRepo.lessons["l1"].Stats.Likes)
}

func TestToggleLike_CounterMatchesMembership(t *testing.T) {
	uc, lessonRepo, _ := newEngagementUsecaseForTest()
	ctx := context.Background()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	sequence := []struct{ uid, action string }{
		{"a", "like"}, {"b", "like"}, {"a", "like"}, {"c", "like"},
		{"b", "unlike"}, {"b", "unlike"}, {"d", "unlike"}, {"a", "unlike"},
		{"c", "like"},
	}
	for _, step := range sequence {
		_, err := uc.ToggleLike(ctx, "l1", step.uid, step.action)
		assert.NoError(t, err)
		lesson := lessonRepo.lessons["l1"]
		assert.Equal(t, len(lesson.Stats.LikesArray), lesson.Stats.Likes)
	}
	assert.ElementsMatch(t, []string{"c"}, lessonRepo.lessons["l1"].Stats.LikesArray)
}

func TestToggleFavorite_CrossDocumentCascade(t *testing.T) {
	uc, lessonRepo, userRepo := newEngagementUsecaseForTest()
	ctx := context.Background()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	out, err := uc.ToggleFavorite(ctx, "l1", "caller", "favorite")
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Lesson favorited", out.Message)

	caller := userRepo.users["caller"]
	assert.Equal(t, []string{"l1"}, caller.FavoritesArray)
	assert.Equal(t, 1, caller.SavedLessons)
	assert.Equal(t, 1, lessonRepo.lessons["l1"].Stats.Favorites)

	// Replay: user doc unchanged, mirror counter must not move again.
	out, err = uc.ToggleFavorite(ctx, "l1", "caller", "favorite")
	assert.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, 1, caller.SavedLessons)
	assert.Equal(t, 1, lessonRepo.lessons["l1"].Stats.Favorites)

	out, err = uc.ToggleFavorite(ctx, "l1", "caller", "unfavorite")
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Lesson unfavorited", out.Message)
	assert.Empty(t, caller.FavoritesArray)
	assert.Equal(t, 0, caller.SavedLessons)
	assert.Equal(t, 0, lessonRepo.lessons["l1"].Stats.Favorites)
}

func TestToggleFavorite_MirrorFailureKeepsUserState(t *testing.T) {
	uc, lessonRepo, userRepo := newEngagementUsecaseForTest()
	ctx := context.Background()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)
	lessonRepo.failMirror = assert.AnError

	// The user document is the source of truth; a failed mirror update is
	// logged, not surfaced.
	out, err := uc.ToggleFavorite(ctx, "l1", "caller", "favorite")
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, []string{"l1"}, userRepo.users["caller"].FavoritesArray)
	assert.Equal(t, 0, lessonRepo.lessons["l1"].Stats.Favorites)
}

func TestToggleFavorite_UserWriteFailure(t *testing.T) {
	uc, lessonRepo, userRepo := newEngagementUsecaseForTest()
	ctx := context.Background()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)
	userRepo.failToggle = assert.AnError

	// A failed write to the source-of-truth user document surfaces the error
	// and never touches the mirror counter.
	_, err := uc.ToggleFavorite(ctx, "l1", "caller", "favorite")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, lessonRepo.lessons["l1"].Stats.Favorites)
}

func TestToggleLike_EvictsCachedDetail(t *testing.T) {
	lessonRepo := newFakeLessonRepo()
	userRepo := newFakeUserRepo()
	cache := newFakeLessonCache()
	engagement := NewEngagementUsecase(lessonRepo, userRepo, testLogger{})
	engagement.SetLessonCache(cache)
	lessons := NewLessonUsecase(lessonRepo, userRepo, &fakeUUIDGen{}, testLogger{})
	lessons.SetLessonCache(cache)

	ctx := context.Background()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	// Prime the detail cache with a snapshot taken before any engagement.
	snapshot := *lessonRepo.lessons["l1"]
	assert.NoError(t, cache.SetLessonByID(ctx, "l1", &snapshot))

	out, err := engagement.ToggleLike(ctx, "l1", "caller", "like")
	assert.NoError(t, err)
	assert.True(t, out.Success)

	// The toggle evicted the cached copy, so the next detail read sees the
	// new membership and counter instead of the stale snapshot.
	detail, err := lessons.GetLessonDetail(ctx, "l1", "caller")
	assert.NoError(t, err)
	assert.True(t, detail.UserHasLiked)
	assert.Equal(t, 1, detail.Lesson.Stats.Likes)

	// A replayed like changes nothing, so the refreshed entry stays cached.
	out, err = engagement.ToggleLike(ctx, "l1", "caller", "like")
	assert.NoError(t, err)
	assert.False(t, out.Success)
	_, cached, err := cache.GetLessonByID(ctx, "l1")
	assert.NoError(t, err)
	assert.True(t, cached)
}

func TestToggleFavorite_EvictsCachedDetailAndLists(t *testing.T) {
	lessonRepo := newFakeLessonRepo()
	userRepo := newFakeUserRepo()
	cache := newFakeLessonCache()
	engagement := NewEngagementUsecase(lessonRepo, userRepo, testLogger{})
	engagement.SetLessonCache(cache)
	lessons := NewLessonUsecase(lessonRepo, userRepo, &fakeUUIDGen{}, testLogger{})
	lessons.SetLessonCache(cache)

	ctx := context.Background()
	seedLesson(lessonRepo, "l1", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)

	snapshot := *lessonRepo.lessons["l1"]
	assert.NoError(t, cache.SetLessonByID(ctx, "l1", &snapshot))
	assert.NoError(t, cache.SetLessonsPage(ctx, "lessons:list:public:p1:s10", &contract.CachedLessonsPage{Total: 1}))

	out, err := engagement.ToggleFavorite(ctx, "l1", "caller", "favorite")
	assert.NoError(t, err)
	assert.True(t, out.Success)

	detail, err := lessons.GetLessonDetail(ctx, "l1", "caller")
	assert.NoError(t, err)
	assert.True(t, detail.UserHasFavorited)
	assert.Equal(t, 1, detail.Lesson.Stats.Favorites)

	_, cached, err := cache.GetLessonsPage(ctx, "lessons:list:public:p1:s10")
	assert.NoError(t, err)
	assert.False(t, cached)
}

func TestListFavorites_SkipsDeletedAndFilters(t *testing.T) {
	uc, lessonRepo, userRepo := newEngagementUsecaseForTest()
	ctx := context.Background()

	kept := seedLesson(lessonRepo, "kept", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)
	kept.LessonInfo.Category = "career"
	other := seedLesson(lessonRepo, "other", "author", entity.PrivacyPublic, entity.VisibilityVisible, entity.AccessLevelFree)
	other.LessonInfo.Category = "health"

	caller := userRepo.ensure("caller")
	caller.FavoritesArray = []string{"kept", "other", "deleted-long-ago"}

	lessons, err := uc.ListFavorites(ctx, "caller", "", "")
	assert.NoError(t, err)
	assert.Len(t, lessons, 2)

	lessons, err = uc.ListFavorites(ctx, "caller", "career", "")
	assert.NoError(t, err)
	assert.Len(t, lessons, 1)
	assert.Equal(t, "kept", lessons[0].ID)
}

func TestListFavorites_NoUserDocument(t *testing.T) {
	uc, _, _ := newEngagementUsecaseForTest()

	lessons, err := uc.ListFavorites(context.Background(), "stranger", "", "")
	assert.NoError(t, err)
	assert.Empty(t, lessons)

	count, err := uc.CountFavorites(context.Background(), "stranger")
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestCountFavorites_FallsBackToArrayLength(t *testing.T) {
	uc, _, userRepo := newEngagementUsecaseForTest()

	caller := userRepo.ensure("caller")
	caller.FavoritesArray = []string{"a", "b"}
	caller.SavedLessons = 0 // legacy document predating the counter

	count, err := uc.CountFavorites(context.Background(), "caller")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
