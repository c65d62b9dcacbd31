package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// In-memory fakes reproducing the store's matched/modified semantics so the
// usecases can be exercised without a running database.

type testLogger struct{}

func (testLogger) Debugf(format string, args ...interface{}) {}
func (testLogger) Infof(format string, args ...interface{})  {}
func (testLogger) Warnf(format string, args ...interface{})  {}
func (testLogger) Errorf(format string, args ...interface{}) {}
func (testLogger) Fatalf(format string, args ...interface{}) {}

type fakeUUIDGen struct {
	n int
}

func (g *fakeUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

// fakeUserRepo keeps user documents keyed by uid.
type fakeUserRepo struct {
	users map[string]*entity.User

	failToggle error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) ensure(uid string) *entity.User {
	if u, ok := r.users[uid]; ok {
		return u
	}
	u := &entity.User{UID: uid, FavoritesArray: []string{}, CreatedAt: time.Now()}
	r.users[uid] = u
	return u
}

func (r *fakeUserRepo) GetUserByUID(ctx context.Context, uid string) (*entity.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) UpsertProfile(ctx context.Context, uid string, updates map[string]interface{}) error {
	u := r.ensure(uid)
	if v, ok := updates["displayName"].(string); ok {
		u.DisplayName = v
	}
	if v, ok := updates["photoURL"].(string); ok {
		u.PhotoURL = v
	}
	if v, ok := updates["email"].(string); ok {
		u.Email = v
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) IncrementTotalLessons(ctx context.Context, uid string, delta int) error {
	if delta > 0 {
		r.ensure(uid)
	}
	if u, ok := r.users[uid]; ok {
		u.TotalLessons += delta
	}
	return nil
}

func (r *fakeUserRepo) ToggleFavorite(ctx context.Context, uid, lessonID string, add bool) (bool, error) {
	if r.failToggle != nil {
		return false, r.failToggle
	}
	u := r.ensure(uid)
	idx := -1
	for i, id := range u.FavoritesArray {
		if id == lessonID {
			idx = i
			break
		}
	}
	if add {
		if idx >= 0 {
			return false, nil
		}
		u.FavoritesArray = append(u.FavoritesArray, lessonID)
		u.SavedLessons++
		return true, nil
	}
	if idx < 0 {
		return false, nil
	}
	u.FavoritesArray = append(u.FavoritesArray[:idx], u.FavoritesArray[idx+1:]...)
	u.SavedLessons--
	return true, nil
}

func (r *fakeUserRepo) SetPremium(ctx context.Context, uid string) (bool, error) {
	u := r.ensure(uid)
	if u.IsPremium {
		return false, nil
	}
	now := time.Now()
	u.IsPremium = true
	u.UpgradedAt = &now
	return true, nil
}

func (r *fakeUserRepo) RemoveFavoriteFromAll(ctx context.Context, lessonID string) error {
	for _, u := range r.users {
		for i, id := range u.FavoritesArray {
			if id == lessonID {
				u.FavoritesArray = append(u.FavoritesArray[:i], u.FavoritesArray[i+1:]...)
				u.SavedLessons--
				break
			}
		}
	}
	return nil
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

// fakeLessonRepo keeps lesson documents keyed by id.
type fakeLessonRepo struct {
	lessons map[string]*entity.Lesson

	failMirror error
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: map[string]*entity.Lesson{}}
}

func (r *fakeLessonRepo) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	if lesson.Metadata.CreatedDate.IsZero() {
		lesson.Metadata.CreatedDate = time.Now()
	}
	if lesson.Stats.LikesArray == nil {
		lesson.Stats.LikesArray = []string{}
	}
	r.lessons[lesson.ID] = lesson
	return nil
}

func (r *fakeLessonRepo) GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, error) {
	l, ok := r.lessons[lessonID]
	if !ok {
		return nil, contract.ErrLessonNotFound
	}
	return l, nil
}

func (r *fakeLessonRepo) GetLessons(ctx context.Context, opts *contract.LessonFilterOptions) ([]*entity.Lesson, int64, error) {
	var matched []*entity.Lesson
	for _, l := range r.lessons {
		if opts.PublicOnly && !l.IsListable() {
			continue
		}
		if opts.AuthorUID != nil && *opts.AuthorUID != "" && l.Author.UID != *opts.AuthorUID {
			continue
		}
		matched = append(matched, l)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Metadata.CreatedDate.After(matched[j].Metadata.CreatedDate)
	})
	total := int64(len(matched))

	if opts.PageSize > 0 {
		start := (opts.Page - 1) * opts.PageSize
		if start >= len(matched) {
			return []*entity.Lesson{}, total, nil
		}
		end := start + opts.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *fakeLessonRepo) GetLessonsByIDs(ctx context.Context, ids []string, category, tone string) ([]*entity.Lesson, error) {
	var out []*entity.Lesson
	for _, id := range ids {
		l, ok := r.lessons[id]
		if !ok {
			continue
		}
		if category != "" && l.LessonInfo.Category != category {
			continue
		}
		if tone != "" && l.LessonInfo.Tone != tone {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLessonRepo) GetSimilarLessons(ctx context.Context, excludeID, category, tone string, limit int) ([]*entity.Lesson, error) {
	var out []*entity.Lesson
	for _, l := range r.lessons {
		if l.ID == excludeID || !l.IsListable() {
			continue
		}
		if l.LessonInfo.Category != category && l.LessonInfo.Tone != tone {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeLessonRepo) UpdateLesson(ctx context.Context, lessonID string, updates map[string]interface{}) error {
	l, ok := r.lessons[lessonID]
	if !ok {
		return contract.ErrLessonNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			l.Title = v.(string)
		case "summary":
			l.Summary = v.(string)
		case "content":
			l.Content = v.(string)
		case "lessonInfo.category":
			l.LessonInfo.Category = v.(string)
		case "lessonInfo.tone":
			l.LessonInfo.Tone = v.(string)
		case "metadata.privacy":
			l.Metadata.Privacy = entity.LessonPrivacy(v.(string))
		case "metadata.visibility":
			l.Metadata.Visibility = entity.LessonVisibility(v.(string))
		case "metadata.accessLevel":
			l.Metadata.AccessLevel = entity.LessonAccessLevel(v.(string))
		case "metadata.lastUpdated":
			t := v.(time.Time)
			l.Metadata.LastUpdated = &t
		}
	}
	return nil
}

func (r *fakeLessonRepo) DeleteLesson(ctx context.Context, lessonID string) error {
	if _, ok := r.lessons[lessonID]; !ok {
		return contract.ErrLessonNotFound
	}
	delete(r.lessons, lessonID)
	return nil
}

func (r *fakeLessonRepo) CountByAuthor(ctx context.Context, uid string) (int64, error) {
	var count int64
	for _, l := range r.lessons {
		if l.Author.UID == uid {
			count++
		}
	}
	return count, nil
}

func (r *fakeLessonRepo) SetLikeMembership(ctx context.Context, lessonID, uid string, add bool) (bool, error) {
	l, ok := r.lessons[lessonID]
	if !ok {
		return false, nil
	}
	idx := -1
	for i, id := range l.Stats.LikesArray {
		if id == uid {
			idx = i
			break
		}
	}
	if add {
		if idx >= 0 {
			return false, nil
		}
		l.Stats.LikesArray = append(l.Stats.LikesArray, uid)
		l.Stats.Likes++
		return true, nil
	}
	if idx < 0 {
		return false, nil
	}
	l.Stats.LikesArray = append(l.Stats.LikesArray[:idx], l.Stats.LikesArray[idx+1:]...)
	l.Stats.Likes--
	return true, nil
}

func (r *fakeLessonRepo) IncrementFavoriteCount(ctx context.Context, lessonID string, delta int) error {
	if r.failMirror != nil {
		return r.failMirror
	}
	l, ok := r.lessons[lessonID]
	if !ok {
		return contract.ErrLessonNotFound
	}
	l.Stats.Favorites += delta
	return nil
}

func (r *fakeLessonRepo) ActivityByDay(ctx context.Context, uid string, since time.Time) ([]contract.ActivityBucket, error) {
	byDay := map[string]int{}
	for _, l := range r.lessons {
		if l.Author.UID != uid || l.Metadata.CreatedDate.Before(since) {
			continue
		}
		byDay[l.Metadata.CreatedDate.Format("2006-01-02")]++
	}
	var buckets []contract.ActivityBucket
	for day, count := range byDay {
		buckets = append(buckets, contract.ActivityBucket{Day: day, Lessons: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Day < buckets[j].Day })
	return buckets, nil
}

func (r *fakeLessonRepo) SyncAuthorSnapshot(ctx context.Context, uid, name, photoURL string) error {
	for _, l := range r.lessons {
		if l.Author.UID == uid {
			l.Author.Name = name
			l.Author.ProfileImage = photoURL
		}
	}
	return nil
}

var _ contract.ILessonRepository = (*fakeLessonRepo)(nil)

type fakeCommentRepo struct {
	comments []*entity.Comment
	gen      fakeUUIDGen
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = r.gen.NewUUID()
	}
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) GetByLessonID(ctx context.Context, lessonID string) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.LessonID == lessonID {
			out = append(out, c)
		}
	}
	return out, nil
}

var _ contract.ICommentRepository = (*fakeCommentRepo)(nil)

type fakeReportRepo struct {
	reports []*entity.Report
	gen     fakeUUIDGen
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = r.gen.NewUUID()
	}
	report.CreatedAt = time.Now()
	r.reports = append(r.reports, report)
	return nil
}

var _ contract.IReportRepository = (*fakeReportRepo)(nil)

// fakeLessonCache is an in-memory ILessonCache recording hits and misses.
type fakeLessonCache struct {
	details map[string]*entity.Lesson
	pages   map[string]*contract.CachedLessonsPage

	pageHits   int
	pageStores int
}

func newFakeLessonCache() *fakeLessonCache {
	return &fakeLessonCache{
		details: map[string]*entity.Lesson{},
		pages:   map[string]*contract.CachedLessonsPage{},
	}
}

func (c *fakeLessonCache) GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, bool, error) {
	l, ok := c.details[lessonID]
	return l, ok, nil
}

func (c *fakeLessonCache) SetLessonByID(ctx context.Context, lessonID string, lesson *entity.Lesson) error {
	c.details[lessonID] = lesson
	return nil
}

func (c *fakeLessonCache) InvalidateLessonByID(ctx context.Context, lessonID string) error {
	delete(c.details, lessonID)
	return nil
}

func (c *fakeLessonCache) GetLessonsPage(ctx context.Context, key string) (*contract.CachedLessonsPage, bool, error) {
	p, ok := c.pages[key]
	if ok {
		c.pageHits++
	}
	return p, ok, nil
}

func (c *fakeLessonCache) SetLessonsPage(ctx context.Context, key string, page *contract.CachedLessonsPage) error {
	c.pageStores++
	c.pages[key] = page
	return nil
}

func (c *fakeLessonCache) InvalidateLessonLists(ctx context.Context) error {
	c.pages = map[string]*contract.CachedLessonsPage{}
	return nil
}

var _ contract.ILessonCache = (*fakeLessonCache)(nil)

// fakePaymentProvider scripts checkout and webhook parsing behavior.
type fakePaymentProvider struct {
	session  usecasecontract.CheckoutSession
	parsed   *usecasecontract.CheckoutCompleted
	parseErr error

	createCalls int
}

func (p *fakePaymentProvider) CreateCheckoutSession(ctx context.Context, uid, customerEmail string) (*usecasecontract.CheckoutSession, error) {
	p.createCalls++
	s := p.session
	return &s, nil
}

func (p *fakePaymentProvider) ParseCompletionEvent(payload []byte, signatureHeader string) (*usecasecontract.CheckoutCompleted, error) {
	if p.parseErr != nil {
		return nil, p.parseErr
	}
	return p.parsed, nil
}

var _ usecasecontract.IPaymentProvider = (*fakePaymentProvider)(nil)
