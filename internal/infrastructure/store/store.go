package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

type LessonCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

func NewLessonCacheStore(rdb *redis.Client) *LessonCacheStore {
	return &LessonCacheStore{
		rdb:       rdb,
		detailTTL: 60 * time.Minute,
		listTTL:   30 * time.Minute,
	}
}

func lessonDetailKey(id string) string { return fmt.Sprintf("lesson:id:%s", id) }

func (c *LessonCacheStore) GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, bool, error) {
	b, err := c.rdb.Get(ctx, lessonDetailKey(lessonID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var lesson entity.Lesson
	if err := json.Unmarshal(b, &lesson); err != nil {
		return nil, false, nil
	}
	return &lesson, true, nil
}

func (c *LessonCacheStore) SetLessonByID(ctx context.Context, lessonID string, lesson *entity.Lesson) error {
	data, err := json.Marshal(lesson)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, lessonDetailKey(lessonID), data, c.detailTTL).Err()
}

func (c *LessonCacheStore) InvalidateLessonByID(ctx context.Context, lessonID string) error {
	return c.rdb.Del(ctx, lessonDetailKey(lessonID)).Err()
}

func (c *LessonCacheStore) GetLessonsPage(ctx context.Context, key string) (*contract.CachedLessonsPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedLessonsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *LessonCacheStore) SetLessonsPage(ctx context.Context, key string, page *contract.CachedLessonsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

func (c *LessonCacheStore) InvalidateLessonLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "lessons:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}

var _ contract.ILessonCache = (*LessonCacheStore)(nil)
