package dto

import (
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// Request DTOs for Lesson Handlers

// CreateLessonRequest defines the structure for creating a new lesson.
// Author identity is taken from the verified credential, never from the body.
type CreateLessonRequest struct {
	Title      string `json:"title" binding:"required"`
	Summary    string `json:"summary"`
	Content    string `json:"content" binding:"required"`
	LessonInfo struct {
		Category string `json:"category"`
		Tone     string `json:"tone"`
	} `json:"lessonInfo"`
	Metadata struct {
		Privacy     string `json:"privacy" binding:"omitempty,oneof=Public Private"`
		Visibility  string `json:"visibility" binding:"omitempty,oneof=Visible Hidden"`
		AccessLevel string `json:"accessLevel" binding:"omitempty,oneof=Free Premium"`
	} `json:"metadata"`
}

// ToLesson converts the request into a lesson entity.
func (r *CreateLessonRequest) ToLesson() *entity.Lesson {
	return &entity.Lesson{
		Title:   r.Title,
		Summary: r.Summary,
		Content: r.Content,
		LessonInfo: entity.LessonInfo{
			Category: r.LessonInfo.Category,
			Tone:     r.LessonInfo.Tone,
		},
		Metadata: entity.LessonMetadata{
			Privacy:     entity.LessonPrivacy(r.Metadata.Privacy),
			Visibility:  entity.LessonVisibility(r.Metadata.Visibility),
			AccessLevel: entity.LessonAccessLevel(r.Metadata.AccessLevel),
		},
	}
}

// UpdateLessonRequest defines the structure for a partial lesson update.
type UpdateLessonRequest struct {
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	Tone        *string `json:"tone"`
	Privacy     *string `json:"privacy" binding:"omitempty,oneof=Public Private"`
	Visibility  *string `json:"visibility" binding:"omitempty,oneof=Visible Hidden"`
	AccessLevel *string `json:"accessLevel" binding:"omitempty,oneof=Free Premium"`
}

// ToUpdateMap flattens the set fields into dotted document paths.
func (r *UpdateLessonRequest) ToUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Summary != nil {
		updates["summary"] = *r.Summary
	}
	if r.Content != nil {
		updates["content"] = *r.Content
	}
	if r.Category != nil {
		updates["lessonInfo.category"] = *r.Category
	}
	if r.Tone != nil {
		updates["lessonInfo.tone"] = *r.Tone
	}
	if r.Privacy != nil {
		updates["metadata.privacy"] = *r.Privacy
	}
	if r.Visibility != nil {
		updates["metadata.visibility"] = *r.Visibility
	}
	if r.AccessLevel != nil {
		updates["metadata.accessLevel"] = *r.AccessLevel
	}
	return updates
}

// Response DTOs

// LessonDetailResponse is the lesson document plus the caller-relative flags.
type LessonDetailResponse struct {
	Lesson           *entity.Lesson `json:"lesson"`
	IsAuthor         bool           `json:"isAuthor"`
	IsPremiumUser    bool           `json:"isPremiumUser"`
	UserHasLiked     bool           `json:"userHasLiked"`
	UserHasFavorited bool           `json:"userHasFavorited"`
}

// PaginatedLessonsResponse defines the structure for a paginated lesson list.
type PaginatedLessonsResponse struct {
	Lessons      []*entity.Lesson `json:"lessons"`
	TotalLessons int64            `json:"totalLessons"`
	CurrentPage  int              `json:"currentPage"`
	TotalPages   int              `json:"totalPages"`
}

// DTO Mappers

func ToLessonDetailResponse(detail *usecasecontract.LessonDetail) LessonDetailResponse {
	return LessonDetailResponse{
		Lesson:           detail.Lesson,
		IsAuthor:         detail.IsAuthor,
		IsPremiumUser:    detail.IsPremiumUser,
		UserHasLiked:     detail.UserHasLiked,
		UserHasFavorited: detail.UserHasFavorited,
	}
}

func ToPaginatedLessonsResponse(page *usecasecontract.LessonPage) PaginatedLessonsResponse {
	return PaginatedLessonsResponse{
		Lessons:      page.Lessons,
		TotalLessons: page.TotalLessons,
		CurrentPage:  page.CurrentPage,
		TotalPages:   page.TotalPages,
	}
}
