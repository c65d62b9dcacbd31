package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type LessonHandler struct {
	lessonUsecase usecasecontract.ILessonUseCase
}

func NewLessonHandler(lessonUsecase usecasecontract.ILessonUseCase) *LessonHandler {
	return &LessonHandler{
		lessonUsecase: lessonUsecase,
	}
}

// CreateLessonHandler stores a new lesson authored by the caller.
func (h *LessonHandler) CreateLessonHandler(c *gin.Context) {
	uid, email, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateLessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lessonID, err := h.lessonUsecase.CreateLesson(c.Request.Context(), uid, email, req.ToLesson())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, gin.H{"message": "Lesson created successfully", "id": lessonID})
}

// GetLessonDetailHandler returns the lesson with caller-relative flags,
// enforcing privacy and the premium gate.
func (h *LessonHandler) GetLessonDetailHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	detail, err := h.lessonUsecase.GetLessonDetail(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToLessonDetailResponse(detail))
}

// GetLessonsHandler lists public lessons, optionally narrowed to one author.
func (h *LessonHandler) GetLessonsHandler(c *gin.Context) {
	lessons, err := h.lessonUsecase.ListLessons(c.Request.Context(), c.Query("uid"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// GetMyLessonsHandler lists everything the caller authored, including private
// and hidden lessons.
func (h *LessonHandler) GetMyLessonsHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	lessons, err := h.lessonUsecase.ListMyLessons(c.Request.Context(), uid)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// GetMyLessonsPageHandler is the paginated variant of GetMyLessonsHandler.
func (h *LessonHandler) GetMyLessonsPageHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	result, err := h.lessonUsecase.ListMyLessonsPage(c.Request.Context(), uid, page, limit)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPaginatedLessonsResponse(result))
}

// GetMyLessonsCountHandler counts the caller's authored lessons.
func (h *LessonHandler) GetMyLessonsCountHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	count, err := h.lessonUsecase.CountMyLessons(c.Request.Context(), uid)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CountResponse{Count: count})
}

// GetPublicLessonsHandler pages through the public listing.
func (h *LessonHandler) GetPublicLessonsHandler(c *gin.Context) {
	page, limit := parsePagination(c)
	result, err := h.lessonUsecase.ListPublicLessons(c.Request.Context(), page, limit)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPaginatedLessonsResponse(result))
}

// GetSimilarLessonsHandler returns public lessons sharing the reference
// lesson's category or tone.
func (h *LessonHandler) GetSimilarLessonsHandler(c *gin.Context) {
	lessons, err := h.lessonUsecase.GetSimilarLessons(
		c.Request.Context(), c.Param("id"), c.Query("category"), c.Query("tone"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// UpdateLessonHandler applies an author-only partial update.
func (h *LessonHandler) UpdateLessonHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateLessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	updates := req.ToUpdateMap()
	if len(updates) == 0 {
		ErrorHandler(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.lessonUsecase.UpdateLesson(c.Request.Context(), c.Param("id"), uid, updates); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Lesson updated successfully")
}

// DeleteLessonHandler removes an authored lesson and its favorite references.
func (h *LessonHandler) DeleteLessonHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	if err := h.lessonUsecase.DeleteLesson(c.Request.Context(), c.Param("id"), uid); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Lesson deleted successfully")
}

// GetUserActivityHandler returns the caller's per-day creation counts for the
// trailing week.
func (h *LessonHandler) GetUserActivityHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	buckets, err := h.lessonUsecase.UserActivity(c.Request.Context(), uid)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, buckets)
}

// parsePagination reads page/limit query params with defaults. Non-numeric
// values fall back to the defaults; out-of-range values are rejected by the
// usecase.
func parsePagination(c *gin.Context) (int, int) {
	page := defaultPage
	if v, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage))); err == nil {
		page = v
	}
	limit := defaultPageSize
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize))); err == nil {
		limit = v
	}
	return page, limit
}
