package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	"github.com/mentry-app/mentry-server/internal/infrastructure/metrics"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

type EngagementHandler struct {
	engagementUsecase usecasecontract.IEngagementUseCase
}

func NewEngagementHandler(engagementUsecase usecasecontract.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{
		engagementUsecase: engagementUsecase,
	}
}

// LikeLessonHandler applies a like/unlike action for the caller.
func (h *EngagementHandler) LikeLessonHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.LikeActionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	outcome, err := h.engagementUsecase.ToggleLike(c.Request.Context(), c.Param("id"), uid, req.Action)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	metrics.ObserveToggle(req.Action, outcome.Success)
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{Success: outcome.Success, Message: outcome.Message})
}

// FavoriteLessonHandler applies a favorite/unfavorite action for the caller.
func (h *EngagementHandler) FavoriteLessonHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.FavoriteActionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	outcome, err := h.engagementUsecase.ToggleFavorite(c.Request.Context(), c.Param("id"), uid, req.Action)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	metrics.ObserveToggle(req.Action, outcome.Success)
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{Success: outcome.Success, Message: outcome.Message})
}

// GetMyFavoritesHandler resolves the caller's favorites to lesson documents.
func (h *EngagementHandler) GetMyFavoritesHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	lessons, err := h.engagementUsecase.ListFavorites(
		c.Request.Context(), uid, c.Query("category"), c.Query("tone"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// GetMyFavoritesCountHandler returns the caller's saved-lessons count.
func (h *EngagementHandler) GetMyFavoritesCountHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	count, err := h.engagementUsecase.CountFavorites(c.Request.Context(), uid)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CountResponse{Count: int64(count)})
}
