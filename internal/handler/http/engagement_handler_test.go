package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/mentry-app/mentry-server/internal/handler/http"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	"github.com/mentry-app/mentry-server/internal/handler/http/mocks"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

func setupEngagementRouter(h *handler.EngagementHandler) *gin.Engine {
	r := gin.New()
	r.Use(asUser("mock-user-id", "test@example.com"))
	r.POST("/lesson/:id/like", h.LikeLessonHandler)
	r.POST("/lesson/:id/favorite", h.FavoriteLessonHandler)
	r.GET("/my-favorites", h.GetMyFavoritesHandler)
	r.GET("/myfavorites/count", h.GetMyFavoritesCountHandler)
	return r
}

func postAction(r *gin.Engine, path, action string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"action": action})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLikeLessonHandler(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h)

	w := postAction(r, "/lesson/l1/like", "like")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "like", mockUsecase.LastAction)

	var resp dto.ToggleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Lesson liked", resp.Message)
}

func TestLikeLessonHandler_RepeatReportsNoChange(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.MockOutcome = usecasecontract.ToggleOutcome{Success: false, Message: "Lesson liked"}
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h)

	w := postAction(r, "/lesson/l1/like", "like")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ToggleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestLikeLessonHandler_RejectsUnknownAction(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h)

	// Unknown actions fail binding validation before the usecase runs.
	w := postAction(r, "/lesson/l1/like", "favorite")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockUsecase.LastAction)

	w = postAction(r, "/lesson/l1/favorite", "unlike")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockUsecase.LastAction)
}

func TestFavoriteLessonHandler(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.MockOutcome = usecasecontract.ToggleOutcome{Success: true, Message: "Lesson favorited"}
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h)

	w := postAction(r, "/lesson/l1/favorite", "favorite")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "favorite", mockUsecase.LastAction)
	assert.Contains(t, w.Body.String(), "Lesson favorited")
}

func TestGetMyFavoritesCountHandler(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.MockCount = 7
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/myfavorites/count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CountResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Count)
}
