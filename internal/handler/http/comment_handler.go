package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

// GetLessonCommentsHandler lists a lesson's comments, newest first.
func (h *CommentHandler) GetLessonCommentsHandler(c *gin.Context) {
	comments, err := h.commentUsecase.GetLessonComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comments)
}

// PostCommentHandler appends a comment to a lesson.
func (h *CommentHandler) PostCommentHandler(c *gin.Context) {
	uid, email, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.PostComment(c.Request.Context(), c.Param("id"), uid, email, req.Content)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}
