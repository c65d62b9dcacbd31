package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

type ReportHandler struct {
	reportUsecase usecasecontract.IReportUseCase
}

func NewReportHandler(reportUsecase usecasecontract.IReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// ReportLessonHandler files a moderation report against a lesson.
func (h *ReportHandler) ReportLessonHandler(c *gin.Context) {
	uid, email, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.ReportLessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reportID, err := h.reportUsecase.ReportLesson(c.Request.Context(), c.Param("id"), uid, email, req.Reason)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ReportFiledResponse{
		Message:  "Report submitted successfully",
		ReportID: reportID,
	})
}
