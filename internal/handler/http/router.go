package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/handler/http/middleware"
	"github.com/mentry-app/mentry-server/internal/infrastructure/metrics"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	lessonHandler     *LessonHandler
	engagementHandler *EngagementHandler
	userHandler       *UserHandler
	commentHandler    *CommentHandler
	reportHandler     *ReportHandler
	billingHandler    *BillingHandler
	tokenVerifier     usecasecontract.ITokenVerifier
}

func NewRouter(
	lessonUsecase usecasecontract.ILessonUseCase,
	engagementUsecase usecasecontract.IEngagementUseCase,
	userUsecase usecasecontract.IUserUseCase,
	commentUsecase usecasecontract.ICommentUseCase,
	reportUsecase usecasecontract.IReportUseCase,
	billingUsecase usecasecontract.IBillingUseCase,
	tokenVerifier usecasecontract.ITokenVerifier,
) *Router {
	return &Router{
		lessonHandler:     NewLessonHandler(lessonUsecase),
		engagementHandler: NewEngagementHandler(engagementUsecase),
		userHandler:       NewUserHandler(userUsecase),
		commentHandler:    NewCommentHandler(commentUsecase),
		reportHandler:     NewReportHandler(reportUsecase),
		billingHandler:    NewBillingHandler(billingUsecase),
		tokenVerifier:     tokenVerifier,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(metrics.RequestCounter())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	router.GET("/lessons", r.lessonHandler.GetLessonsHandler)
	router.GET("/public-lessons", r.lessonHandler.GetPublicLessonsHandler)
	router.GET("/similar-lessons/:id", r.lessonHandler.GetSimilarLessonsHandler)
	router.GET("/lesson/:id/comments", r.commentHandler.GetLessonCommentsHandler)
	router.GET("/users", r.userHandler.ListUsersHandler)
	router.POST("/users", r.userHandler.RegisterUserHandler)
	// One route serves uid and email lookups; the identifier is dispatched on
	// the presence of '@' because sibling path parameters cannot coexist.
	router.GET("/users/:identifier", r.userHandler.GetUserHandler)

	// The webhook authenticates via its signature header, not a bearer token.
	router.POST("/webhook", r.billingHandler.WebhookHandler)

	// Protected routes (bearer ID token required)
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.tokenVerifier))
	{
		protected.POST("/lessons", r.lessonHandler.CreateLessonHandler)
		protected.GET("/lessondetails/:id", r.lessonHandler.GetLessonDetailHandler)
		protected.PATCH("/lessons/:id", r.lessonHandler.UpdateLessonHandler)
		protected.DELETE("/lessons/:id", r.lessonHandler.DeleteLessonHandler)
		protected.GET("/my-lessons", r.lessonHandler.GetMyLessonsHandler)
		protected.GET("/mylessons", r.lessonHandler.GetMyLessonsPageHandler)
		protected.GET("/mylessons/count", r.lessonHandler.GetMyLessonsCountHandler)
		protected.GET("/user-activity", r.lessonHandler.GetUserActivityHandler)

		protected.POST("/lesson/:id/like", r.engagementHandler.LikeLessonHandler)
		protected.POST("/lesson/:id/favorite", r.engagementHandler.FavoriteLessonHandler)
		protected.GET("/my-favorites", r.engagementHandler.GetMyFavoritesHandler)
		protected.GET("/myfavorites/count", r.engagementHandler.GetMyFavoritesCountHandler)

		protected.POST("/lesson/:id/comments", r.commentHandler.PostCommentHandler)
		protected.POST("/lesson/:id/report", r.reportHandler.ReportLessonHandler)

		protected.GET("/users/me", r.userHandler.GetMeHandler)
		protected.PATCH("/users/me", r.userHandler.UpdateMeHandler)

		protected.POST("/create-checkout-session", r.billingHandler.CreateCheckoutSessionHandler)
	}
}
