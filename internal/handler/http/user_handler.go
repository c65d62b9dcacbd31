package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// ListUsersHandler returns all user documents.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// RegisterUserHandler stores a user document on explicit registration.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.RegisterUser(c.Request.Context(), req.ToUser()); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusCreated, "User registered successfully")
}

// GetMeHandler returns the caller's dashboard summary.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	summary, err := h.userUsecase.GetMe(c.Request.Context(), uid)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}

// UpdateMeHandler updates the caller's display name / photo and syncs the
// author snapshot on their lessons.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	uid, _, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.UpdateProfile(c.Request.Context(), uid, req.DisplayName, req.PhotoURL); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Profile updated successfully")
}

// GetUserHandler looks a user up by uid or, when the identifier contains an
// '@', by email. A single route serves both because the router cannot carry
// two sibling path parameters.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	identifier := c.Param("identifier")

	if strings.Contains(identifier, "@") {
		user, err := h.userUsecase.GetUserByEmail(c.Request.Context(), identifier)
		if err != nil {
			UsecaseErrorHandler(c, err)
			return
		}
		SuccessHandler(c, http.StatusOK, user)
		return
	}

	profile, err := h.userUsecase.GetPublicProfile(c.Request.Context(), identifier)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, profile)
}
