package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

// AuthHandler drives the authenticator. Signing in or out clears the task
// store so one user's tasks never show under another session.
type AuthHandler struct {
	auth  ports.Authenticator
	tasks ports.TaskSynchronizer
}

func NewAuthHandler(auth ports.Authenticator, tasks ports.TaskSynchronizer) *AuthHandler {
	return &AuthHandler{auth: auth, tasks: tasks}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidAuthPayload)
		return
	}

	profile, err := h.auth.Register(c.Request.Context(), mapper.ToRegistration(req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailAuth)
		return
	}

	h.tasks.Reset()
	c.JSON(http.StatusCreated, mapper.ToProfile(profile))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidAuthPayload)
		return
	}

	profile, err := h.auth.Login(c.Request.Context(), mapper.ToCredentials(req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailAuth)
		return
	}

	h.tasks.Reset()
	c.JSON(http.StatusOK, mapper.ToProfile(profile))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		respondError(c, err, apierrors.MsgFailAuth)
		return
	}
	h.tasks.Reset()
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidAuthPayload)
		return
	}

	profile, err := h.auth.UpdateProfile(c.Request.Context(), mapper.ToProfileUpdate(req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProfile)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfile(profile))
}

func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToSession(h.auth.Current()))
}
