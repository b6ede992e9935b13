package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/validation"
	"taskboard/pkg/apierrors"
)

// SetView switches the view mode and loads the matching collection.
func (h *TaskHandler) SetView(c *gin.Context) {
	var req dto.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidViewMode)
		return
	}
	mode, err := validation.BuildViewMode(req)
	if err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidViewMode)
		return
	}

	h.applyView(c, func(ctx context.Context) error {
		return h.tasks.SetViewMode(ctx, mode)
	})
}

func (h *TaskHandler) ToggleCompleted(c *gin.Context) {
	h.applyView(c, h.tasks.ToggleCompleted)
}

func (h *TaskHandler) ToggleIncomplete(c *gin.Context) {
	h.applyView(c, h.tasks.ToggleIncomplete)
}

func (h *TaskHandler) applyView(c *gin.Context, change func(context.Context) error) {
	if err := change(c.Request.Context()); err != nil {
		respondError(c, err, apierrors.MsgFailLoadTasks)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskView(h.tasks.Snapshot()))
}
