package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type TaskHandler struct {
	tasks ports.TaskSynchronizer
}

func NewTaskHandler(tasks ports.TaskSynchronizer) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToTaskView(h.tasks.Snapshot()))
}

func (h *TaskHandler) ReloadTasks(c *gin.Context) {
	if err := h.tasks.Reload(c.Request.Context()); err != nil {
		respondError(c, err, apierrors.MsgFailLoadTasks)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskView(h.tasks.Snapshot()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidTaskPayload)
		return
	}
	draft, err := validation.BuildTaskDraft(req)
	if err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSubmitTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) EditTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidTaskPayload)
		return
	}
	draft, err := validation.BuildTaskDraft(req)
	if err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.tasks.Edit(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSubmitTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) SetTaskStatus(c *gin.Context) {
	var req dto.TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.tasks.SetStatus(c.Request.Context(), c.Param("id"), *req.Completed)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateStatus)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask)
		return
	}
	c.Status(http.StatusNoContent)
}
