package handlers

import (
	"net/http"
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/adapter/http/mapper"
	"kanbanpro/internal/adapter/http/validation"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService ports.TaskService
	loc         *time.Location
	now         func() time.Time
}

func NewTaskHandler(taskService ports.TaskService, loc *time.Location) *TaskHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TaskHandler{taskService: taskService, loc: loc, now: time.Now}
}

// ListCurrentTasks returns the tasks of the caller's current board.
func (h *TaskHandler) ListCurrentTasks(c *gin.Context) {
	tasks, err := h.taskService.CurrentBoardTasks(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, "failed to list current board tasks", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.now()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "failed to load task", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw, h.loc)
	if err != nil {
		respondError(c, "failed to build task", err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), principal(c), input)
	if err != nil {
		respondError(c, "failed to create task", err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	patch, err := validation.BuildTaskPatch(req, raw, h.loc)
	if err != nil {
		respondError(c, "failed to build task update", err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), principal(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, "failed to update task", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Request.Context(), principal(c), c.Param("id")); err != nil {
		respondError(c, "failed to delete task", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidStatus)
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		respondError(c, "failed to move task", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) TogglePin(c *gin.Context) {
	task, err := h.taskService.TogglePin(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "failed to toggle pin", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidComment)
		return
	}

	comment, err := h.taskService.AddComment(c.Request.Context(), principal(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, "failed to add comment", err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}
