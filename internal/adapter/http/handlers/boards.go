package handlers

import (
	"net/http"
	"strconv"
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/adapter/http/mapper"
	"kanbanpro/internal/adapter/http/validation"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardService     ports.BoardService
	taskService      ports.TaskService
	analyticsService ports.AnalyticsService
	loc              *time.Location
	now              func() time.Time
}

func NewBoardHandler(boardService ports.BoardService, taskService ports.TaskService, analyticsService ports.AnalyticsService, loc *time.Location) *BoardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BoardHandler{
		boardService:     boardService,
		taskService:      taskService,
		analyticsService: analyticsService,
		loc:              loc,
		now:              time.Now,
	}
}

func (h *BoardHandler) ListBoards(c *gin.Context) {
	boards, err := h.boardService.ListBoards(c.Request.Context())
	if err != nil {
		respondError(c, "failed to list boards", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBoardItems(boards))
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidBoardPayload)
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), principal(c), domain.CreateBoardInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, "failed to create board", err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToBoardItem(board))
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	var req dto.UpdateBoardRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidBoardPayload)
		return
	}

	patch, err := validation.BuildBoardPatch(req, raw)
	if err != nil {
		respondError(c, "failed to build board update", err)
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), principal(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, "failed to update board", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}

func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	if err := h.boardService.DeleteBoard(c.Request.Context(), principal(c), c.Param("id")); err != nil {
		respondError(c, "failed to delete board", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) CurrentBoard(c *gin.Context) {
	board, err := h.boardService.CurrentBoard(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, "failed to load current board", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}

func (h *BoardHandler) SetCurrentBoard(c *gin.Context) {
	var req dto.SetCurrentBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidBoardPayload)
		return
	}

	board, err := h.boardService.SetCurrentBoard(c.Request.Context(), principal(c), req.BoardID)
	if err != nil {
		respondError(c, "failed to switch board", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}

func (h *BoardHandler) ListBoardTasks(c *gin.Context) {
	tasks, err := h.taskService.ListBoardTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "failed to list board tasks", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.now()))
}

func (h *BoardHandler) BoardColumns(c *gin.Context) {
	columns, err := h.taskService.BoardColumns(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "failed to group board tasks", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskColumns(columns, h.now()))
}

func (h *BoardHandler) BoardAnalytics(c *gin.Context) {
	analytics, err := h.analyticsService.BoardAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "failed to compute board analytics", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBoardAnalytics(analytics))
}

// BoardCalendar defaults to the current month in the configured location.
func (h *BoardHandler) BoardCalendar(c *gin.Context) {
	now := h.now().In(h.loc)
	year, month := now.Year(), int(now.Month())

	if value := c.Query("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			respondBadRequest(c, apierrors.MsgInvalidMonth)
			return
		}
		year = parsed
	}
	if value := c.Query("month"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			respondBadRequest(c, apierrors.MsgInvalidMonth)
			return
		}
		month = parsed
	}

	calendar, err := h.analyticsService.CalendarMonth(c.Request.Context(), c.Param("id"), year, time.Month(month))
	if err != nil {
		respondError(c, "failed to build calendar", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCalendarMonth(calendar, now))
}
