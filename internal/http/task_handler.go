package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"flowdesk.com/flowdesk/internal/constants"
	dto "flowdesk.com/flowdesk/internal/data_models"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/http/validators"
	"flowdesk.com/flowdesk/internal/logging"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(
		c.Request().Context(),
		middleware.CurrentList(c),
		middleware.CurrentUser(c),
		req.Title,
		req.Description,
		constants.TaskPriority(req.Priority),
		req.Deadline,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.tasks.GetTask(c.Request().Context(), middleware.CurrentTask(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	task := middleware.CurrentTask(c)
	if err := h.tasks.UpdateTask(c.Request().Context(), task, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.tasks.DeleteTask(c.Request().Context(), middleware.CurrentTask(c).ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReorderTasks applies a drag-and-drop move batch for the board's
// tasks, including moves between its lists.
func (h *Handler) ReorderTasks(c echo.Context) error {
	var req dto.ReorderTasksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	board := middleware.CurrentBoard(c)
	if err := h.tasks.ReorderTasks(c.Request().Context(), board.ID, req.Moves); err != nil {
		return err
	}

	logging.Logger.Infof("applied %d task moves on board %s", len(req.Moves), board.ID)
	return c.NoContent(http.StatusNoContent)
}

// TaskGraph returns the blocking-relation graph around the task for
// the visualization widget.
func (h *Handler) TaskGraph(c echo.Context) error {
	graph, err := h.graphs.BuildTaskGraph(
		c.Request().Context(),
		middleware.CurrentTask(c),
		middleware.CurrentWorkspace(c).ID,
		middleware.CurrentBoard(c).ID,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, graph)
}

func (h *Handler) AddBlocker(c echo.Context) error {
	err := h.tasks.AddBlocker(
		c.Request().Context(),
		middleware.CurrentWorkspace(c).ID,
		middleware.CurrentTask(c),
		c.Param("blockerID"),
	)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RemoveBlocker(c echo.Context) error {
	err := h.tasks.RemoveBlocker(
		c.Request().Context(),
		middleware.CurrentWorkspace(c).ID,
		middleware.CurrentTask(c),
		c.Param("blockerID"),
	)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AssignTask(c echo.Context) error {
	err := h.tasks.AssignTask(
		c.Request().Context(),
		middleware.CurrentWorkspace(c).ID,
		middleware.CurrentTask(c),
		c.Param("userID"),
	)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UnassignTask(c echo.Context) error {
	err := h.tasks.UnassignTask(
		c.Request().Context(),
		middleware.CurrentWorkspace(c).ID,
		middleware.CurrentTask(c),
		c.Param("userID"),
	)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) TagTask(c echo.Context) error {
	err := h.tasks.TagTask(
		c.Request().Context(),
		middleware.CurrentWorkspace(c).ID,
		middleware.CurrentTask(c),
		c.Param("tagID"),
	)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UntagTask(c echo.Context) error {
	err := h.tasks.UntagTask(
		c.Request().Context(),
		middleware.CurrentWorkspace(c).ID,
		middleware.CurrentTask(c),
		c.Param("tagID"),
	)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
