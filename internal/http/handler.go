package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	"flowdesk.com/flowdesk/internal/services"
)

type Handler struct {
	auth       *services.AuthService
	invites    *services.InviteService
	workspaces *services.WorkspaceService
	boards     *services.BoardService
	lists      *services.ListService
	tasks      *services.TaskService
	graphs     *services.TaskGraphService
	tags       *services.TagService
	comments   *services.CommentService
}

func NewHandler(
	auth *services.AuthService,
	invites *services.InviteService,
	workspaces *services.WorkspaceService,
	boards *services.BoardService,
	lists *services.ListService,
	tasks *services.TaskService,
	graphs *services.TaskGraphService,
	tags *services.TagService,
	comments *services.CommentService,
) *Handler {
	return &Handler{
		auth:       auth,
		invites:    invites,
		workspaces: workspaces,
		boards:     boards,
		lists:      lists,
		tasks:      tasks,
		graphs:     graphs,
		tags:       tags,
		comments:   comments,
	}
}

// ErrorHandler renders Exception errors with their status and hides
// everything else behind a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, echo.Map{"error": httpErr.Message})
		return
	}

	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.StatusCode, echo.Map{"error": appErr.Message})
		return
	}

	_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
