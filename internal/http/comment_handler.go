package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "flowdesk.com/flowdesk/internal/data_models"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/http/validators"
	"flowdesk.com/flowdesk/internal/roles"
)

func (h *Handler) CreateComment(c echo.Context) error {
	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCommentRequest(&req); err != nil {
		return err
	}

	comment, err := h.comments.CreateComment(
		c.Request().Context(),
		middleware.CurrentTask(c),
		middleware.CurrentUser(c),
		req.Text,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

func (h *Handler) ListComments(c echo.Context) error {
	comments, err := h.comments.ListComments(c.Request().Context(), middleware.CurrentTask(c).ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(comments),
		"comments": comments,
	})
}

func (h *Handler) DeleteComment(c echo.Context) error {
	membership := middleware.CurrentMembership(c)
	err := h.comments.DeleteComment(
		c.Request().Context(),
		middleware.CurrentTask(c),
		c.Param("commentID"),
		middleware.CurrentUser(c),
		roles.Role(membership.Role),
	)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
