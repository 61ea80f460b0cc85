package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "flowdesk.com/flowdesk/internal/data_models"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/http/validators"
	"flowdesk.com/flowdesk/internal/logging"
)

func (h *Handler) CreateList(c echo.Context) error {
	var req dto.ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateListRequest(&req); err != nil {
		return err
	}

	list, err := h.lists.CreateList(c.Request().Context(), middleware.CurrentBoard(c), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, list)
}

func (h *Handler) UpdateList(c echo.Context) error {
	var req dto.ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateListRequest(&req); err != nil {
		return err
	}

	list := middleware.CurrentList(c)
	if err := h.lists.RenameList(c.Request().Context(), list, req.Name); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) DeleteList(c echo.Context) error {
	if err := h.lists.DeleteList(c.Request().Context(), middleware.CurrentList(c).ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReorderLists applies a drag-and-drop ordering batch for the board's
// lists.
func (h *Handler) ReorderLists(c echo.Context) error {
	var req dto.ReorderListsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	board := middleware.CurrentBoard(c)
	if err := h.lists.ReorderLists(c.Request().Context(), board.ID, req.Order); err != nil {
		return err
	}

	logging.Logger.Infof("reordered %d lists on board %s", len(req.Order), board.ID)
	return c.NoContent(http.StatusNoContent)
}
