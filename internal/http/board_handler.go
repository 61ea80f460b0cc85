package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "flowdesk.com/flowdesk/internal/data_models"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/http/validators"
)

func (h *Handler) CreateBoard(c echo.Context) error {
	var req dto.BoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateBoardRequest(&req); err != nil {
		return err
	}

	board, err := h.boards.CreateBoard(c.Request().Context(), middleware.CurrentWorkspace(c), req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, board)
}

func (h *Handler) GetBoard(c echo.Context) error {
	board, err := h.boards.GetBoard(c.Request().Context(), middleware.CurrentBoard(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

func (h *Handler) UpdateBoard(c echo.Context) error {
	var req dto.BoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateBoardRequest(&req); err != nil {
		return err
	}

	board := middleware.CurrentBoard(c)
	if err := h.boards.UpdateBoard(c.Request().Context(), board, req.Name, req.Description); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, board)
}

func (h *Handler) DeleteBoard(c echo.Context) error {
	if err := h.boards.DeleteBoard(c.Request().Context(), middleware.CurrentBoard(c).ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
