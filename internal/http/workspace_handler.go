package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "flowdesk.com/flowdesk/internal/data_models"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/http/validators"
	"flowdesk.com/flowdesk/internal/logging"
)

func (h *Handler) CreateWorkspace(c echo.Context) error {
	var req dto.WorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateWorkspaceRequest(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	workspace, err := h.workspaces.CreateWorkspace(c.Request().Context(), user, req.Name, req.Description)
	if err != nil {
		return err
	}

	logging.Logger.Infof("workspace %s created by %s", workspace.ID, user.Username)
	return c.JSON(http.StatusCreated, workspace)
}

func (h *Handler) ListWorkspaces(c echo.Context) error {
	workspaces, err := h.workspaces.ListWorkspaces(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":      len(workspaces),
		"workspaces": workspaces,
	})
}

func (h *Handler) GetWorkspace(c echo.Context) error {
	workspace, err := h.workspaces.GetWorkspace(c.Request().Context(), middleware.CurrentWorkspace(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workspace)
}

func (h *Handler) UpdateWorkspace(c echo.Context) error {
	var req dto.WorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateWorkspaceRequest(&req); err != nil {
		return err
	}

	workspace := middleware.CurrentWorkspace(c)
	if err := h.workspaces.UpdateWorkspace(c.Request().Context(), workspace, req.Name, req.Description); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, workspace)
}

func (h *Handler) DeleteWorkspace(c echo.Context) error {
	workspace := middleware.CurrentWorkspace(c)
	if err := h.workspaces.DeleteWorkspace(c.Request().Context(), workspace.ID); err != nil {
		return err
	}

	logging.Logger.Infof("workspace %s deleted", workspace.ID)
	return c.NoContent(http.StatusNoContent)
}
