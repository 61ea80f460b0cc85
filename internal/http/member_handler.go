package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "flowdesk.com/flowdesk/internal/data_models"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/logging"
)

func (h *Handler) ListMembers(c echo.Context) error {
	members, err := h.workspaces.ListMembers(c.Request().Context(), middleware.CurrentWorkspace(c).ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(members),
		"members": members,
	})
}

func (h *Handler) UpdateMemberRole(c echo.Context) error {
	var req dto.MemberRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	workspace := middleware.CurrentWorkspace(c)
	userID := c.Param("userID")
	if err := h.workspaces.UpdateMemberRole(c.Request().Context(), workspace.ID, userID, req.Role); err != nil {
		return err
	}

	logging.Logger.Infof("member %s in workspace %s set to role %s", userID, workspace.ID, req.Role)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RemoveMember(c echo.Context) error {
	workspace := middleware.CurrentWorkspace(c)
	userID := c.Param("userID")
	if err := h.workspaces.RemoveMember(c.Request().Context(), workspace.ID, userID); err != nil {
		return err
	}

	logging.Logger.Infof("member %s removed from workspace %s", userID, workspace.ID)
	return c.NoContent(http.StatusNoContent)
}

// CreateInvite issues a join link bound to the invited user.
func (h *Handler) CreateInvite(c echo.Context) error {
	var req dto.InviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	invited, err := h.auth.GetUser(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	link, err := h.invites.GenerateInviteLink(middleware.CurrentWorkspace(c), invited)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"invite_link": link})
}

// JoinWorkspace redeems an invite token for the requesting user.
func (h *Handler) JoinWorkspace(c echo.Context) error {
	var req dto.JoinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Token == "" {
		req.Token = c.QueryParam("token")
	}

	user := middleware.CurrentUser(c)
	workspace, err := h.invites.Join(c.Request().Context(), req.Token, user)
	if err != nil {
		return err
	}

	logging.Logger.Infof("user %s joined workspace %s", user.Username, workspace.ID)
	return c.JSON(http.StatusOK, workspace)
}
