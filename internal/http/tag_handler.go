package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "flowdesk.com/flowdesk/internal/data_models"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/http/validators"
	model "flowdesk.com/flowdesk/internal/models"
)

// CreateTag returns 409 when the name is already taken in the
// workspace; the client surfaces that as a warning rather than a
// failure.
func (h *Handler) CreateTag(c echo.Context) error {
	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTagRequest(&req); err != nil {
		return err
	}

	tag, err := h.tags.CreateTag(c.Request().Context(), middleware.CurrentWorkspace(c), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tag)
}

func (h *Handler) ListTags(c echo.Context) error {
	tags, err := h.tags.ListTags(c.Request().Context(), middleware.CurrentWorkspace(c).ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tags),
		"tags":  tags,
	})
}

// DeleteTag operates on the tag resolved by the gate's generic object
// dispatch.
func (h *Handler) DeleteTag(c echo.Context) error {
	tag, ok := middleware.CurrentObject(c).(*model.Tag)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "tag not resolved")
	}

	if err := h.tags.DeleteTag(c.Request().Context(), tag.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
