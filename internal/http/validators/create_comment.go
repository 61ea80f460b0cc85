package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "flowdesk.com/flowdesk/internal/data_models"
)

func ValidateCommentRequest(r *dto.CommentRequest) error {
	if r.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	return nil
}
