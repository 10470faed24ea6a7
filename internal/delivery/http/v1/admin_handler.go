package v1

import (
	"net/http"
	"strconv"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	contactUC domain.ContactUsecase
}

// NewAdminHandler registers the archived-submission routes behind the admin
// auth middleware applied on the group.
func NewAdminHandler(admin *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &AdminHandler{
		contactUC: contactUC,
	}

	admin.GET("/submissions", handler.ListSubmissions)
}

// ListSubmissions godoc
// @Summary      List Archived Submissions
// @Description  Returns archived contact submissions, newest first. Requires an admin bearer token.
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of submissions (default 50)"
// @Success      200    {object}  response.SuccessBody
// @Failure      401    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}

	subs, err := h.contactUC.ListArchived(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Submissions retrieved", subs)
}
