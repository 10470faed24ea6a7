package v1

import (
	"net/http"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	validate  *validator.Validate
}

// NewContactHandler registers the contact route (public, no auth required).
// The rate limiter runs before the handler so abusive traffic is throttled
// before any validation work is spent on it.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, validate *validator.Validate, rateLimiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		validate:  validate,
	}

	public.POST("/contact", rateLimiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Accept one complete contact submission, verify it and notify the studio. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      429      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.Validation("Invalid request body", nil))
		return
	}

	// Server-side revalidation of the full payload. The client collected the
	// fields step by step, but nothing it claims is trusted here.
	if err := h.validate.Struct(&sub); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	if err := h.contactUC.Submit(c.Request.Context(), &sub, c.ClientIP()); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message sent successfully", nil)
}
