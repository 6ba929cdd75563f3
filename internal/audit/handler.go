package audit

import (
	"net/http"

	"metagym/internal/api"
	"metagym/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo     Repository
	tenantID int
}

func NewHandler(repo Repository, tenantID int) *Handler {
	return &Handler{repo: repo, tenantID: tenantID}
}

// ListRegistrationRequests godoc
// @Summary      List registration requests
// @Description  Audit trail of completed gym registrations for this tenant
// @Tags         registration
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} audit.RegistrationRequest
// @Failure      500 {object} api.ErrorResponse
// @Router       /registration-requests [get]
func (h *Handler) ListRegistrationRequests(c *gin.Context) {
	requests, err := h.repo.ListRegistrations(c.Request.Context(), h.tenantID)
	if err != nil {
		logger.Error("Failed to list registration requests", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch registration requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
