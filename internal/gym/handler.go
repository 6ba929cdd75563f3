package gym

import (
	"errors"
	"net/http"
	"strconv"

	"metagym/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  Service
	tenantID int
}

func NewHandler(service Service, tenantID int) *Handler {
	return &Handler{
		service:  service,
		tenantID: tenantID,
	}
}

// @Summary      List gyms
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	ctx := c.Request.Context()
	gyms, err := h.service.ListGyms(ctx, h.tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Get a gym profile
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms/{gymID} [get]
func (h *Handler) GetGym(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	ctx := c.Request.Context()
	gym, err := h.service.GetGym(ctx, gymID)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gym"})
		return
	}

	c.JSON(http.StatusOK, gym)
}

// @Summary      Update a gym profile
// @Description  Admin-only: update name, address, email, logo, theme or schedule
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Param        request body gym.UpdateGymParams true "Profile changes"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms/{gymID} [patch]
func (h *Handler) UpdateGym(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	var params UpdateGymParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	gym, err := h.service.UpdateGym(ctx, h.tenantID, gymID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		case errors.Is(err, ErrWrongTenant):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Gym belongs to a different tenant"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update gym"})
		}
		return
	}

	c.JSON(http.StatusOK, gym)
}
