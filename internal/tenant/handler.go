package tenant

import (
	"net/http"

	"metagym/internal/api"
	"metagym/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store    Store
	resolver *Resolver
}

func NewHandler(store Store, resolver *Resolver) *Handler {
	return &Handler{store: store, resolver: resolver}
}

// CurrentGymResponse carries the user's current gym selection.
type CurrentGymResponse struct {
	GymID string `json:"gym_id"`
}

// SetCurrentGymRequest selects a gym for the current user.
type SetCurrentGymRequest struct {
	GymID string `json:"gym_id" binding:"required"`
}

// GetCurrentGym godoc
// @Summary      Get current gym selection
// @Tags         me
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} tenant.CurrentGymResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /me/current-gym [get]
func (h *Handler) GetCurrentGym(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	gymID, err := h.store.Load(c.Request.Context(), userID)
	if err != nil {
		if err == ErrNoCurrentGym {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No current gym selected"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load current gym"})
		return
	}

	c.JSON(http.StatusOK, CurrentGymResponse{GymID: gymID})
}

// SetCurrentGym godoc
// @Summary      Set current gym selection
// @Tags         me
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body tenant.SetCurrentGymRequest true "Gym selection"
// @Success      200 {object} tenant.CurrentGymResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /me/current-gym [put]
func (h *Handler) SetCurrentGym(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req SetCurrentGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "gym_id is required"})
		return
	}

	if err := h.store.Save(c.Request.Context(), userID, req.GymID); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save current gym"})
		return
	}

	c.JSON(http.StatusOK, CurrentGymResponse{GymID: req.GymID})
}

// ClearCurrentGym godoc
// @Summary      Clear current gym selection
// @Tags         me
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} api.MessageResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /me/current-gym [delete]
func (h *Handler) ClearCurrentGym(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.store.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to clear current gym"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Current gym cleared"})
}

// ResolvedGymResponse carries the gym id the resolver settled on.
type ResolvedGymResponse struct {
	GymID int `json:"gym_id"`
}

// ResolveGym godoc
// @Summary      Resolve the user's gym
// @Description  Determines the user's gym from the profile, token, gym name and stored selection, and refreshes the stored selection.
// @Tags         me
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} tenant.ResolvedGymResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /me/gym [get]
func (h *Handler) ResolveGym(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	claims, _ := auth.GetClaims(c)

	gymID, err := h.resolver.ResolveAndRefresh(c.Request.Context(), userID, claims)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No gym associated with this user"})
		return
	}

	c.JSON(http.StatusOK, ResolvedGymResponse{GymID: gymID})
}
