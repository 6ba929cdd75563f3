package routine

import (
	"net/http"
	"strconv"

	"metagym/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo     Repository
	tenantID int
}

func NewHandler(repo Repository, tenantID int) *Handler {
	return &Handler{repo: repo, tenantID: tenantID}
}

// ListRoutines godoc
// @Summary      List routines
// @Description  Returns routines with their ordered exercise slots.
// @Tags         routines
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} routine.RoutineWithExercises
// @Failure      500 {object} api.ErrorResponse
// @Router       /routines [get]
func (h *Handler) ListRoutines(c *gin.Context) {
	routines, err := h.repo.List(c.Request.Context(), h.tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch routines"})
		return
	}

	c.JSON(http.StatusOK, routines)
}

// GetRoutine godoc
// @Summary      Get routine
// @Tags         routines
// @Security     BearerAuth
// @Produce      json
// @Param        routineID path int true "Routine ID"
// @Success      200 {object} routine.RoutineWithExercises
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /routines/{routineID} [get]
func (h *Handler) GetRoutine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("routineID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid routine ID"})
		return
	}

	rt, err := h.repo.GetByID(c.Request.Context(), h.tenantID, id)
	if err != nil {
		if err == ErrRoutineNotFound {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Routine not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch routine"})
		return
	}

	c.JSON(http.StatusOK, rt)
}

// CreateRoutine godoc
// @Summary      Create routine
// @Tags         routines
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body routine.CreateRoutineRequest true "Routine data"
// @Success      201 {object} routine.RoutineWithExercises
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /routines [post]
func (h *Handler) CreateRoutine(c *gin.Context) {
	var req CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		return
	}

	rt, err := h.repo.Create(c.Request.Context(), h.tenantID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create routine"})
		return
	}

	c.JSON(http.StatusCreated, rt)
}

// UpdateRoutine godoc
// @Summary      Update routine
// @Tags         routines
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        routineID path int true "Routine ID"
// @Param        request body routine.UpdateRoutineRequest true "Fields to update"
// @Success      200 {object} routine.RoutineWithExercises
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /routines/{routineID} [patch]
func (h *Handler) UpdateRoutine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("routineID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid routine ID"})
		return
	}

	var req UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		return
	}

	rt, err := h.repo.Update(c.Request.Context(), h.tenantID, id, req)
	if err != nil {
		if err == ErrRoutineNotFound {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Routine not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update routine"})
		return
	}

	c.JSON(http.StatusOK, rt)
}

// DeleteRoutine godoc
// @Summary      Delete routine
// @Tags         routines
// @Security     BearerAuth
// @Produce      json
// @Param        routineID path int true "Routine ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /routines/{routineID} [delete]
func (h *Handler) DeleteRoutine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("routineID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid routine ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), h.tenantID, id); err != nil {
		if err == ErrRoutineNotFound {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Routine not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete routine"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Routine deleted"})
}
