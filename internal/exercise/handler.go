package exercise

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

// ListExercises godoc
// @Summary      List exercises
// @Tags         exercises
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} exercise.Exercise
// @Failure      500 {object} api.ErrorResponse
// @Router       /exercises [get]
func (h *Handler) ListExercises(c *gin.Context) {
	exercises, err := h.repo.List(c.Request.Context(), h.tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch exercises"})
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// CreateExercise godoc
// @Summary      Create exercise
// @Tags         exercises
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body exercise.CreateExerciseRequest true "Exercise data"
// @Success      201 {object} exercise.Exercise
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /exercises [post]
func (h *Handler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		return
	}

	ex, err := h.repo.Create(c.Request.Context(), h.tenantID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create exercise"})
		return
	}

	c.JSON(http.StatusCreated, ex)
}

// UpdateExercise godoc
// @Summary      Update exercise
// @Tags         exercises
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        exerciseID path int true "Exercise ID"
// @Param        request body exercise.UpdateExerciseRequest true "Fields to update"
// @Success      200 {object} exercise.Exercise
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /exercises/{exerciseID} [patch]
func (h *Handler) UpdateExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("exerciseID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid exercise ID"})
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		return
	}

	ex, err := h.repo.Update(c.Request.Context(), h.tenantID, id, req)
	if err != nil {
		if err == ErrExerciseNotFound {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update exercise"})
		return
	}

	c.JSON(http.StatusOK, ex)
}

// DeleteExercise godoc
// @Summary      Delete exercise
// @Tags         exercises
// @Security     BearerAuth
// @Produce      json
// @Param        exerciseID path int true "Exercise ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /exercises/{exerciseID} [delete]
func (h *Handler) DeleteExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("exerciseID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid exercise ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), h.tenantID, id); err != nil {
		if err == ErrExerciseNotFound {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete exercise"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Exercise deleted"})
}
