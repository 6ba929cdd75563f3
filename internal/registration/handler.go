package registration

import (
	"net/http"

	"metagym/internal/api"
	"metagym/internal/gym"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRequest is the wire form of one registration submission. The flat
// field names match the public registration form.
type RegisterRequest struct {
	GymName      string        `json:"gym_name" binding:"required"`
	Email        string        `json:"email" binding:"required"`
	Address      string        `json:"address" binding:"required"`
	ThemeColor   string        `json:"theme_color" binding:"required"`
	GymCode      string        `json:"gym_code" binding:"required"`
	LogoURL      string        `json:"logo_url"`
	Schedule     []DaySchedule `json:"schedule" binding:"required"`
	Acknowledged bool          `json:"acknowledged"`
}

// RegisterResponse is returned when a registration completes.
type RegisterResponse struct {
	GymID   int    `json:"gym_id"`
	GymName string `json:"gym_name"`
	Slug    string `json:"slug"`
}

// ValidationErrorResponse carries per-field validation messages.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (r RegisterRequest) toRegistrationData() GymRegistrationData {
	return GymRegistrationData{
		Gym: GymInformation{
			Name:     r.GymName,
			Address:  r.Address,
			Email:    r.Email,
			Theme:    Theme(r.ThemeColor),
			LogoURL:  r.LogoURL,
			Code:     r.GymCode,
			Schedule: r.Schedule,
		},
		Membership: MembershipAcknowledgement{
			Acknowledged: r.Acknowledged,
		},
	}
}

// Register godoc
// @Summary      Register a gym
// @Description  Creates a gym together with its administrator account and emails the temporary credentials.
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body registration.RegisterRequest true "Registration data"
// @Success      201 {object} registration.RegisterResponse
// @Failure      400 {object} registration.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	data := req.toRegistrationData()

	if !data.Membership.Acknowledged {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: map[string]string{"acknowledged": MsgMustAcknowledge},
		})
		return
	}

	if fieldErrors := data.Validate(); fieldErrors != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: fieldErrors,
		})
		return
	}

	outcome := h.service.Register(c.Request.Context(), data)
	if !outcome.Success {
		status := http.StatusInternalServerError
		if outcome.Error == gym.ErrDuplicateCode.Error() {
			status = http.StatusConflict
		}
		c.JSON(status, api.ErrorResponse{Error: outcome.Error})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		GymID:   outcome.GymID,
		GymName: outcome.GymName,
		Slug:    outcome.Slug,
	})
}
