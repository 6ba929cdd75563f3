package registration

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"metagym/internal/gym"
)

func setupRegisterRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(svc)
	router.POST("/register", handler.Register)
	return router
}

func postRegister(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/register", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		GymName:      "Fit Center",
		Email:        "a@b.com",
		Address:      "123 Main St, Springfield",
		ThemeColor:   "blue",
		GymCode:      "FIT01",
		Schedule:     DefaultSchedule(),
		Acknowledged: true,
	}
}

// Scenario: a valid all-closed-week submission creates the gym and its
// administrator and returns the new identifiers.
func TestRegisterHandlerSuccess(t *testing.T) {
	f := newSagaFixture()
	f.gyms.On("Create", mock.Anything, mock.Anything).Return(createdGym(), nil)
	f.users.On("CreateAdmin", mock.Anything, mock.Anything).Return(createdAdmin(), nil)
	f.audit.On("RecordRegistration", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	router := setupRegisterRouter(f.svc)
	w := postRegister(t, router, validRegisterRequest())

	require.Equal(t, http.StatusCreated, w.Code)

	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.GymID)
	assert.Equal(t, "Fit Center", resp.GymName)
	assert.Equal(t, "FIT01", resp.Slug)

	// The temporary password never appears in the HTTP response.
	mailedPassword := f.mailer.Calls[0].Arguments.String(3)
	assert.NotContains(t, w.Body.String(), mailedPassword)

	f.users.AssertCalled(t, "CreateAdmin", mock.Anything, mock.Anything)
}

// Scenario: a lowercase gym code is rejected before any remote call.
func TestRegisterHandlerLowercaseCode(t *testing.T) {
	f := newSagaFixture()
	router := setupRegisterRouter(f.svc)

	req := validRegisterRequest()
	req.GymCode = "fit01"
	w := postRegister(t, router, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, MsgCodeCharset, resp.Fields["code"])

	f.gyms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Scenario: admin creation fails, the created gym is deleted and the
// failure surfaces to the caller.
func TestRegisterHandlerAdminFailureCompensates(t *testing.T) {
	f := newSagaFixture()
	f.gyms.On("Create", mock.Anything, mock.Anything).Return(createdGym(), nil)
	f.users.On("CreateAdmin", mock.Anything, mock.Anything).Return(nil, errors.New("identity provider timeout"))
	f.gyms.On("Delete", mock.Anything, 42).Return(nil)

	router := setupRegisterRouter(f.svc)
	w := postRegister(t, router, validRegisterRequest())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "user creation failed")

	f.gyms.AssertCalled(t, "Delete", mock.Anything, 42)
	f.gyms.AssertNumberOfCalls(t, "Delete", 1)
}

// Scenario: an inverted time range on an open day fails validation and the
// saga is never invoked.
func TestRegisterHandlerInvertedTimeRange(t *testing.T) {
	f := newSagaFixture()
	router := setupRegisterRouter(f.svc)

	req := validRegisterRequest()
	req.Schedule[0].IsOpen = true
	req.Schedule[0].TimeRanges = []TimeRange{{Start: "18:00", End: "09:00"}}
	w := postRegister(t, router, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), MsgEndBeforeStart)

	f.gyms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterHandlerDuplicateCode(t *testing.T) {
	f := newSagaFixture()
	f.gyms.On("Create", mock.Anything, mock.Anything).Return(nil, gym.ErrDuplicateCode)

	router := setupRegisterRouter(f.svc)
	w := postRegister(t, router, validRegisterRequest())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterHandlerUnacknowledged(t *testing.T) {
	f := newSagaFixture()
	router := setupRegisterRouter(f.svc)

	req := validRegisterRequest()
	req.Acknowledged = false
	w := postRegister(t, router, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), MsgMustAcknowledge)

	f.gyms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterHandlerBadJSON(t *testing.T) {
	f := newSagaFixture()
	router := setupRegisterRouter(f.svc)

	req, err := http.NewRequest("POST", "/register", bytes.NewBufferString(`{"gym_name":`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandlerMissingFields(t *testing.T) {
	f := newSagaFixture()
	router := setupRegisterRouter(f.svc)

	w := postRegister(t, router, map[string]interface{}{"gym_name": "Fit Center"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.gyms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
