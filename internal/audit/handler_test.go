package audit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) RecordRegistration(ctx context.Context, gymName, email string, tenantID int) error {
	return m.Called(ctx, gymName, email, tenantID).Error(0)
}

func (m *MockRepository) ListRegistrations(ctx context.Context, tenantID int) ([]RegistrationRequest, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RegistrationRequest), args.Error(1)
}

func setupListRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(repo, 1)
	router.GET("/registration-requests", handler.ListRegistrationRequests)
	return router
}

func TestListRegistrationRequests(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListRegistrations", mock.Anything, 1).Return([]RegistrationRequest{
		{ID: 1, GymName: "Fit Center", Email: "a@b.com", TenantID: 1, Status: StatusCompleted, CreatedAt: time.Now()},
	}, nil)

	router := setupListRouter(repo)
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/registration-requests", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fit Center")
	assert.Contains(t, w.Body.String(), StatusCompleted)
	repo.AssertExpectations(t)
}

func TestListRegistrationRequestsError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListRegistrations", mock.Anything, 1).Return(nil, errors.New("database down"))

	router := setupListRouter(repo)
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/registration-requests", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
