package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/docdb-gateway/internal/api/dto"
	"github.com/unifiedui/docdb-gateway/internal/api/handlers"
	"github.com/unifiedui/docdb-gateway/internal/testutils"
	"github.com/unifiedui/docdb-gateway/internal/testutils/mocks"
)

func TestHealthHandler_Health_AllHealthy(t *testing.T) {
	// Setup
	mockCache := &mocks.MockCache{}
	mockDocDB := &mocks.MockDocDBClient{}

	mockCache.On("Ping", mock.Anything).Return(nil)
	mockDocDB.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(mockCache, mockDocDB)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.HealthResponse
	testutils.ParseJSONResponse(t, w, &response)

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Components["cache"])
	assert.Equal(t, "healthy", response.Components["docdb"])

	mockCache.AssertExpectations(t)
	mockDocDB.AssertExpectations(t)
}

func TestHealthHandler_Health_CacheDisabled(t *testing.T) {
	mockDocDB := &mocks.MockDocDBClient{}
	mockDocDB.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(nil, mockDocDB)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.HealthResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, "disabled", response.Components["cache"])
}

func TestHealthHandler_Health_CacheUnhealthy(t *testing.T) {
	mockCache := &mocks.MockCache{}
	mockDocDB := &mocks.MockDocDBClient{}

	mockCache.On("Ping", mock.Anything).Return(assert.AnError)
	mockDocDB.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(mockCache, mockDocDB)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	testutils.AssertStatusCode(t, http.StatusServiceUnavailable, w)

	var response dto.HealthResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "unhealthy", response.Components["cache"])
	assert.Equal(t, "healthy", response.Components["docdb"])
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{"docdb reachable", nil, http.StatusOK},
		{"docdb unreachable", assert.AnError, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDocDB := &mocks.MockDocDBClient{}
			mockDocDB.On("Ping", mock.Anything).Return(tt.pingErr)

			handler := handlers.NewHealthHandler(nil, mockDocDB)
			router := testutils.SetupTestRouter()
			router.GET("/ready", handler.Ready)

			w := testutils.PerformRequest(router, "GET", "/ready", nil, nil)
			testutils.AssertStatusCode(t, tt.wantStatus, w)
		})
	}
}

func TestHealthHandler_Live(t *testing.T) {
	handler := handlers.NewHealthHandler(nil, &mocks.MockDocDBClient{})

	router := testutils.SetupTestRouter()
	router.GET("/live", handler.Live)

	w := testutils.PerformRequest(router, "GET", "/live", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}
