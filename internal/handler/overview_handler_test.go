package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"retail-analytics/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOverviewService is a mock implementation of OverviewService.
type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) Summary(ctx context.Context) (*model.OverviewView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OverviewView), args.Error(1)
}

func TestOverviewHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	testView := &model.OverviewView{
		TotalProducts:  100,
		TotalCustomers: 200,
		TotalOrders:    500,
		TotalRevenue:   123456.78,
		TotalReviews:   300,
		AvgRating:      4.12,
	}

	tests := []struct {
		name           string
		method         string
		mockReturn     *model.OverviewView
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			mockReturn:     testView,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOverviewService)
			if tt.method == http.MethodGet {
				mockService.On("Summary", mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			h := NewOverviewHandler(mockService, logger)

			req := httptest.NewRequest(tt.method, "/api/overview", nil)
			w := httptest.NewRecorder()

			h.Get(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var got model.OverviewView
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *testView, got)
			}
		})
	}
}
