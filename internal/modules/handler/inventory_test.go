package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

// MockConfigurationService is a mock implementation of service.ConfigurationService
type MockConfigurationService struct {
	mock.Mock
}

func (m *MockConfigurationService) GetTableConfiguration(ctx context.Context, tableID uuid.UUID) (*serializer.TopographicalTableTree, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.TopographicalTableTree), args.Error(1)
}

func (m *MockConfigurationService) GetTableTopics(ctx context.Context, tableID uuid.UUID) ([]serializer.TopicTree, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]serializer.TopicTree), args.Error(1)
}

func (m *MockConfigurationService) GetTopic(ctx context.Context, topicID uuid.UUID) (*serializer.TopicTree, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.TopicTree), args.Error(1)
}

func (m *MockConfigurationService) GetPresentation(ctx context.Context, presentationID uuid.UUID) (*serializer.PresentationTree, error) {
	args := m.Called(ctx, presentationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.PresentationTree), args.Error(1)
}

func (m *MockConfigurationService) GetTenants(ctx context.Context) ([]serializer.TenantTree, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]serializer.TenantTree), args.Error(1)
}

func (m *MockConfigurationService) GetRoom(ctx context.Context, roomID uuid.UUID, includeItems, includeTenant bool) (*serializer.RoomTree, error) {
	args := m.Called(ctx, roomID, includeItems, includeTenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.RoomTree), args.Error(1)
}

func setupInventoryRouter(cfg service.ConfigurationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewInventoryHandler(cfg, nil)
	r := gin.New()
	r.GET("/rooms/:id", h.GetRoom)
	return r
}

func TestGetRoomEmbedFlags(t *testing.T) {
	roomID := uuid.New()
	cases := []struct {
		name          string
		query         string
		includeItems  bool
		includeTenant bool
	}{
		{"defaults off", "", false, false},
		{"items requested", "?includeInventoryItems=true", true, false},
		{"tenant requested", "?includeTenant=true", false, true},
		{"bare flag stays off", "?includeInventoryItems", false, false},
		{"other values stay off", "?includeInventoryItems=1&includeTenant=yes", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := new(MockConfigurationService)
			cfg.On("GetRoom", mock.Anything, roomID, tc.includeItems, tc.includeTenant).
				Return(&serializer.RoomTree{}, nil)
			r := setupInventoryRouter(cfg)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/rooms/"+roomID.String()+tc.query, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			cfg.AssertExpectations(t)
		})
	}
}
