package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

// MockTimeSeriesService is a mock implementation of service.TimeSeriesService
type MockTimeSeriesService struct {
	mock.Mock
}

func (m *MockTimeSeriesService) List(ctx context.Context) ([]service.TimeSeriesSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TimeSeriesSummary), args.Error(1)
}

func (m *MockTimeSeriesService) Get(ctx context.Context, id uuid.UUID) (*serializer.TimeSeriesTree, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.TimeSeriesTree), args.Error(1)
}

func (m *MockTimeSeriesService) LinkTopic(ctx context.Context, topicID uuid.UUID, seriesIDs []uuid.UUID) ([]service.LinkResult, error) {
	args := m.Called(ctx, topicID, seriesIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.LinkResult), args.Error(1)
}

func (m *MockTimeSeriesService) UnlinkTopic(ctx context.Context, topicID, seriesID uuid.UUID) error {
	args := m.Called(ctx, topicID, seriesID)
	return args.Error(0)
}

func (m *MockTimeSeriesService) UpsertEvent(ctx context.Context, seriesID uuid.UUID, in service.UpsertEventInput) (*serializer.GeoEventTree, error) {
	args := m.Called(ctx, seriesID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.GeoEventTree), args.Error(1)
}

func (m *MockTimeSeriesService) DeleteEvent(ctx context.Context, seriesID, eventID uuid.UUID) error {
	args := m.Called(ctx, seriesID, eventID)
	return args.Error(0)
}

func setupTimeSeriesRouter(svc service.TimeSeriesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTimeSeriesHandler(svc)
	r := gin.New()
	r.POST("/topics/:id/link-time-series", h.LinkTimeSeries)
	r.POST("/time-series/:id/events", h.UpsertGeoEvent)
	return r
}

func TestLinkTimeSeriesReportsOverallSuccess(t *testing.T) {
	svc := new(MockTimeSeriesService)
	r := setupTimeSeriesRouter(svc)

	topicID := uuid.New()
	good, bad := uuid.New(), uuid.New()
	svc.On("LinkTopic", mock.Anything, topicID, []uuid.UUID{good, bad}).Return([]service.LinkResult{
		{TimeSeriesID: good, Success: true},
		{TimeSeriesID: bad, Success: false, Error: "time series not found"},
	}, nil)

	raw, _ := json.Marshal(map[string]any{"timeSeriesIds": []string{good.String(), bad.String()}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/topics/"+topicID.String()+"/link-time-series", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data LinkTimeSeriesResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Data.Success)
	require.Len(t, res.Data.Results, 2)
	assert.True(t, res.Data.Results[0].Success)
	assert.False(t, res.Data.Results[1].Success)
}

func TestLinkTimeSeriesRequiresIDs(t *testing.T) {
	svc := new(MockTimeSeriesService)
	r := setupTimeSeriesRouter(svc)

	raw := []byte(`{"timeSeriesIds":[]}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/topics/"+uuid.NewString()+"/link-time-series", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "LinkTopic", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpsertGeoEventGroupMismatchIs400(t *testing.T) {
	svc := new(MockTimeSeriesService)
	r := setupTimeSeriesRouter(svc)

	seriesID := uuid.New()
	svc.On("UpsertEvent", mock.Anything, seriesID, mock.AnythingOfType("service.UpsertEventInput")).
		Return(nil, service.ErrGroupMismatch)

	raw, _ := json.Marshal(map[string]any{
		"groupId":  uuid.NewString(),
		"name":     "Flood",
		"dateTime": "1342-07-21T00:00:00Z",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/time-series/"+seriesID.String()+"/events", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsertGeoEventBindsGroupID(t *testing.T) {
	svc := new(MockTimeSeriesService)
	r := setupTimeSeriesRouter(svc)

	seriesID, groupID := uuid.New(), uuid.New()
	var captured service.UpsertEventInput
	svc.On("UpsertEvent", mock.Anything, seriesID, mock.AnythingOfType("service.UpsertEventInput")).
		Run(func(args mock.Arguments) { captured = args.Get(2).(service.UpsertEventInput) }).
		Return(&serializer.GeoEventTree{}, nil)

	raw, _ := json.Marshal(map[string]any{
		"groupId":  groupID.String(),
		"name":     "Flood",
		"dateTime": "1342-07-21T00:00:00Z",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/time-series/"+seriesID.String()+"/events", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, groupID, captured.GroupID)
}
