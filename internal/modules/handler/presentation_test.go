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

// MockPresentationService is a mock implementation of service.PresentationService
type MockPresentationService struct {
	mock.Mock
}

func (m *MockPresentationService) List(ctx context.Context) ([]service.PresentationSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PresentationSummary), args.Error(1)
}

func (m *MockPresentationService) Create(ctx context.Context, in service.CreatePresentationInput) (*serializer.PresentationTree, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.PresentationTree), args.Error(1)
}

func (m *MockPresentationService) Get(ctx context.Context, id uuid.UUID) (*serializer.PresentationTree, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.PresentationTree), args.Error(1)
}

func (m *MockPresentationService) UpdateWithItems(ctx context.Context, id uuid.UUID, in service.UpdatePresentationInput) (*serializer.PresentationTree, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.PresentationTree), args.Error(1)
}

func setupPresentationRouter(svc service.PresentationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPresentationHandler(svc)
	r := gin.New()
	r.GET("/presentations/:id", h.GetPresentation)
	r.PUT("/presentations/:id/update-with-items", h.UpdateWithItems)
	return r
}

func TestGetPresentationOK(t *testing.T) {
	svc := new(MockPresentationService)
	r := setupPresentationRouter(svc)

	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(&serializer.PresentationTree{
		ID:    id,
		Name:  "Intro loop",
		Items: []serializer.PresentationItemTree{},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/presentations/"+id.String(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data serializer.PresentationTree `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Intro loop", res.Data.Name)
	assert.NotNil(t, res.Data.Items)
}

func TestGetPresentationNotFound(t *testing.T) {
	svc := new(MockPresentationService)
	r := setupPresentationRouter(svc)

	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/presentations/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPresentationMalformedID(t *testing.T) {
	svc := new(MockPresentationService)
	r := setupPresentationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/presentations/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateWithItemsMapsPlaceholderIDs(t *testing.T) {
	svc := new(MockPresentationService)
	r := setupPresentationRouter(svc)

	id := uuid.New()
	existingItem := uuid.New()
	mediaID := uuid.New()

	var captured service.UpdatePresentationInput
	svc.On("UpdateWithItems", mock.Anything, id, mock.AnythingOfType("service.UpdatePresentationInput")).
		Run(func(args mock.Arguments) { captured = args.Get(2).(service.UpdatePresentationInput) }).
		Return(&serializer.PresentationTree{ID: id, Items: []serializer.PresentationItemTree{}}, nil)

	body := map[string]any{
		"name": "Updated loop",
		"presentationItems": []map[string]any{
			{"id": existingItem.String(), "slotNumber": 0, "mediaFile": map[string]any{"id": mediaID.String()}},
			{"id": "new-1724322", "slotNumber": 0, "mediaFile": map[string]any{"id": mediaID.String()}},
		},
	}
	raw, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/presentations/"+id.String()+"/update-with-items", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured.Name)
	assert.Equal(t, "Updated loop", *captured.Name)
	require.Len(t, captured.Items, 2)

	// stored ids pass through, editor placeholders become nil (create)
	require.NotNil(t, captured.Items[0].ID)
	assert.Equal(t, existingItem, *captured.Items[0].ID)
	assert.Nil(t, captured.Items[1].ID)
	assert.Equal(t, mediaID, *captured.Items[1].MediaFileID)
}
