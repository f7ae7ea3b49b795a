package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/repo"
)

// MockInventoryRepo is a mock implementation of repo.InventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Tenants(ctx context.Context) ([]model.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tenant), args.Error(1)
}

func (m *MockInventoryRepo) Tenant(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockInventoryRepo) Rooms(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *MockInventoryRepo) Room(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Room), args.Error(1)
}

func (m *MockInventoryRepo) RoomsByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Room, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *MockInventoryRepo) ItemsByRoom(ctx context.Context, roomID uuid.UUID) ([]model.InventoryItem, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepo) Item(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepo) CreateItem(ctx context.Context, item *model.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepo) UpdateItem(ctx context.Context, item *model.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepo) Table(ctx context.Context, id uuid.UUID) (*model.TopographicalTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TopographicalTable), args.Error(1)
}

func (m *MockInventoryRepo) TopicsByTable(ctx context.Context, tableID uuid.UUID) ([]model.TopographicalTableTopic, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TopographicalTableTopic), args.Error(1)
}

func (m *MockInventoryRepo) Topic(ctx context.Context, id uuid.UUID) (*model.TopographicalTableTopic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TopographicalTableTopic), args.Error(1)
}

// MockTimeSeriesRepo is a mock implementation of repo.TimeSeriesRepo
type MockTimeSeriesRepo struct {
	mock.Mock
}

func (m *MockTimeSeriesRepo) List(ctx context.Context) ([]model.TimeSeries, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeSeries), args.Error(1)
}

func (m *MockTimeSeriesRepo) Get(ctx context.Context, id uuid.UUID) (*model.TimeSeries, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TimeSeries), args.Error(1)
}

func (m *MockTimeSeriesRepo) SeriesByTopic(ctx context.Context, topicID uuid.UUID) ([]model.TimeSeries, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeSeries), args.Error(1)
}

func (m *MockTimeSeriesRepo) GroupsBySeries(ctx context.Context, seriesID uuid.UUID) ([]model.GeoEventGroup, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeoEventGroup), args.Error(1)
}

func (m *MockTimeSeriesRepo) EventsByGroup(ctx context.Context, groupID uuid.UUID) ([]model.GeoEvent, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeoEvent), args.Error(1)
}

func (m *MockTimeSeriesRepo) Event(ctx context.Context, id uuid.UUID) (*model.GeoEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeoEvent), args.Error(1)
}

func (m *MockTimeSeriesRepo) CreateEvent(ctx context.Context, ev *model.GeoEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockTimeSeriesRepo) UpdateEvent(ctx context.Context, ev *model.GeoEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockTimeSeriesRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTimeSeriesRepo) Link(ctx context.Context, topicID, seriesID uuid.UUID) error {
	args := m.Called(ctx, topicID, seriesID)
	return args.Error(0)
}

func (m *MockTimeSeriesRepo) Unlink(ctx context.Context, topicID, seriesID uuid.UUID) error {
	args := m.Called(ctx, topicID, seriesID)
	return args.Error(0)
}

// MockPresentationRepo is a mock implementation of repo.PresentationRepo
type MockPresentationRepo struct {
	mock.Mock
}

func (m *MockPresentationRepo) ListWithCounts(ctx context.Context) ([]repo.PresentationWithCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.PresentationWithCounts), args.Error(1)
}

func (m *MockPresentationRepo) Get(ctx context.Context, id uuid.UUID) (*model.MultimediaPresentation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MultimediaPresentation), args.Error(1)
}

func (m *MockPresentationRepo) Create(ctx context.Context, p *model.MultimediaPresentation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPresentationRepo) ItemsByPresentation(ctx context.Context, presentationID uuid.UUID) ([]model.PresentationItem, error) {
	args := m.Called(ctx, presentationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PresentationItem), args.Error(1)
}

func (m *MockPresentationRepo) ReconcileItems(ctx context.Context, presentationID uuid.UUID, cs repo.ItemChangeSet) error {
	args := m.Called(ctx, presentationID, cs)
	return args.Error(0)
}

// MockMediaRepo is a mock implementation of repo.MediaRepo
type MockMediaRepo struct {
	mock.Mock
}

func (m *MockMediaRepo) List(ctx context.Context) ([]model.MediaFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaFile), args.Error(1)
}

func (m *MockMediaRepo) Get(ctx context.Context, id uuid.UUID) (*model.MediaFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaFile), args.Error(1)
}

func (m *MockMediaRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.MediaFile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaFile), args.Error(1)
}

func (m *MockMediaRepo) Create(ctx context.Context, f *model.MediaFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockMediaRepo) Update(ctx context.Context, f *model.MediaFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockMediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
