package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

func newTimeSeriesServiceForTest(ts *MockTimeSeriesRepo, inv *MockInventoryRepo) TimeSeriesService {
	log := zap.NewNop()
	assembler := NewConfigurationService(inv, ts, new(MockPresentationRepo), new(MockMediaRepo), nil, log)
	return NewTimeSeriesService(ts, inv, assembler, nil, nil, log)
}

func TestLinkTopicPartialSuccess(t *testing.T) {
	ts := new(MockTimeSeriesRepo)
	inv := new(MockInventoryRepo)
	svc := newTimeSeriesServiceForTest(ts, inv)

	topic := &model.TopographicalTableTopic{ID: uuid.New(), Topic: "Trade"}
	valid, missing := uuid.New(), uuid.New()

	inv.On("Topic", mock.Anything, topic.ID).Return(topic, nil)
	ts.On("Get", mock.Anything, valid).Return(&model.TimeSeries{ID: valid}, nil)
	ts.On("Get", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)
	ts.On("Link", mock.Anything, topic.ID, valid).Return(nil)

	results, err := svc.LinkTopic(context.Background(), topic.ID, []uuid.UUID{valid, missing})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.NotEmpty(t, results[1].Error)
	ts.AssertNotCalled(t, "Link", mock.Anything, topic.ID, missing)
}

func TestLinkTopicUnknownTopic(t *testing.T) {
	ts := new(MockTimeSeriesRepo)
	inv := new(MockInventoryRepo)
	svc := newTimeSeriesServiceForTest(ts, inv)

	topicID := uuid.New()
	inv.On("Topic", mock.Anything, topicID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.LinkTopic(context.Background(), topicID, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlinkTopicIsIdempotent(t *testing.T) {
	ts := new(MockTimeSeriesRepo)
	inv := new(MockInventoryRepo)
	svc := newTimeSeriesServiceForTest(ts, inv)

	topic := &model.TopographicalTableTopic{ID: uuid.New()}
	seriesID := uuid.New()
	inv.On("Topic", mock.Anything, topic.ID).Return(topic, nil)
	ts.On("Unlink", mock.Anything, topic.ID, seriesID).Return(nil)

	// repeated unlink of the same pair keeps succeeding
	require.NoError(t, svc.UnlinkTopic(context.Background(), topic.ID, seriesID))
	require.NoError(t, svc.UnlinkTopic(context.Background(), topic.ID, seriesID))
}

func TestUpsertEventRejectsForeignGroup(t *testing.T) {
	ts := new(MockTimeSeriesRepo)
	inv := new(MockInventoryRepo)
	svc := newTimeSeriesServiceForTest(ts, inv)

	seriesID := uuid.New()
	ownGroup := model.GeoEventGroup{ID: uuid.New(), TimeSeriesID: seriesID}
	foreignGroup := uuid.New()

	ts.On("Get", mock.Anything, seriesID).Return(&model.TimeSeries{ID: seriesID}, nil)
	ts.On("GroupsBySeries", mock.Anything, seriesID).Return([]model.GeoEventGroup{ownGroup}, nil)

	_, err := svc.UpsertEvent(context.Background(), seriesID, UpsertEventInput{
		GroupID:  foreignGroup,
		Name:     "Foundation",
		DateTime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrGroupMismatch)
	ts.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestUpsertEventCreatesWithoutID(t *testing.T) {
	ts := new(MockTimeSeriesRepo)
	inv := new(MockInventoryRepo)
	svc := newTimeSeriesServiceForTest(ts, inv)

	seriesID := uuid.New()
	group := model.GeoEventGroup{ID: uuid.New(), TimeSeriesID: seriesID}

	ts.On("Get", mock.Anything, seriesID).Return(&model.TimeSeries{ID: seriesID}, nil)
	ts.On("GroupsBySeries", mock.Anything, seriesID).Return([]model.GeoEventGroup{group}, nil)
	ts.On("CreateEvent", mock.Anything, mock.AnythingOfType("*model.GeoEvent")).Return(nil)

	tree, err := svc.UpsertEvent(context.Background(), seriesID, UpsertEventInput{
		GroupID:   group.ID,
		Name:      "Foundation",
		DateTime:  time.Date(1200, 1, 1, 0, 0, 0, 0, time.UTC),
		Latitude:  48.1372,
		Longitude: 11.5756,
	})
	require.NoError(t, err)

	assert.Equal(t, "Foundation", tree.Name)
	assert.Equal(t, 48.1372, tree.Latitude)
	assert.Nil(t, tree.MultimediaPresentationID)
	ts.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything)
}

func TestUpsertEventUpdatesKnownID(t *testing.T) {
	ts := new(MockTimeSeriesRepo)
	inv := new(MockInventoryRepo)
	svc := newTimeSeriesServiceForTest(ts, inv)

	seriesID := uuid.New()
	group := model.GeoEventGroup{ID: uuid.New(), TimeSeriesID: seriesID}
	existing := &model.GeoEvent{ID: uuid.New(), GeoEventGroupID: group.ID, Name: "old name"}

	ts.On("Get", mock.Anything, seriesID).Return(&model.TimeSeries{ID: seriesID}, nil)
	ts.On("GroupsBySeries", mock.Anything, seriesID).Return([]model.GeoEventGroup{group}, nil)
	ts.On("Event", mock.Anything, existing.ID).Return(existing, nil)
	ts.On("UpdateEvent", mock.Anything, mock.AnythingOfType("*model.GeoEvent")).Return(nil)

	tree, err := svc.UpsertEvent(context.Background(), seriesID, UpsertEventInput{
		ID:       &existing.ID,
		GroupID:  group.ID,
		Name:     "new name",
		DateTime: time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, tree.ID)
	assert.Equal(t, "new name", tree.Name)
	ts.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestDeleteEventChecksOwnership(t *testing.T) {
	ts := new(MockTimeSeriesRepo)
	inv := new(MockInventoryRepo)
	svc := newTimeSeriesServiceForTest(ts, inv)

	seriesID := uuid.New()
	foreign := model.GeoEventGroup{ID: uuid.New(), TimeSeriesID: uuid.New()}
	event := &model.GeoEvent{ID: uuid.New(), GeoEventGroupID: foreign.ID}

	ts.On("Event", mock.Anything, event.ID).Return(event, nil)
	ts.On("GroupsBySeries", mock.Anything, seriesID).Return([]model.GeoEventGroup{}, nil)

	err := svc.DeleteEvent(context.Background(), seriesID, event.ID)
	assert.ErrorIs(t, err, ErrGroupMismatch)
	ts.AssertNotCalled(t, "DeleteEvent", mock.Anything, mock.Anything)
}
