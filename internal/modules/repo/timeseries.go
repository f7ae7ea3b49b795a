package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

type TimeSeriesRepo interface {
	List(ctx context.Context) ([]model.TimeSeries, error)
	Get(ctx context.Context, id uuid.UUID) (*model.TimeSeries, error)
	SeriesByTopic(ctx context.Context, topicID uuid.UUID) ([]model.TimeSeries, error)
	GroupsBySeries(ctx context.Context, seriesID uuid.UUID) ([]model.GeoEventGroup, error)
	EventsByGroup(ctx context.Context, groupID uuid.UUID) ([]model.GeoEvent, error)
	Event(ctx context.Context, id uuid.UUID) (*model.GeoEvent, error)
	CreateEvent(ctx context.Context, ev *model.GeoEvent) error
	UpdateEvent(ctx context.Context, ev *model.GeoEvent) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	Link(ctx context.Context, topicID, seriesID uuid.UUID) error
	Unlink(ctx context.Context, topicID, seriesID uuid.UUID) error
}

type timeSeriesRepo struct{ db *gorm.DB }

func NewTimeSeriesRepo(db *gorm.DB) TimeSeriesRepo {
	return &timeSeriesRepo{db: db}
}

func (r *timeSeriesRepo) List(ctx context.Context) ([]model.TimeSeries, error) {
	var series []model.TimeSeries
	return series, r.db.WithContext(ctx).Order("name").Find(&series).Error
}

func (r *timeSeriesRepo) Get(ctx context.Context, id uuid.UUID) (*model.TimeSeries, error) {
	ts := &model.TimeSeries{}
	return ts, r.db.WithContext(ctx).Where("id = ?", id).First(ts).Error
}

func (r *timeSeriesRepo) SeriesByTopic(ctx context.Context, topicID uuid.UUID) ([]model.TimeSeries, error) {
	var series []model.TimeSeries
	err := r.db.WithContext(ctx).
		Joins("JOIN topic_time_series tts ON tts.time_series_id = time_series.id").
		Where("tts.topographical_table_topic_id = ?", topicID).
		Order("tts.created_at").
		Find(&series).Error
	return series, err
}

func (r *timeSeriesRepo) GroupsBySeries(ctx context.Context, seriesID uuid.UUID) ([]model.GeoEventGroup, error) {
	var groups []model.GeoEventGroup
	return groups, r.db.WithContext(ctx).Where("time_series_id = ?", seriesID).Order("created_at").Find(&groups).Error
}

func (r *timeSeriesRepo) EventsByGroup(ctx context.Context, groupID uuid.UUID) ([]model.GeoEvent, error) {
	var events []model.GeoEvent
	return events, r.db.WithContext(ctx).Where("geo_event_group_id = ?", groupID).Order("date_time").Find(&events).Error
}

func (r *timeSeriesRepo) Event(ctx context.Context, id uuid.UUID) (*model.GeoEvent, error) {
	ev := &model.GeoEvent{}
	return ev, r.db.WithContext(ctx).Where("id = ?", id).First(ev).Error
}

func (r *timeSeriesRepo) CreateEvent(ctx context.Context, ev *model.GeoEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *timeSeriesRepo) UpdateEvent(ctx context.Context, ev *model.GeoEvent) error {
	res := r.db.WithContext(ctx).Model(&model.GeoEvent{}).Where("id = ?", ev.ID).Updates(map[string]any{
		"name":                       ev.Name,
		"description":                ev.Description,
		"date_time":                  ev.DateTime,
		"latitude":                   ev.Latitude,
		"longitude":                  ev.Longitude,
		"multimedia_presentation_id": ev.MultimediaPresentationID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *timeSeriesRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GeoEvent{}, "id = ?", id).Error
}

// Link associates a time series with a topic. Linking an already linked
// pair is a no-op; a missing topic or series surfaces as a foreign key
// violation from the insert.
func (r *timeSeriesRepo) Link(ctx context.Context, topicID, seriesID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.TopicTimeSeries
		err := tx.Where("topographical_table_topic_id = ? AND time_series_id = ?", topicID, seriesID).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&model.TopicTimeSeries{
			TopographicalTableTopicID: topicID,
			TimeSeriesID:              seriesID,
		}).Error
	})
}

// Unlink removes the association. Removing a link that does not exist is
// not an error.
func (r *timeSeriesRepo) Unlink(ctx context.Context, topicID, seriesID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("topographical_table_topic_id = ? AND time_series_id = ?", topicID, seriesID).
		Delete(&model.TopicTimeSeries{}).Error
}
