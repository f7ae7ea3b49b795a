package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/cache"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/queue"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/repo"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
)

type TimeSeriesSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// LinkResult reports one series of a bulk link request. Failing series
// do not abort the batch; callers read Success per entry.
type LinkResult struct {
	TimeSeriesID uuid.UUID `json:"timeSeriesId"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
}

type UpsertEventInput struct {
	ID                       *uuid.UUID
	GroupID                  uuid.UUID
	Name                     string
	Description              *string
	DateTime                 time.Time
	Latitude                 float64
	Longitude                float64
	MultimediaPresentationID *uuid.UUID
}

type TimeSeriesService interface {
	List(ctx context.Context) ([]TimeSeriesSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*serializer.TimeSeriesTree, error)
	LinkTopic(ctx context.Context, topicID uuid.UUID, seriesIDs []uuid.UUID) ([]LinkResult, error)
	UnlinkTopic(ctx context.Context, topicID, seriesID uuid.UUID) error
	UpsertEvent(ctx context.Context, seriesID uuid.UUID, in UpsertEventInput) (*serializer.GeoEventTree, error)
	DeleteEvent(ctx context.Context, seriesID, eventID uuid.UUID) error
}

type timeSeriesService struct {
	series    repo.TimeSeriesRepo
	inventory repo.InventoryRepo
	assembler ConfigurationService
	notify    notifier
	log       *zap.Logger
}

func NewTimeSeriesService(
	series repo.TimeSeriesRepo,
	inventory repo.InventoryRepo,
	assembler ConfigurationService,
	trees *cache.TreeCache,
	events *queue.Publisher,
	log *zap.Logger,
) TimeSeriesService {
	return &timeSeriesService{
		series:    series,
		inventory: inventory,
		assembler: assembler,
		notify:    newNotifier(trees, events, log),
		log:       log,
	}
}

func (s *timeSeriesService) List(ctx context.Context) ([]TimeSeriesSummary, error) {
	rows, err := s.series.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TimeSeriesSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, TimeSeriesSummary{ID: row.ID, Name: row.Name, Description: row.Description})
	}
	return out, nil
}

func (s *timeSeriesService) Get(ctx context.Context, id uuid.UUID) (*serializer.TimeSeriesTree, error) {
	ts, err := s.series.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	tree := serializer.TimeSeriesTree{
		ID:             ts.ID,
		Name:           ts.Name,
		Description:    ts.Description,
		GeoEventGroups: []serializer.GeoEventGroupTree{},
	}

	groups, err := s.series.GroupsBySeries(ctx, ts.ID)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		gt := serializer.GeoEventGroupTree{
			ID:          group.ID,
			Label:       derefOrEmpty(group.Label),
			Description: derefOrEmpty(group.Description),
			GeoEvents:   []serializer.GeoEventTree{},
		}
		events, err := s.series.EventsByGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			gt.GeoEvents = append(gt.GeoEvents, serializer.FormatGeoEvent(ev, nil))
		}
		tree.GeoEventGroups = append(tree.GeoEventGroups, gt)
	}
	return &tree, nil
}

// LinkTopic attaches a batch of series to a topic. Every series is
// handled independently, so one unknown id does not roll back the rest.
// Linking an already linked pair succeeds without effect.
func (s *timeSeriesService) LinkTopic(ctx context.Context, topicID uuid.UUID, seriesIDs []uuid.UUID) ([]LinkResult, error) {
	if _, err := s.inventory.Topic(ctx, topicID); err != nil {
		return nil, notFoundOr(err)
	}

	results := make([]LinkResult, 0, len(seriesIDs))
	changed := false
	for _, seriesID := range seriesIDs {
		res := LinkResult{TimeSeriesID: seriesID}
		if _, err := s.series.Get(ctx, seriesID); err != nil {
			res.Error = "time series not found"
			s.log.Warn("link skipped unknown time series",
				zap.String("topic_id", topicID.String()),
				zap.String("time_series_id", seriesID.String()))
			results = append(results, res)
			continue
		}
		if err := s.series.Link(ctx, topicID, seriesID); err != nil {
			res.Error = "linking failed"
			s.log.Error("linking time series failed",
				zap.String("topic_id", topicID.String()),
				zap.String("time_series_id", seriesID.String()),
				zap.Error(err))
			results = append(results, res)
			continue
		}
		res.Success = true
		changed = true
		results = append(results, res)
	}

	if changed {
		s.notify.invalidateTables(ctx)
		s.notify.publish(ctx, "topic.series_linked", topicID)
	}
	return results, nil
}

// UnlinkTopic is idempotent: removing a link that does not exist is a
// success, the end state is the same.
func (s *timeSeriesService) UnlinkTopic(ctx context.Context, topicID, seriesID uuid.UUID) error {
	if _, err := s.inventory.Topic(ctx, topicID); err != nil {
		return notFoundOr(err)
	}
	if err := s.series.Unlink(ctx, topicID, seriesID); err != nil {
		return err
	}
	s.notify.invalidateTables(ctx)
	s.notify.publish(ctx, "topic.series_unlinked", topicID)
	return nil
}

func (s *timeSeriesService) UpsertEvent(ctx context.Context, seriesID uuid.UUID, in UpsertEventInput) (*serializer.GeoEventTree, error) {
	if _, err := s.series.Get(ctx, seriesID); err != nil {
		return nil, notFoundOr(err)
	}
	if err := s.checkGroupOwnership(ctx, seriesID, in.GroupID); err != nil {
		return nil, err
	}

	ev := model.GeoEvent{
		GeoEventGroupID:          in.GroupID,
		Name:                     in.Name,
		Description:              in.Description,
		DateTime:                 in.DateTime,
		Latitude:                 in.Latitude,
		Longitude:                in.Longitude,
		MultimediaPresentationID: in.MultimediaPresentationID,
	}

	if in.ID != nil {
		existing, err := s.series.Event(ctx, *in.ID)
		if err != nil {
			return nil, notFoundOr(err)
		}
		if err := s.checkGroupOwnership(ctx, seriesID, existing.GeoEventGroupID); err != nil {
			return nil, err
		}
		ev.ID = *in.ID
		if err := s.series.UpdateEvent(ctx, &ev); err != nil {
			return nil, notFoundOr(err)
		}
	} else {
		if err := s.series.CreateEvent(ctx, &ev); err != nil {
			return nil, err
		}
	}

	s.notify.invalidateTables(ctx)
	s.notify.publish(ctx, "geoevent.upserted", ev.ID)

	var presentation *serializer.PresentationTree
	if ev.MultimediaPresentationID != nil {
		p, err := s.assembler.GetPresentation(ctx, *ev.MultimediaPresentationID)
		if err != nil {
			s.log.Warn("loading event presentation failed",
				zap.String("presentation_id", ev.MultimediaPresentationID.String()),
				zap.Error(err))
		} else {
			presentation = p
		}
	}
	tree := serializer.FormatGeoEvent(ev, presentation)
	return &tree, nil
}

func (s *timeSeriesService) DeleteEvent(ctx context.Context, seriesID, eventID uuid.UUID) error {
	ev, err := s.series.Event(ctx, eventID)
	if err != nil {
		return notFoundOr(err)
	}
	if err := s.checkGroupOwnership(ctx, seriesID, ev.GeoEventGroupID); err != nil {
		return err
	}
	if err := s.series.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	s.notify.invalidateTables(ctx)
	s.notify.publish(ctx, "geoevent.deleted", eventID)
	return nil
}

// checkGroupOwnership rejects writes that address an event group through
// the wrong series URL.
func (s *timeSeriesService) checkGroupOwnership(ctx context.Context, seriesID, groupID uuid.UUID) error {
	groups, err := s.series.GroupsBySeries(ctx, seriesID)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if g.ID == groupID {
			return nil
		}
	}
	return ErrGroupMismatch
}
