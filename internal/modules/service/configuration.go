package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/cache"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/repo"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
)

// ConfigurationService assembles fully-nested trees so a headset renders a
// scene from one response. A failed child fetch never aborts the tree: the
// branch is logged and served empty, siblings stay fully populated.
type ConfigurationService interface {
	GetTableConfiguration(ctx context.Context, tableID uuid.UUID) (*serializer.TopographicalTableTree, error)
	GetTableTopics(ctx context.Context, tableID uuid.UUID) ([]serializer.TopicTree, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*serializer.TopicTree, error)
	GetPresentation(ctx context.Context, presentationID uuid.UUID) (*serializer.PresentationTree, error)
	GetTenants(ctx context.Context) ([]serializer.TenantTree, error)
	GetRoom(ctx context.Context, roomID uuid.UUID, includeItems, includeTenant bool) (*serializer.RoomTree, error)
}

// branch carries one fan-out result. The error is kept until serialization
// so failures stay observable; items collapse to an empty collection on
// the wire.
type branch[T any] struct {
	items []T
	err   error
}

func (b branch[T]) orEmpty() []T {
	if b.err != nil || b.items == nil {
		return []T{}
	}
	return b.items
}

type configurationService struct {
	inventory     repo.InventoryRepo
	series        repo.TimeSeriesRepo
	presentations repo.PresentationRepo
	media         repo.MediaRepo
	trees         *cache.TreeCache // optional
	log           *zap.Logger
}

func NewConfigurationService(
	inventory repo.InventoryRepo,
	series repo.TimeSeriesRepo,
	presentations repo.PresentationRepo,
	media repo.MediaRepo,
	trees *cache.TreeCache,
	log *zap.Logger,
) ConfigurationService {
	return &configurationService{
		inventory:     inventory,
		series:        series,
		presentations: presentations,
		media:         media,
		trees:         trees,
		log:           log,
	}
}

// fanOut runs f for every input concurrently. Results keep input order, so
// sibling order on the wire follows persisted order, not completion order.
func fanOut[T any, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	var wg sync.WaitGroup
	for i, v := range in {
		wg.Add(1)
		go func(i int, v T) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func (s *configurationService) GetTableConfiguration(ctx context.Context, tableID uuid.UUID) (*serializer.TopographicalTableTree, error) {
	key := cache.TableKey(tableID.String())
	if s.trees != nil {
		tree := &serializer.TopographicalTableTree{}
		if hit, err := s.trees.Get(ctx, key, tree); err != nil {
			s.log.Warn("tree cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return tree, nil
		}
	}

	table, err := s.inventory.Table(ctx, tableID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	topicsBranch := s.loadTopics(ctx, table.ID)
	topicTrees := fanOut(topicsBranch.orEmpty(), func(topic model.TopographicalTableTopic) serializer.TopicTree {
		return s.assembleTopic(ctx, topic)
	})

	tree := &serializer.TopographicalTableTree{
		ID:     table.ID,
		Topics: topicTrees,
	}

	if s.trees != nil {
		if err := s.trees.Set(ctx, key, tree); err != nil {
			s.log.Warn("tree cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return tree, nil
}

func (s *configurationService) GetTableTopics(ctx context.Context, tableID uuid.UUID) ([]serializer.TopicTree, error) {
	if _, err := s.inventory.Table(ctx, tableID); err != nil {
		return nil, notFoundOr(err)
	}
	topics, err := s.inventory.TopicsByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return fanOut(topics, func(topic model.TopographicalTableTopic) serializer.TopicTree {
		return s.assembleTopic(ctx, topic)
	}), nil
}

func (s *configurationService) GetTopic(ctx context.Context, topicID uuid.UUID) (*serializer.TopicTree, error) {
	topic, err := s.inventory.Topic(ctx, topicID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	tree := s.assembleTopic(ctx, *topic)
	return &tree, nil
}

func (s *configurationService) loadTopics(ctx context.Context, tableID uuid.UUID) branch[model.TopographicalTableTopic] {
	topics, err := s.inventory.TopicsByTable(ctx, tableID)
	if err != nil {
		s.log.Error("loading topics failed", zap.String("table_id", tableID.String()), zap.Error(err))
		return branch[model.TopographicalTableTopic]{err: err}
	}
	return branch[model.TopographicalTableTopic]{items: topics}
}

func (s *configurationService) assembleTopic(ctx context.Context, topic model.TopographicalTableTopic) serializer.TopicTree {
	tree := serializer.TopicTree{
		ID:          topic.ID,
		Topic:       topic.Topic,
		Description: derefOrEmpty(topic.Description),
		TimeSeries:  []serializer.TimeSeriesTree{},
	}

	if topic.MediaFileImage2DID != nil {
		image, err := s.media.Get(ctx, *topic.MediaFileImage2DID)
		if err != nil {
			s.log.Warn("loading topic image failed",
				zap.String("topic_id", topic.ID.String()),
				zap.String("media_file_id", topic.MediaFileImage2DID.String()),
				zap.Error(err))
		} else {
			tree.Image = serializer.FormatMediaFile(image)
		}
	}

	seriesBranch := s.loadSeries(ctx, topic.ID)
	tree.TimeSeries = fanOut(seriesBranch.orEmpty(), func(ts model.TimeSeries) serializer.TimeSeriesTree {
		return s.assembleTimeSeries(ctx, ts)
	})
	return tree
}

func (s *configurationService) loadSeries(ctx context.Context, topicID uuid.UUID) branch[model.TimeSeries] {
	series, err := s.series.SeriesByTopic(ctx, topicID)
	if err != nil {
		s.log.Error("loading time series failed", zap.String("topic_id", topicID.String()), zap.Error(err))
		return branch[model.TimeSeries]{err: err}
	}
	return branch[model.TimeSeries]{items: series}
}

func (s *configurationService) assembleTimeSeries(ctx context.Context, ts model.TimeSeries) serializer.TimeSeriesTree {
	tree := serializer.TimeSeriesTree{
		ID:             ts.ID,
		Name:           ts.Name,
		Description:    ts.Description,
		GeoEventGroups: []serializer.GeoEventGroupTree{},
	}

	groups, err := s.series.GroupsBySeries(ctx, ts.ID)
	if err != nil {
		s.log.Error("loading geo event groups failed", zap.String("time_series_id", ts.ID.String()), zap.Error(err))
		return tree
	}

	tree.GeoEventGroups = make([]serializer.GeoEventGroupTree, 0, len(groups))
	for _, group := range groups {
		tree.GeoEventGroups = append(tree.GeoEventGroups, s.assembleGroup(ctx, group))
	}
	return tree
}

func (s *configurationService) assembleGroup(ctx context.Context, group model.GeoEventGroup) serializer.GeoEventGroupTree {
	tree := serializer.GeoEventGroupTree{
		ID:          group.ID,
		Label:       derefOrEmpty(group.Label),
		Description: derefOrEmpty(group.Description),
		GeoEvents:   []serializer.GeoEventTree{},
	}

	events, err := s.series.EventsByGroup(ctx, group.ID)
	if err != nil {
		s.log.Error("loading geo events failed", zap.String("group_id", group.ID.String()), zap.Error(err))
		return tree
	}

	tree.GeoEvents = make([]serializer.GeoEventTree, 0, len(events))
	for _, ev := range events {
		var presentation *serializer.PresentationTree
		if ev.MultimediaPresentationID != nil {
			p, err := s.assemblePresentation(ctx, *ev.MultimediaPresentationID)
			if err != nil {
				s.log.Warn("loading event presentation failed",
					zap.String("event_id", ev.ID.String()),
					zap.String("presentation_id", ev.MultimediaPresentationID.String()),
					zap.Error(err))
			} else {
				presentation = p
			}
		}
		tree.GeoEvents = append(tree.GeoEvents, serializer.FormatGeoEvent(ev, presentation))
	}
	return tree
}

func (s *configurationService) GetPresentation(ctx context.Context, presentationID uuid.UUID) (*serializer.PresentationTree, error) {
	key := cache.PresentationKey(presentationID.String())
	if s.trees != nil {
		tree := &serializer.PresentationTree{}
		if hit, err := s.trees.Get(ctx, key, tree); err != nil {
			s.log.Warn("tree cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return tree, nil
		}
	}

	tree, err := s.assemblePresentation(ctx, presentationID)
	if err != nil {
		return nil, err
	}

	if s.trees != nil {
		if err := s.trees.Set(ctx, key, tree); err != nil {
			s.log.Warn("tree cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return tree, nil
}

// assemblePresentation inlines every resolvable media file. Items whose
// media reference does not resolve keep their place with a null mediaFile
// so slot ordering in editors stays stable.
func (s *configurationService) assemblePresentation(ctx context.Context, presentationID uuid.UUID) (*serializer.PresentationTree, error) {
	p, err := s.presentations.Get(ctx, presentationID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	items, err := s.presentations.ItemsByPresentation(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	mediaByID := s.loadMediaFor(ctx, items)

	tree := &serializer.PresentationTree{
		ID:          p.ID,
		Name:        derefOrEmpty(p.Name),
		Description: derefOrEmpty(p.Description),
		Items:       make([]serializer.PresentationItemTree, 0, len(items)),
	}
	for _, item := range items {
		var media *model.MediaFile
		if item.MediaFileID != nil {
			if m, ok := mediaByID[*item.MediaFileID]; ok {
				media = m
			}
		}
		tree.Items = append(tree.Items, serializer.FormatPresentationItem(item, media))
	}
	return tree, nil
}

func (s *configurationService) loadMediaFor(ctx context.Context, items []model.PresentationItem) map[uuid.UUID]*model.MediaFile {
	ids := make([]uuid.UUID, 0, len(items))
	seen := map[uuid.UUID]bool{}
	for _, item := range items {
		if item.MediaFileID != nil && !seen[*item.MediaFileID] {
			seen[*item.MediaFileID] = true
			ids = append(ids, *item.MediaFileID)
		}
	}

	byID := make(map[uuid.UUID]*model.MediaFile, len(ids))
	if len(ids) == 0 {
		return byID
	}
	files, err := s.media.GetByIDs(ctx, ids)
	if err != nil {
		s.log.Error("loading media files failed", zap.Int("count", len(ids)), zap.Error(err))
		return byID
	}
	for i := range files {
		byID[files[i].ID] = &files[i]
	}
	return byID
}

func (s *configurationService) GetTenants(ctx context.Context) ([]serializer.TenantTree, error) {
	tenants, err := s.inventory.Tenants(ctx)
	if err != nil {
		return nil, err
	}

	trees := fanOut(tenants, func(t model.Tenant) serializer.TenantTree {
		tree := serializer.TenantTree{ID: t.ID, Name: t.Name, Rooms: []serializer.RoomTree{}}

		rooms, err := s.inventory.RoomsByTenant(ctx, t.ID)
		if err != nil {
			s.log.Error("loading rooms failed", zap.String("tenant_id", t.ID.String()), zap.Error(err))
			return tree
		}
		for _, room := range rooms {
			tree.Rooms = append(tree.Rooms, s.assembleRoom(ctx, room, true))
		}
		return tree
	})
	return trees, nil
}

func (s *configurationService) GetRoom(ctx context.Context, roomID uuid.UUID, includeItems, includeTenant bool) (*serializer.RoomTree, error) {
	room, err := s.inventory.Room(ctx, roomID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	tree := s.assembleRoom(ctx, *room, includeItems)
	if includeTenant {
		tenant, err := s.inventory.Tenant(ctx, room.TenantID)
		if err != nil {
			s.log.Error("loading tenant failed", zap.String("tenant_id", room.TenantID.String()), zap.Error(err))
		} else {
			tree.Tenant = &serializer.TenantTree{ID: tenant.ID, Name: tenant.Name}
		}
	}
	return &tree, nil
}

func (s *configurationService) assembleRoom(ctx context.Context, room model.Room, includeItems bool) serializer.RoomTree {
	tree := serializer.RoomTree{
		ID:          room.ID,
		TenantID:    room.TenantID,
		Label:       derefOrEmpty(room.Label),
		Description: derefOrEmpty(room.Description),
		Metadata:    room.Metadata,
	}
	if !includeItems {
		return tree
	}

	tree.InventoryItems = []serializer.InventoryItemTree{}
	items, err := s.inventory.ItemsByRoom(ctx, room.ID)
	if err != nil {
		s.log.Error("loading inventory items failed", zap.String("room_id", room.ID.String()), zap.Error(err))
		return tree
	}
	for _, item := range items {
		tree.InventoryItems = append(tree.InventoryItems, serializer.FormatInventoryItem(item))
	}
	return tree
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
