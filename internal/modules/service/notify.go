package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/cache"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/queue"
)

type changeEvent struct {
	Kind       string    `json:"kind"`
	EntityID   uuid.UUID `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// notifier fans write side effects out to the tree cache and the change
// queue. Both targets are optional and both are best effort: a failed
// invalidation or publish is logged, never surfaced to the caller.
type notifier struct {
	trees  *cache.TreeCache
	events *queue.Publisher
	log    *zap.Logger
}

func newNotifier(trees *cache.TreeCache, events *queue.Publisher, log *zap.Logger) notifier {
	return notifier{trees: trees, events: events, log: log}
}

func (n notifier) invalidatePresentation(ctx context.Context, id uuid.UUID) {
	if n.trees == nil {
		return
	}
	if err := n.trees.Del(ctx, cache.PresentationKey(id.String())); err != nil {
		n.log.Warn("cache invalidation failed", zap.String("presentation_id", id.String()), zap.Error(err))
	}
	n.invalidateTables(ctx)
}

// invalidateTables drops every cached table tree. Table trees embed
// topics, series and presentations, so any write below a table may have
// made any of them stale.
func (n notifier) invalidateTables(ctx context.Context) {
	if n.trees == nil {
		return
	}
	if err := n.trees.DelPattern(ctx, "config:table:*"); err != nil {
		n.log.Warn("table cache invalidation failed", zap.Error(err))
	}
}

func (n notifier) publish(ctx context.Context, kind string, entityID uuid.UUID) {
	if n.events == nil {
		return
	}
	ev := changeEvent{Kind: kind, EntityID: entityID, OccurredAt: time.Now().UTC()}
	if err := n.events.PublishJSON(ctx, ev); err != nil {
		n.log.Warn("publishing change event failed", zap.String("kind", kind), zap.Error(err))
	}
}
