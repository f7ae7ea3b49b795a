package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/cache"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/queue"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/repo"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/pkg/lock"
)

// PresentationItemInput is one desired playlist entry of an update
// submission. A nil ID means "create"; an unknown ID is treated as a
// create as well, so stale editors never update rows they no longer own.
type PresentationItemInput struct {
	ID                *uuid.UUID
	SlotNumber        int
	SequenceNumber    *int
	DurationInSeconds *float64
	MediaFileID       *uuid.UUID
}

// UpdatePresentationInput replaces a presentation's item set wholesale.
// Nil Name/Description leave the stored value untouched.
type UpdatePresentationInput struct {
	Name        *string
	Description *string
	Items       []PresentationItemInput
}

type PresentationSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ItemsCount  int64     `json:"itemsCount"`
	UsageCount  int64     `json:"usageCount"`
}

type CreatePresentationInput struct {
	Name        string
	Description string
}

type PresentationService interface {
	List(ctx context.Context) ([]PresentationSummary, error)
	Create(ctx context.Context, in CreatePresentationInput) (*serializer.PresentationTree, error)
	Get(ctx context.Context, id uuid.UUID) (*serializer.PresentationTree, error)
	UpdateWithItems(ctx context.Context, id uuid.UUID, in UpdatePresentationInput) (*serializer.PresentationTree, error)
}

type presentationService struct {
	presentations repo.PresentationRepo
	media         repo.MediaRepo
	assembler     ConfigurationService
	locker        *lock.IDLocker
	notify        notifier
	log           *zap.Logger
}

func NewPresentationService(
	presentations repo.PresentationRepo,
	media repo.MediaRepo,
	assembler ConfigurationService,
	locker *lock.IDLocker,
	trees *cache.TreeCache,
	events *queue.Publisher,
	log *zap.Logger,
) PresentationService {
	return &presentationService{
		presentations: presentations,
		media:         media,
		assembler:     assembler,
		locker:        locker,
		notify:        newNotifier(trees, events, log),
		log:           log,
	}
}

func (s *presentationService) List(ctx context.Context) ([]PresentationSummary, error) {
	rows, err := s.presentations.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PresentationSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, PresentationSummary{
			ID:          row.ID,
			Name:        derefOrEmpty(row.Name),
			Description: derefOrEmpty(row.Description),
			ItemsCount:  row.ItemsCount,
			UsageCount:  row.UsageCount,
		})
	}
	return out, nil
}

func (s *presentationService) Create(ctx context.Context, in CreatePresentationInput) (*serializer.PresentationTree, error) {
	p := &model.MultimediaPresentation{}
	if in.Name != "" {
		p.Name = &in.Name
	}
	if in.Description != "" {
		p.Description = &in.Description
	}
	if err := s.presentations.Create(ctx, p); err != nil {
		return nil, err
	}
	s.notify.publish(ctx, "presentation.created", p.ID)
	return s.assembler.GetPresentation(ctx, p.ID)
}

func (s *presentationService) Get(ctx context.Context, id uuid.UUID) (*serializer.PresentationTree, error) {
	return s.assembler.GetPresentation(ctx, id)
}

// UpdateWithItems reconciles the submitted item set against the stored
// one inside a per-presentation lock, so two concurrent editors of the
// same presentation cannot interleave their diffs.
func (s *presentationService) UpdateWithItems(ctx context.Context, id uuid.UUID, in UpdatePresentationInput) (*serializer.PresentationTree, error) {
	var tree *serializer.PresentationTree
	err := s.locker.WithLock(id, func() error {
		if _, err := s.presentations.Get(ctx, id); err != nil {
			return notFoundOr(err)
		}

		desired := s.normalizeItems(ctx, id, in.Items)

		existing, err := s.presentations.ItemsByPresentation(ctx, id)
		if err != nil {
			return err
		}

		cs := diffItems(existing, desired)
		cs.Name = in.Name
		cs.Description = in.Description

		if err := s.presentations.ReconcileItems(ctx, id, cs); err != nil {
			return err
		}

		s.notify.invalidatePresentation(ctx, id)
		s.notify.publish(ctx, "presentation.updated", id)

		tree, err = s.assembler.GetPresentation(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// normalizeItems turns the raw submission into clean rows: entries are
// grouped by slot, ordered within the slot, renumbered 0..n-1, and
// entries without a resolvable media file are dropped. Dropping instead
// of rejecting keeps a bulk save useful when one referenced file was
// deleted in the meantime.
func (s *presentationService) normalizeItems(ctx context.Context, presentationID uuid.UUID, items []PresentationItemInput) []model.PresentationItem {
	mediaByID := s.resolveMedia(ctx, items)

	bySlot := map[int][]PresentationItemInput{}
	slots := []int{}
	for _, item := range items {
		if _, ok := bySlot[item.SlotNumber]; !ok {
			slots = append(slots, item.SlotNumber)
		}
		bySlot[item.SlotNumber] = append(bySlot[item.SlotNumber], item)
	}
	sort.Ints(slots)

	out := []model.PresentationItem{}
	for _, slot := range slots {
		group := bySlot[slot]
		// Entries with an explicit sequence number sort against each
		// other; everything else keeps submission order.
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].SequenceNumber == nil || group[j].SequenceNumber == nil {
				return false
			}
			return *group[i].SequenceNumber < *group[j].SequenceNumber
		})

		seq := 0
		for _, item := range group {
			if item.MediaFileID == nil {
				s.log.Warn("dropping presentation item without media reference",
					zap.String("presentation_id", presentationID.String()),
					zap.Int("slot_number", slot))
				continue
			}
			media, ok := mediaByID[*item.MediaFileID]
			if !ok {
				s.log.Warn("dropping presentation item with unresolvable media reference",
					zap.String("presentation_id", presentationID.String()),
					zap.String("media_file_id", item.MediaFileID.String()),
					zap.Int("slot_number", slot))
				continue
			}

			duration := media.DurationInSeconds
			if item.DurationInSeconds != nil {
				duration = *item.DurationInSeconds
			}

			row := model.PresentationItem{
				MultimediaPresentationID: presentationID,
				MediaFileID:              item.MediaFileID,
				SlotNumber:               slot,
				SequenceNumber:           seq,
				DurationInSeconds:        duration,
			}
			if item.ID != nil {
				row.ID = *item.ID
			}
			out = append(out, row)
			seq++
		}
	}
	return out
}

func (s *presentationService) resolveMedia(ctx context.Context, items []PresentationItemInput) map[uuid.UUID]model.MediaFile {
	ids := []uuid.UUID{}
	seen := map[uuid.UUID]bool{}
	for _, item := range items {
		if item.MediaFileID != nil && !seen[*item.MediaFileID] {
			seen[*item.MediaFileID] = true
			ids = append(ids, *item.MediaFileID)
		}
	}

	byID := make(map[uuid.UUID]model.MediaFile, len(ids))
	if len(ids) == 0 {
		return byID
	}
	files, err := s.media.GetByIDs(ctx, ids)
	if err != nil {
		s.log.Error("resolving media references failed", zap.Int("count", len(ids)), zap.Error(err))
		return byID
	}
	for _, f := range files {
		byID[f.ID] = f
	}
	return byID
}

// diffItems splits the desired rows into creates and updates against the
// stored rows and marks every stored row the submission no longer names
// for deletion.
func diffItems(existing, desired []model.PresentationItem) repo.ItemChangeSet {
	existingIDs := make(map[uuid.UUID]bool, len(existing))
	for _, e := range existing {
		existingIDs[e.ID] = true
	}

	cs := repo.ItemChangeSet{}
	kept := map[uuid.UUID]bool{}
	for _, d := range desired {
		if d.ID != uuid.Nil && existingIDs[d.ID] {
			kept[d.ID] = true
			cs.Updates = append(cs.Updates, d)
			continue
		}
		d.ID = uuid.Nil
		cs.Creates = append(cs.Creates, d)
	}
	for _, e := range existing {
		if !kept[e.ID] {
			cs.DeleteIDs = append(cs.DeleteIDs, e.ID)
		}
	}
	return cs
}
