package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

// PresentationWithCounts is a list row: a presentation plus how many items
// it holds and how many geo events reference it.
type PresentationWithCounts struct {
	model.MultimediaPresentation `gorm:"embedded"`
	ItemsCount                   int64 `json:"items_count"`
	UsageCount                   int64 `json:"usage_count"`
}

// ItemChangeSet is a reconciliation diff computed by the service layer.
// Applying it is all-or-nothing.
type ItemChangeSet struct {
	Name        *string
	Description *string
	Creates     []model.PresentationItem
	Updates     []model.PresentationItem
	DeleteIDs   []uuid.UUID
}

type PresentationRepo interface {
	ListWithCounts(ctx context.Context) ([]PresentationWithCounts, error)
	Get(ctx context.Context, id uuid.UUID) (*model.MultimediaPresentation, error)
	Create(ctx context.Context, p *model.MultimediaPresentation) error
	ItemsByPresentation(ctx context.Context, presentationID uuid.UUID) ([]model.PresentationItem, error)
	ReconcileItems(ctx context.Context, presentationID uuid.UUID, cs ItemChangeSet) error
}

type presentationRepo struct{ db *gorm.DB }

func NewPresentationRepo(db *gorm.DB) PresentationRepo {
	return &presentationRepo{db: db}
}

func (r *presentationRepo) ListWithCounts(ctx context.Context) ([]PresentationWithCounts, error) {
	var rows []PresentationWithCounts
	err := r.db.WithContext(ctx).
		Model(&model.MultimediaPresentation{}).
		Select(`multimedia_presentations.*,
			(SELECT count(*) FROM presentation_items pi WHERE pi.multimedia_presentation_id = multimedia_presentations.id) AS items_count,
			(SELECT count(*) FROM geo_events ge WHERE ge.multimedia_presentation_id = multimedia_presentations.id) AS usage_count`).
		Order("created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *presentationRepo) Get(ctx context.Context, id uuid.UUID) (*model.MultimediaPresentation, error) {
	p := &model.MultimediaPresentation{}
	return p, r.db.WithContext(ctx).Where("id = ?", id).First(p).Error
}

func (r *presentationRepo) Create(ctx context.Context, p *model.MultimediaPresentation) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *presentationRepo) ItemsByPresentation(ctx context.Context, presentationID uuid.UUID) ([]model.PresentationItem, error) {
	var items []model.PresentationItem
	err := r.db.WithContext(ctx).
		Where("multimedia_presentation_id = ?", presentationID).
		Order("slot_number, sequence_number").
		Find(&items).Error
	return items, err
}

// ReconcileItems applies a computed diff in one transaction. Nothing
// commits if any statement fails, so a concurrent reader never observes a
// half-applied item set.
func (r *presentationRepo) ReconcileItems(ctx context.Context, presentationID uuid.UUID, cs ItemChangeSet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patch := map[string]any{}
		if cs.Name != nil {
			patch["name"] = *cs.Name
		}
		if cs.Description != nil {
			patch["description"] = *cs.Description
		}
		if len(patch) > 0 {
			if err := tx.Model(&model.MultimediaPresentation{}).
				Where("id = ?", presentationID).Updates(patch).Error; err != nil {
				return err
			}
		}

		for _, item := range cs.Updates {
			if err := tx.Model(&model.PresentationItem{}).Where("id = ?", item.ID).Updates(map[string]any{
				"media_file_id":       item.MediaFileID,
				"slot_number":         item.SlotNumber,
				"sequence_number":     item.SequenceNumber,
				"duration_in_seconds": item.DurationInSeconds,
			}).Error; err != nil {
				return err
			}
		}

		if len(cs.Creates) > 0 {
			if err := tx.Create(&cs.Creates).Error; err != nil {
				return err
			}
		}

		if len(cs.DeleteIDs) > 0 {
			if err := tx.Where("id IN ?", cs.DeleteIDs).
				Delete(&model.PresentationItem{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
