package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

type MediaRepo interface {
	List(ctx context.Context) ([]model.MediaFile, error)
	Get(ctx context.Context, id uuid.UUID) (*model.MediaFile, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.MediaFile, error)
	Create(ctx context.Context, m *model.MediaFile) error
	Update(ctx context.Context, m *model.MediaFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
}

type mediaRepo struct{ db *gorm.DB }

func NewMediaRepo(db *gorm.DB) MediaRepo {
	return &mediaRepo{db: db}
}

func (r *mediaRepo) List(ctx context.Context) ([]model.MediaFile, error) {
	var files []model.MediaFile
	return files, r.db.WithContext(ctx).Order("created_at").Find(&files).Error
}

func (r *mediaRepo) Get(ctx context.Context, id uuid.UUID) (*model.MediaFile, error) {
	m := &model.MediaFile{}
	return m, r.db.WithContext(ctx).Where("id = ?", id).First(m).Error
}

func (r *mediaRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.MediaFile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var files []model.MediaFile
	return files, r.db.WithContext(ctx).Where("id IN ?", ids).Find(&files).Error
}

func (r *mediaRepo) Create(ctx context.Context, m *model.MediaFile) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mediaRepo) Update(ctx context.Context, m *model.MediaFile) error {
	res := r.db.WithContext(ctx).Model(&model.MediaFile{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":                m.Name,
		"description":         m.Description,
		"file_name":           m.FileName,
		"duration_in_seconds": m.DurationInSeconds,
		"type":                m.Type,
		"url":                 m.Url,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MediaFile{}, "id = ?", id).Error
}

// CountReferences counts presentation items and topic thumbnails pointing
// at the media file. Used as a delete guard.
func (r *mediaRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var itemCount int64
	if err := r.db.WithContext(ctx).Model(&model.PresentationItem{}).
		Where("media_file_id = ?", id).Count(&itemCount).Error; err != nil {
		return 0, err
	}
	var topicCount int64
	if err := r.db.WithContext(ctx).Model(&model.TopographicalTableTopic{}).
		Where("media_file_image_2d_id = ?", id).Count(&topicCount).Error; err != nil {
		return 0, err
	}
	return itemCount + topicCount, nil
}
