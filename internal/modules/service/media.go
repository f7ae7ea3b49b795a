package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/blob"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/cache"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/queue"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/repo"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
)

type MediaFileDetail struct {
	serializer.MediaFileTree
	UsageCount int64 `json:"usageCount"`
}

type MediaFileInput struct {
	Name              *string
	Description       *string
	Type              *string
	DurationInSeconds *float64
	URL               *string
}

type MediaService interface {
	List(ctx context.Context) ([]MediaFileDetail, error)
	Get(ctx context.Context, id uuid.UUID) (*MediaFileDetail, error)
	Create(ctx context.Context, in MediaFileInput) (*MediaFileDetail, error)
	Upload(ctx context.Context, fh *multipart.FileHeader, in MediaFileInput) (*MediaFileDetail, error)
	Update(ctx context.Context, id uuid.UUID, in MediaFileInput) (*MediaFileDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
}

type mediaService struct {
	media         repo.MediaRepo
	store         *blob.S3Deps // optional
	presignExpire time.Duration
	notify        notifier
	log           *zap.Logger
}

func NewMediaService(
	media repo.MediaRepo,
	store *blob.S3Deps,
	presignExpire time.Duration,
	trees *cache.TreeCache,
	events *queue.Publisher,
	log *zap.Logger,
) MediaService {
	return &mediaService{
		media:         media,
		store:         store,
		presignExpire: presignExpire,
		notify:        newNotifier(trees, events, log),
		log:           log,
	}
}

func (s *mediaService) List(ctx context.Context) ([]MediaFileDetail, error) {
	files, err := s.media.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MediaFileDetail, 0, len(files))
	for i := range files {
		usage, err := s.media.CountReferences(ctx, files[i].ID)
		if err != nil {
			s.log.Warn("counting media references failed", zap.String("media_file_id", files[i].ID.String()), zap.Error(err))
		}
		out = append(out, MediaFileDetail{
			MediaFileTree: *serializer.FormatMediaFile(&files[i]),
			UsageCount:    usage,
		})
	}
	return out, nil
}

func (s *mediaService) Get(ctx context.Context, id uuid.UUID) (*MediaFileDetail, error) {
	file, err := s.media.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	usage, err := s.media.CountReferences(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MediaFileDetail{MediaFileTree: *serializer.FormatMediaFile(file), UsageCount: usage}, nil
}

func (s *mediaService) Create(ctx context.Context, in MediaFileInput) (*MediaFileDetail, error) {
	file := &model.MediaFile{
		Name:        in.Name,
		Description: in.Description,
		Url:         in.URL,
	}
	if in.Type != nil {
		if t, ok := serializer.ParseMediaType(*in.Type); ok {
			file.Type = t
		}
	}
	if in.DurationInSeconds != nil {
		file.DurationInSeconds = *in.DurationInSeconds
	}
	if err := s.media.Create(ctx, file); err != nil {
		return nil, err
	}
	s.notify.publish(ctx, "media.created", file.ID)
	return &MediaFileDetail{MediaFileTree: *serializer.FormatMediaFile(file)}, nil
}

// Upload stores the binary and creates the record for it in one step.
// The media type is inferred from the file extension when the submission
// does not name one, a curator's explicit choice wins over the guess.
func (s *mediaService) Upload(ctx context.Context, fh *multipart.FileHeader, in MediaFileInput) (*MediaFileDetail, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	meta, err := s.store.UploadFormFile(ctx, fh)
	if err != nil {
		return nil, err
	}

	fileName := fh.Filename
	file := &model.MediaFile{
		Name:        in.Name,
		Description: in.Description,
		FileName:    &fileName,
		Url:         &meta.Key,
		Type:        mediaTypeFromExtension(fh.Filename),
	}
	if file.Name == nil {
		file.Name = &fileName
	}
	if in.Type != nil {
		if t, ok := serializer.ParseMediaType(*in.Type); ok {
			file.Type = t
		}
	}
	if in.DurationInSeconds != nil {
		file.DurationInSeconds = *in.DurationInSeconds
	}
	if err := s.media.Create(ctx, file); err != nil {
		return nil, err
	}

	s.notify.publish(ctx, "media.uploaded", file.ID)
	return &MediaFileDetail{MediaFileTree: *serializer.FormatMediaFile(file)}, nil
}

func (s *mediaService) Update(ctx context.Context, id uuid.UUID, in MediaFileInput) (*MediaFileDetail, error) {
	file, err := s.media.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if in.Name != nil {
		file.Name = in.Name
	}
	if in.Description != nil {
		file.Description = in.Description
	}
	if in.URL != nil {
		file.Url = in.URL
	}
	if in.Type != nil {
		if t, ok := serializer.ParseMediaType(*in.Type); ok {
			file.Type = t
		}
	}
	if in.DurationInSeconds != nil {
		file.DurationInSeconds = *in.DurationInSeconds
	}
	if err := s.media.Update(ctx, file); err != nil {
		return nil, err
	}

	s.notify.invalidateTables(ctx)
	s.notify.publish(ctx, "media.updated", file.ID)

	usage, err := s.media.CountReferences(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MediaFileDetail{MediaFileTree: *serializer.FormatMediaFile(file), UsageCount: usage}, nil
}

// Delete refuses to remove files still referenced by presentation items
// or topic images. Curators unlink first, then delete.
func (s *mediaService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.media.Get(ctx, id); err != nil {
		return notFoundOr(err)
	}
	refs, err := s.media.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrMediaInUse
	}
	if err := s.media.Delete(ctx, id); err != nil {
		return err
	}
	s.notify.publish(ctx, "media.deleted", id)
	return nil
}

// DownloadURL presigns the stored object. Records whose Url is an
// absolute http(s) address are external, the address is returned as is.
func (s *mediaService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	file, err := s.media.Get(ctx, id)
	if err != nil {
		return "", notFoundOr(err)
	}
	if file.Url == nil || *file.Url == "" {
		return "", ErrNotFound
	}
	if strings.HasPrefix(*file.Url, "http://") || strings.HasPrefix(*file.Url, "https://") {
		return *file.Url, nil
	}
	if s.store == nil {
		return "", ErrStorageDisabled
	}
	return s.store.PresignGet(ctx, *file.Url, s.presignExpire)
}

var extensionTypes = map[string]model.MediaType{
	".jpg":  model.MediaTypeImage2D,
	".jpeg": model.MediaTypeImage2D,
	".png":  model.MediaTypeImage2D,
	".webp": model.MediaTypeImage2D,
	".mp4":  model.MediaTypeVideo2D,
	".webm": model.MediaTypeVideo2D,
	".mov":  model.MediaTypeVideo2D,
	".mp3":  model.MediaTypeAudio,
	".wav":  model.MediaTypeAudio,
	".ogg":  model.MediaTypeAudio,
}

func mediaTypeFromExtension(name string) model.MediaType {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	return model.MediaTypeImage2D
}
