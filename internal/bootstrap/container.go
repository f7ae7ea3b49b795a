package bootstrap

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/config"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/blob"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/cache"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/db"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/logger"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/queue"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/handler"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/repo"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/pkg/lock"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Tenant{},
				&model.Room{},
				&model.InventoryItem{},
				&model.TopographicalTable{},
				&model.TopographicalTableTopic{},
				&model.TimeSeries{},
				&model.TopicTimeSeries{},
				&model.GeoEventGroup{},
				&model.GeoEvent{},
				&model.MediaFile{},
				&model.MultimediaPresentation{},
				&model.PresentationItem{},
			)
		}
		return d, nil
	})

	// Redis tree cache, nil when disabled
	do.Provide(inj, func(i *do.Injector) (*cache.TreeCache, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Redis.Enabled {
			return nil, nil
		}
		rdb := do.MustInvoke[*redis.Client](i)
		ttl := time.Duration(cfg.Redis.TreeCacheSec) * time.Second
		return cache.NewTreeCache(rdb, ttl), nil
	})
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ change-event publisher, nil when disabled
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		conn, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			return nil, err
		}
		return queue.NewPublisher(conn, cfg.RabbitMQ.Queue, do.MustInvoke[*zap.Logger](i))
	})

	// S3, nil when no bucket is configured
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.S3.Bucket == "" {
			return nil, nil
		}
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.InventoryRepo, error) {
		return repo.NewInventoryRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TimeSeriesRepo, error) {
		return repo.NewTimeSeriesRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PresentationRepo, error) {
		return repo.NewPresentationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MediaRepo, error) {
		return repo.NewMediaRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ConfigurationService, error) {
		return service.NewConfigurationService(
			do.MustInvoke[repo.InventoryRepo](i),
			do.MustInvoke[repo.TimeSeriesRepo](i),
			do.MustInvoke[repo.PresentationRepo](i),
			do.MustInvoke[repo.MediaRepo](i),
			do.MustInvoke[*cache.TreeCache](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PresentationService, error) {
		return service.NewPresentationService(
			do.MustInvoke[repo.PresentationRepo](i),
			do.MustInvoke[repo.MediaRepo](i),
			do.MustInvoke[service.ConfigurationService](i),
			lock.NewIDLocker(),
			do.MustInvoke[*cache.TreeCache](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TimeSeriesService, error) {
		return service.NewTimeSeriesService(
			do.MustInvoke[repo.TimeSeriesRepo](i),
			do.MustInvoke[repo.InventoryRepo](i),
			do.MustInvoke[service.ConfigurationService](i),
			do.MustInvoke[*cache.TreeCache](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InventoryService, error) {
		return service.NewInventoryService(
			do.MustInvoke[repo.InventoryRepo](i),
			do.MustInvoke[*cache.TreeCache](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MediaService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		expire := 15 * time.Minute
		if cfg.S3.PresignExpireSec > 0 {
			expire = time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}
		return service.NewMediaService(
			do.MustInvoke[repo.MediaRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			expire,
			do.MustInvoke[*cache.TreeCache](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.PresentationHandler, error) {
		return handler.NewPresentationHandler(do.MustInvoke[service.PresentationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TableHandler, error) {
		return handler.NewTableHandler(do.MustInvoke[service.ConfigurationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TimeSeriesHandler, error) {
		return handler.NewTimeSeriesHandler(do.MustInvoke[service.TimeSeriesService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.InventoryHandler, error) {
		return handler.NewInventoryHandler(
			do.MustInvoke[service.ConfigurationService](i),
			do.MustInvoke[service.InventoryService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MediaHandler, error) {
		return handler.NewMediaHandler(do.MustInvoke[service.MediaService](i)), nil
	})

	return inj
}
