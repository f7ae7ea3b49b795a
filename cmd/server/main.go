package main

//	@title			virtualmuseum API
//	@version		1.0
//	@description	Configuration and media backend for virtual museum installations.
//	@schemes		http https
//	@BasePath		/api/v1

//  Installation API key
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						x-api-key
//	@description				Installation API key (also accepted as "Authorization: Bearer <key>")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/bootstrap"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/config"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/queue"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/handler"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/router"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	do.MustInvoke[*gorm.DB](inj)

	if pub := do.MustInvoke[*queue.Publisher](inj); pub != nil {
		defer pub.Close()
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:              cfg,
		Log:                 log,
		PresentationHandler: do.MustInvoke[*handler.PresentationHandler](inj),
		TableHandler:        do.MustInvoke[*handler.TableHandler](inj),
		TimeSeriesHandler:   do.MustInvoke[*handler.TimeSeriesHandler](inj),
		InventoryHandler:    do.MustInvoke[*handler.InventoryHandler](inj),
		MediaHandler:        do.MustInvoke[*handler.MediaHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
