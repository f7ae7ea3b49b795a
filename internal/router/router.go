package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/docs"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/config"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/middleware"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/handler"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config              *config.Config
	Log                 *zap.Logger
	PresentationHandler *handler.PresentationHandler
	TableHandler        *handler.TableHandler
	TimeSeriesHandler   *handler.TimeSeriesHandler
	InventoryHandler    *handler.InventoryHandler
	MediaHandler        *handler.MediaHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.APIKeyAuth(d.Config))

		presentations := v1.Group("/presentations")
		{
			presentations.GET("", d.PresentationHandler.ListPresentations)
			presentations.POST("", d.PresentationHandler.CreatePresentation)
			presentations.GET("/:id", d.PresentationHandler.GetPresentation)
			presentations.PUT("/:id/update-with-items", d.PresentationHandler.UpdateWithItems)
		}

		tables := v1.Group("/topographicaltables")
		{
			tables.GET("/:id", d.TableHandler.GetTableConfiguration)
			tables.GET("/:id/topics", d.TableHandler.GetTableTopics)
		}

		topics := v1.Group("/topics")
		{
			topics.GET("/:id", d.TableHandler.GetTopic)
			topics.POST("/:id/link-time-series", d.TimeSeriesHandler.LinkTimeSeries)
			topics.POST("/:id/unlink-time-series", d.TimeSeriesHandler.UnlinkTimeSeries)
		}

		series := v1.Group("/time-series")
		{
			series.GET("", d.TimeSeriesHandler.ListTimeSeries)
			series.GET("/:id", d.TimeSeriesHandler.GetTimeSeries)
			series.POST("/:id/events", d.TimeSeriesHandler.UpsertGeoEvent)
			series.DELETE("/:id/events/:eventId", d.TimeSeriesHandler.DeleteGeoEvent)
		}

		v1.GET("/tenants", d.InventoryHandler.ListTenants)

		rooms := v1.Group("/rooms")
		{
			rooms.GET("", d.InventoryHandler.ListRooms)
			rooms.GET("/:id", d.InventoryHandler.GetRoom)
			rooms.GET("/:id/inventory", d.InventoryHandler.ListRoomInventory)
			rooms.POST("/:id/inventory", d.InventoryHandler.CreateInventoryItem)
		}

		v1.PUT("/inventory/:id", d.InventoryHandler.UpdateInventoryItem)

		media := v1.Group("/media")
		{
			media.GET("", d.MediaHandler.ListMedia)
			media.POST("", d.MediaHandler.CreateMedia)
			media.POST("/upload", d.MediaHandler.UploadMedia)
			media.GET("/:id", d.MediaHandler.GetMedia)
			media.GET("/:id/download-url", d.MediaHandler.GetMediaDownloadURL)
			media.PUT("/:id", d.MediaHandler.UpdateMedia)
			media.DELETE("/:id", d.MediaHandler.DeleteMedia)
		}
	}
	return r
}
