package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

type TimeSeriesHandler struct {
	svc service.TimeSeriesService
}

func NewTimeSeriesHandler(svc service.TimeSeriesService) *TimeSeriesHandler {
	return &TimeSeriesHandler{svc: svc}
}

// ListTimeSeries godoc
//
//	@Summary		List time series
//	@Tags			timeseries
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=[]service.TimeSeriesSummary}
//	@Router			/time-series [get]
func (h *TimeSeriesHandler) ListTimeSeries(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rows})
}

// GetTimeSeries godoc
//
//	@Summary		Get time series
//	@Description	Series with event groups and events, without presentations
//	@Tags			timeseries
//	@Produce		json
//	@Param			id	path	string	true	"series id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.TimeSeriesTree}
//	@Router			/time-series/{id} [get]
func (h *TimeSeriesHandler) GetTimeSeries(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	tree, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tree})
}

type LinkTimeSeriesReq struct {
	TimeSeriesIDs []uuid.UUID `json:"timeSeriesIds" binding:"required,min=1"`
}

type LinkTimeSeriesResp struct {
	Success bool                 `json:"success"`
	Results []service.LinkResult `json:"results"`
}

// LinkTimeSeries godoc
//
//	@Summary		Link time series to topic
//	@Description	Attaches series individually; one failure does not abort the batch
//	@Tags			table
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"topic id"
//	@Param			payload	body	handler.LinkTimeSeriesReq	true	"LinkTimeSeries payload"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=handler.LinkTimeSeriesResp}
//	@Router			/topics/{id}/link-time-series [post]
func (h *TimeSeriesHandler) LinkTimeSeries(c *gin.Context) {
	topicID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	req := LinkTimeSeriesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	results, err := h.svc.LinkTopic(c.Request.Context(), topicID, req.TimeSeriesIDs)
	if err != nil {
		abortServiceErr(c, err)
		return
	}

	resp := LinkTimeSeriesResp{Success: true, Results: results}
	for _, r := range results {
		if !r.Success {
			resp.Success = false
			break
		}
	}
	c.JSON(http.StatusOK, serializer.Response{Data: resp})
}

type UnlinkTimeSeriesReq struct {
	TimeSeriesID uuid.UUID `json:"timeSeriesId" binding:"required"`
}

// UnlinkTimeSeries godoc
//
//	@Summary		Unlink time series from topic
//	@Description	Removing a link that does not exist succeeds
//	@Tags			table
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"topic id"
//	@Param			payload	body	handler.UnlinkTimeSeriesReq	true	"UnlinkTimeSeries payload"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/topics/{id}/unlink-time-series [post]
func (h *TimeSeriesHandler) UnlinkTimeSeries(c *gin.Context) {
	topicID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	req := UnlinkTimeSeriesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.UnlinkTopic(c.Request.Context(), topicID, req.TimeSeriesID); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "unlinked"})
}

type UpsertGeoEventReq struct {
	ID                       string    `json:"id"`
	GroupID                  uuid.UUID `json:"groupId" binding:"required"`
	Name                     string    `json:"name" binding:"required"`
	Description              *string   `json:"description"`
	DateTime                 time.Time `json:"dateTime" binding:"required"`
	Latitude                 float64   `json:"latitude"`
	Longitude                float64   `json:"longitude"`
	MultimediaPresentationID *string   `json:"multimediaPresentationId"`
}

// UpsertGeoEvent godoc
//
//	@Summary		Create or update a geo event
//	@Description	Ids absent or prefixed new- create, known ids update
//	@Tags			timeseries
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"series id"
//	@Param			payload	body	handler.UpsertGeoEventReq	true	"UpsertGeoEvent payload"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.GeoEventTree}
//	@Router			/time-series/{id}/events [post]
func (h *TimeSeriesHandler) UpsertGeoEvent(c *gin.Context) {
	seriesID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	req := UpsertGeoEventReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.UpsertEventInput{
		ID:          optionalUUID(req.ID),
		GroupID:     req.GroupID,
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if req.MultimediaPresentationID != nil {
		in.MultimediaPresentationID = optionalUUID(*req.MultimediaPresentationID)
	}

	tree, err := h.svc.UpsertEvent(c.Request.Context(), seriesID, in)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tree})
}

// DeleteGeoEvent godoc
//
//	@Summary		Delete geo event
//	@Tags			timeseries
//	@Produce		json
//	@Param			id		path	string	true	"series id"
//	@Param			eventId	path	string	true	"event id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/time-series/{id}/events/{eventId} [delete]
func (h *TimeSeriesHandler) DeleteGeoEvent(c *gin.Context) {
	seriesID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	if err := h.svc.DeleteEvent(c.Request.Context(), seriesID, eventID); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
