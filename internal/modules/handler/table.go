package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

type TableHandler struct {
	svc service.ConfigurationService
}

func NewTableHandler(svc service.ConfigurationService) *TableHandler {
	return &TableHandler{svc: svc}
}

// GetTableConfiguration godoc
//
//	@Summary		Get table configuration
//	@Description	Full nested scene tree for one topographical table
//	@Tags			table
//	@Produce		json
//	@Param			id	path	string	true	"table id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.TopographicalTableTree}
//	@Router			/topographicaltables/{id} [get]
func (h *TableHandler) GetTableConfiguration(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	tree, err := h.svc.GetTableConfiguration(c.Request.Context(), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tree})
}

// GetTableTopics godoc
//
//	@Summary		List topics of a table
//	@Tags			table
//	@Produce		json
//	@Param			id	path	string	true	"table id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=[]serializer.TopicTree}
//	@Router			/topographicaltables/{id}/topics [get]
func (h *TableHandler) GetTableTopics(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	topics, err := h.svc.GetTableTopics(c.Request.Context(), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: topics})
}

// GetTopic godoc
//
//	@Summary		Get topic
//	@Tags			table
//	@Produce		json
//	@Param			id	path	string	true	"topic id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.TopicTree}
//	@Router			/topics/{id} [get]
func (h *TableHandler) GetTopic(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	topic, err := h.svc.GetTopic(c.Request.Context(), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: topic})
}
