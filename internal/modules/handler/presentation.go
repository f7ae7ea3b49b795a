package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

type PresentationHandler struct {
	svc service.PresentationService
}

func NewPresentationHandler(svc service.PresentationService) *PresentationHandler {
	return &PresentationHandler{svc: svc}
}

// ListPresentations godoc
//
//	@Summary		List presentations
//	@Description	All multimedia presentations with item and usage counts
//	@Tags			presentation
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=[]service.PresentationSummary}
//	@Router			/presentations [get]
func (h *PresentationHandler) ListPresentations(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rows})
}

type CreatePresentationReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreatePresentation godoc
//
//	@Summary		Create presentation
//	@Tags			presentation
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreatePresentationReq	true	"CreatePresentation payload"
//	@Security		ApiKeyAuth
//	@Success		201	{object}	serializer.Response{data=serializer.PresentationTree}
//	@Router			/presentations [post]
func (h *PresentationHandler) CreatePresentation(c *gin.Context) {
	req := CreatePresentationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tree, err := h.svc.Create(c.Request.Context(), service.CreatePresentationInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: tree})
}

// GetPresentation godoc
//
//	@Summary		Get presentation
//	@Description	Presentation with all items and inlined media files
//	@Tags			presentation
//	@Produce		json
//	@Param			id	path	string	true	"presentation id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.PresentationTree}
//	@Router			/presentations/{id} [get]
func (h *PresentationHandler) GetPresentation(c *gin.Context) {
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

type PresentationItemReq struct {
	ID                string   `json:"id"`
	SlotNumber        int      `json:"slotNumber"`
	SequenceNumber    *int     `json:"sequenceNumber"`
	DurationInSeconds *float64 `json:"durationInSeconds"`
	MediaFile         struct {
		ID string `json:"id"`
	} `json:"mediaFile"`
}

type UpdateWithItemsReq struct {
	Name              *string               `json:"name"`
	Description       *string               `json:"description"`
	PresentationItems []PresentationItemReq `json:"presentationItems"`
}

// UpdateWithItems godoc
//
//	@Summary		Replace presentation items
//	@Description	Reconciles the submitted item set against the stored one
//	@Tags			presentation
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"presentation id"
//	@Param			payload	body	handler.UpdateWithItemsReq	true	"UpdateWithItems payload"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.PresentationTree}
//	@Router			/presentations/{id}/update-with-items [put]
func (h *PresentationHandler) UpdateWithItems(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	req := UpdateWithItemsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.UpdatePresentationInput{
		Name:        req.Name,
		Description: req.Description,
		Items:       make([]service.PresentationItemInput, 0, len(req.PresentationItems)),
	}
	for _, item := range req.PresentationItems {
		in.Items = append(in.Items, service.PresentationItemInput{
			ID:                optionalUUID(item.ID),
			SlotNumber:        item.SlotNumber,
			SequenceNumber:    item.SequenceNumber,
			DurationInSeconds: item.DurationInSeconds,
			MediaFileID:       optionalUUID(item.MediaFile.ID),
		})
	}

	tree, err := h.svc.UpdateWithItems(c.Request.Context(), id, in)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tree})
}
