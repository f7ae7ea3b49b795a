package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

type MediaHandler struct {
	svc service.MediaService
}

func NewMediaHandler(svc service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// ListMedia godoc
//
//	@Summary		List media files
//	@Description	All media files of the library with usage counts
//	@Tags			media
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=[]service.MediaFileDetail}
//	@Router			/media [get]
func (h *MediaHandler) ListMedia(c *gin.Context) {
	files, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: files})
}

// GetMedia godoc
//
//	@Summary		Get media file
//	@Tags			media
//	@Produce		json
//	@Param			id	path	string	true	"media file id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=service.MediaFileDetail}
//	@Router			/media/{id} [get]
func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	file, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: file})
}

// GetMediaDownloadURL godoc
//
//	@Summary		Resolve a download address
//	@Description	Presigns stored objects; external addresses pass through
//	@Tags			media
//	@Produce		json
//	@Param			id	path	string	true	"media file id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=string}
//	@Router			/media/{id}/download-url [get]
func (h *MediaHandler) GetMediaDownloadURL(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	url, err := h.svc.DownloadURL(c.Request.Context(), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: url})
}

type MediaFileReq struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Type              *string  `json:"type" binding:"omitempty,oneof=Image2D Image3D Image360 Video2D Video3D Video360 Audio"`
	DurationInSeconds *float64 `json:"durationInSeconds" binding:"omitempty,gte=0"`
	URL               *string  `json:"url"`
}

func (r MediaFileReq) toInput() service.MediaFileInput {
	return service.MediaFileInput{
		Name:              r.Name,
		Description:       r.Description,
		Type:              r.Type,
		DurationInSeconds: r.DurationInSeconds,
		URL:               r.URL,
	}
}

// CreateMedia godoc
//
//	@Summary		Create media file record
//	@Tags			media
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.MediaFileReq	true	"CreateMedia payload"
//	@Security		ApiKeyAuth
//	@Success		201	{object}	serializer.Response{data=service.MediaFileDetail}
//	@Router			/media [post]
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	req := MediaFileReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	file, err := h.svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: file})
}

type UploadMediaReq struct {
	Name              *string  `form:"name"`
	Description       *string  `form:"description"`
	Type              *string  `form:"type" binding:"omitempty,oneof=Image2D Image3D Image360 Video2D Video3D Video360 Audio"`
	DurationInSeconds *float64 `form:"durationInSeconds" binding:"omitempty,gte=0"`
}

// UploadMedia godoc
//
//	@Summary		Upload a media binary
//	@Description	Stores the file and creates its library record
//	@Tags			media
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"media binary"
//	@Security		ApiKeyAuth
//	@Success		201	{object}	serializer.Response{data=service.MediaFileDetail}
//	@Router			/media/upload [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	req := UploadMediaReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("missing file", err))
		return
	}

	file, err := h.svc.Upload(c.Request.Context(), fh, service.MediaFileInput{
		Name:              req.Name,
		Description:       req.Description,
		Type:              req.Type,
		DurationInSeconds: req.DurationInSeconds,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: file})
}

// UpdateMedia godoc
//
//	@Summary		Update media file record
//	@Tags			media
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"media file id"
//	@Param			payload	body	handler.MediaFileReq	true	"UpdateMedia payload"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=service.MediaFileDetail}
//	@Router			/media/{id} [put]
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	req := MediaFileReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	file, err := h.svc.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: file})
}

// DeleteMedia godoc
//
//	@Summary		Delete media file
//	@Description	Refused while presentation items or topics reference the file
//	@Tags			media
//	@Produce		json
//	@Param			id	path	string	true	"media file id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
