package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

// uuidParam parses a path segment as UUID and answers the request with a
// 400 itself when the segment is malformed.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid "+name, err))
		return uuid.Nil, false
	}
	return id, true
}

// abortServiceErr translates service errors to HTTP answers.
func abortServiceErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("", err))
	case errors.Is(err, service.ErrGroupMismatch):
		c.JSON(http.StatusBadRequest, serializer.ConflictErr("", err))
	case errors.Is(err, service.ErrMediaInUse):
		c.JSON(http.StatusConflict, serializer.Err(http.StatusConflict, "media file is still referenced", err))
	case errors.Is(err, service.ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, "object storage is not configured", err))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

// optionalUUID parses client-supplied entity ids. Absent values and the
// editor's placeholder ids for new rows both yield nil.
func optionalUUID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
