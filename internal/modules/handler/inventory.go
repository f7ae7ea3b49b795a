package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/service"
)

type InventoryHandler struct {
	cfg service.ConfigurationService
	svc service.InventoryService
}

func NewInventoryHandler(cfg service.ConfigurationService, svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{cfg: cfg, svc: svc}
}

// ListTenants godoc
//
//	@Summary		List tenants
//	@Description	Tenants with their rooms and placed inventory items
//	@Tags			inventory
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=[]serializer.TenantTree}
//	@Router			/tenants [get]
func (h *InventoryHandler) ListTenants(c *gin.Context) {
	tenants, err := h.cfg.GetTenants(c.Request.Context())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tenants})
}

// ListRooms godoc
//
//	@Summary		List rooms
//	@Tags			inventory
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=[]serializer.RoomTree}
//	@Router			/rooms [get]
func (h *InventoryHandler) ListRooms(c *gin.Context) {
	rooms, err := h.svc.Rooms(c.Request.Context())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rooms})
}

// GetRoom godoc
//
//	@Summary		Get room
//	@Tags			inventory
//	@Produce		json
//	@Param			id						path	string	true	"room id"
//	@Param			includeInventoryItems	query	bool	false	"embed inventory items"
//	@Param			includeTenant			query	bool	false	"embed owning tenant"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.RoomTree}
//	@Router			/rooms/{id} [get]
func (h *InventoryHandler) GetRoom(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	includeItems := c.Query("includeInventoryItems") == "true"
	includeTenant := c.Query("includeTenant") == "true"

	room, err := h.cfg.GetRoom(c.Request.Context(), id, includeItems, includeTenant)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: room})
}

// ListRoomInventory godoc
//
//	@Summary		List inventory of a room
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path	string	true	"room id"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=[]serializer.InventoryItemTree}
//	@Router			/rooms/{id}/inventory [get]
func (h *InventoryHandler) ListRoomInventory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	items, err := h.svc.ItemsByRoom(c.Request.Context(), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type InventoryItemReq struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Type        *string             `json:"type" binding:"omitempty,oneof=Unknown TopographicalTable"`
	Position    *serializer.Vector3 `json:"position"`
	Rotation    *serializer.Vector3 `json:"rotation"`
	Scale       *serializer.Vector3 `json:"scale"`
}

func (r InventoryItemReq) toInput() service.InventoryItemInput {
	return service.InventoryItemInput{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Position:    r.Position,
		Rotation:    r.Rotation,
		Scale:       r.Scale,
	}
}

// CreateInventoryItem godoc
//
//	@Summary		Place an inventory item in a room
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"room id"
//	@Param			payload	body	handler.InventoryItemReq	true	"CreateInventoryItem payload"
//	@Security		ApiKeyAuth
//	@Success		201	{object}	serializer.Response{data=serializer.InventoryItemTree}
//	@Router			/rooms/{id}/inventory [post]
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	roomID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	req := InventoryItemReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), roomID, req.toInput())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateInventoryItem godoc
//
//	@Summary		Update an inventory item
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"item id"
//	@Param			payload	body	handler.InventoryItemReq	true	"UpdateInventoryItem payload"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	serializer.Response{data=serializer.InventoryItemTree}
//	@Router			/inventory/{id} [put]
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	req := InventoryItemReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), id, req.toInput())
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}
