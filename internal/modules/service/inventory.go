package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/cache"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/infra/queue"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/repo"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
)

type InventoryItemInput struct {
	Name        *string
	Description *string
	Type        *string
	Position    *serializer.Vector3
	Rotation    *serializer.Vector3
	Scale       *serializer.Vector3
}

type InventoryService interface {
	Rooms(ctx context.Context) ([]serializer.RoomTree, error)
	ItemsByRoom(ctx context.Context, roomID uuid.UUID) ([]serializer.InventoryItemTree, error)
	CreateItem(ctx context.Context, roomID uuid.UUID, in InventoryItemInput) (*serializer.InventoryItemTree, error)
	UpdateItem(ctx context.Context, id uuid.UUID, in InventoryItemInput) (*serializer.InventoryItemTree, error)
}

type inventoryService struct {
	inventory repo.InventoryRepo
	notify    notifier
	log       *zap.Logger
}

func NewInventoryService(
	inventory repo.InventoryRepo,
	trees *cache.TreeCache,
	events *queue.Publisher,
	log *zap.Logger,
) InventoryService {
	return &inventoryService{
		inventory: inventory,
		notify:    newNotifier(trees, events, log),
		log:       log,
	}
}

func (s *inventoryService) Rooms(ctx context.Context) ([]serializer.RoomTree, error) {
	rooms, err := s.inventory.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]serializer.RoomTree, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, serializer.RoomTree{
			ID:          room.ID,
			TenantID:    room.TenantID,
			Label:       derefOrEmpty(room.Label),
			Description: derefOrEmpty(room.Description),
			Metadata:    room.Metadata,
		})
	}
	return out, nil
}

func (s *inventoryService) ItemsByRoom(ctx context.Context, roomID uuid.UUID) ([]serializer.InventoryItemTree, error) {
	if _, err := s.inventory.Room(ctx, roomID); err != nil {
		return nil, notFoundOr(err)
	}
	items, err := s.inventory.ItemsByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	out := make([]serializer.InventoryItemTree, 0, len(items))
	for _, item := range items {
		out = append(out, serializer.FormatInventoryItem(item))
	}
	return out, nil
}

// CreateItem places an item in a room. Creating a topographical table
// also creates its table row, the repo does both in one transaction.
func (s *inventoryService) CreateItem(ctx context.Context, roomID uuid.UUID, in InventoryItemInput) (*serializer.InventoryItemTree, error) {
	if _, err := s.inventory.Room(ctx, roomID); err != nil {
		return nil, notFoundOr(err)
	}

	item := &model.InventoryItem{RoomID: roomID, Name: in.Name, Description: in.Description}
	if in.Type != nil && *in.Type == "TopographicalTable" {
		item.Type = model.InventoryTypeTopographicalTable
	}
	applyTransform(item, in)

	if err := s.inventory.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.notify.publish(ctx, "inventory.created", item.ID)

	tree := serializer.FormatInventoryItem(*item)
	return &tree, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uuid.UUID, in InventoryItemInput) (*serializer.InventoryItemTree, error) {
	item, err := s.inventory.Item(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if in.Name != nil {
		item.Name = in.Name
	}
	if in.Description != nil {
		item.Description = in.Description
	}
	applyTransform(item, in)

	if err := s.inventory.UpdateItem(ctx, item); err != nil {
		return nil, notFoundOr(err)
	}
	s.notify.publish(ctx, "inventory.updated", item.ID)

	tree := serializer.FormatInventoryItem(*item)
	return &tree, nil
}

func applyTransform(item *model.InventoryItem, in InventoryItemInput) {
	if in.Position != nil {
		item.PositionX, item.PositionY, item.PositionZ = in.Position.X, in.Position.Y, in.Position.Z
	}
	if in.Rotation != nil {
		item.RotationX, item.RotationY, item.RotationZ = in.Rotation.X, in.Rotation.Y, in.Rotation.Z
	}
	if in.Scale != nil {
		item.ScaleX, item.ScaleY, item.ScaleZ = in.Scale.X, in.Scale.Y, in.Scale.Z
	}
}
