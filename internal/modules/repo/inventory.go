package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

type InventoryRepo interface {
	Tenants(ctx context.Context) ([]model.Tenant, error)
	Tenant(ctx context.Context, id uuid.UUID) (*model.Tenant, error)
	Rooms(ctx context.Context) ([]model.Room, error)
	Room(ctx context.Context, id uuid.UUID) (*model.Room, error)
	RoomsByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Room, error)
	ItemsByRoom(ctx context.Context, roomID uuid.UUID) ([]model.InventoryItem, error)
	Item(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	CreateItem(ctx context.Context, item *model.InventoryItem) error
	UpdateItem(ctx context.Context, item *model.InventoryItem) error
	Table(ctx context.Context, id uuid.UUID) (*model.TopographicalTable, error)
	TopicsByTable(ctx context.Context, tableID uuid.UUID) ([]model.TopographicalTableTopic, error)
	Topic(ctx context.Context, id uuid.UUID) (*model.TopographicalTableTopic, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepo(db *gorm.DB) InventoryRepo {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Tenants(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	return tenants, r.db.WithContext(ctx).Order("name").Find(&tenants).Error
}

func (r *inventoryRepo) Tenant(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	t := &model.Tenant{}
	return t, r.db.WithContext(ctx).Where("id = ?", id).First(t).Error
}

func (r *inventoryRepo) Rooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	return rooms, r.db.WithContext(ctx).Order("created_at").Find(&rooms).Error
}

func (r *inventoryRepo) Room(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	room := &model.Room{}
	return room, r.db.WithContext(ctx).Where("id = ?", id).First(room).Error
}

func (r *inventoryRepo) RoomsByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Room, error) {
	var rooms []model.Room
	return rooms, r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at").Find(&rooms).Error
}

func (r *inventoryRepo) ItemsByRoom(ctx context.Context, roomID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	return items, r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("created_at").Find(&items).Error
}

func (r *inventoryRepo) Item(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	item := &model.InventoryItem{}
	return item, r.db.WithContext(ctx).Where("id = ?", id).First(item).Error
}

// CreateItem creates the item and, for topographical tables, the associated
// table row in the same transaction. An item of type TopographicalTable
// always has exactly one table.
func (r *inventoryRepo) CreateItem(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if item.Type == model.InventoryTypeTopographicalTable {
			return tx.Create(&model.TopographicalTable{InventoryItemID: item.ID}).Error
		}
		return nil
	})
}

func (r *inventoryRepo) UpdateItem(ctx context.Context, item *model.InventoryItem) error {
	res := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Where("id = ?", item.ID).Updates(map[string]any{
		"name":        item.Name,
		"description": item.Description,
		"position_x":  item.PositionX,
		"position_y":  item.PositionY,
		"position_z":  item.PositionZ,
		"rotation_x":  item.RotationX,
		"rotation_y":  item.RotationY,
		"rotation_z":  item.RotationZ,
		"scale_x":     item.ScaleX,
		"scale_y":     item.ScaleY,
		"scale_z":     item.ScaleZ,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inventoryRepo) Table(ctx context.Context, id uuid.UUID) (*model.TopographicalTable, error) {
	table := &model.TopographicalTable{}
	return table, r.db.WithContext(ctx).Where("id = ?", id).First(table).Error
}

func (r *inventoryRepo) TopicsByTable(ctx context.Context, tableID uuid.UUID) ([]model.TopographicalTableTopic, error) {
	var topics []model.TopographicalTableTopic
	return topics, r.db.WithContext(ctx).Where("topographical_table_id = ?", tableID).Order("created_at").Find(&topics).Error
}

func (r *inventoryRepo) Topic(ctx context.Context, id uuid.UUID) (*model.TopographicalTableTopic, error) {
	topic := &model.TopographicalTableTopic{}
	return topic, r.db.WithContext(ctx).Where("id = ?", id).First(topic).Error
}
