package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Tenant struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:text;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Tenant <-> Room
	Rooms []Room `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"rooms"`
}

func (Tenant) TableName() string { return "tenants" }

type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Label       *string   `gorm:"type:text" json:"label"`
	Description *string   `gorm:"type:text" json:"description"`

	// Free-form engine hints (theming, lighting...) the server never interprets.
	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Room <-> Tenant
	Tenant *Tenant `gorm:"foreignKey:TenantID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tenant"`

	// Room <-> InventoryItem
	InventoryItems []InventoryItem `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"inventory_items"`
}

func (Room) TableName() string { return "rooms" }
