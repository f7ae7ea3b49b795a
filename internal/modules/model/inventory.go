package model

import (
	"time"

	"github.com/google/uuid"
)

type InventoryType int

const (
	InventoryTypeUnknown            InventoryType = 0
	InventoryTypeTopographicalTable InventoryType = 1
)

// InventoryItem is any virtual object placed in a room. An item of type
// TopographicalTable has exactly one associated table row carrying its
// interactive configuration.
type InventoryItem struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"room_id"`
	Name        *string       `gorm:"type:text" json:"name"`
	Description *string       `gorm:"type:text" json:"description"`
	Type        InventoryType `gorm:"type:int;not null;default:0" json:"type"`

	PositionX float64 `gorm:"not null;default:0" json:"position_x"`
	PositionY float64 `gorm:"not null;default:0" json:"position_y"`
	PositionZ float64 `gorm:"not null;default:0" json:"position_z"`
	RotationX float64 `gorm:"not null;default:0" json:"rotation_x"`
	RotationY float64 `gorm:"not null;default:0" json:"rotation_y"`
	RotationZ float64 `gorm:"not null;default:0" json:"rotation_z"`
	ScaleX    float64 `gorm:"not null;default:1" json:"scale_x"`
	ScaleY    float64 `gorm:"not null;default:1" json:"scale_y"`
	ScaleZ    float64 `gorm:"not null;default:1" json:"scale_z"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// InventoryItem <-> Room
	Room *Room `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (InventoryItem) TableName() string { return "inventory_items" }

type TopographicalTable struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"inventory_item_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// TopographicalTable <-> InventoryItem
	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// TopographicalTable <-> Topic
	Topics []TopographicalTableTopic `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"topics"`
}

func (TopographicalTable) TableName() string { return "topographical_tables" }

// TopographicalTableTopic is a menu entry on the table. Each topic bundles
// a selection of time series for the visitor to pick from.
type TopographicalTableTopic struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TopographicalTableID uuid.UUID `gorm:"type:uuid;not null;index" json:"topographical_table_id"`
	Topic                string    `gorm:"type:text;not null" json:"topic"`
	Description          *string   `gorm:"type:text" json:"description"`

	// Optional menu thumbnail.
	MediaFileImage2DID *uuid.UUID `gorm:"type:uuid" json:"media_file_image_2d_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Topic <-> TimeSeries (via join)
	TimeSeries []TimeSeries `gorm:"many2many:topic_time_series;joinForeignKey:TopographicalTableTopicID;joinReferences:TimeSeriesID" json:"time_series"`
}

func (TopographicalTableTopic) TableName() string { return "topographical_table_topics" }

type TopicTimeSeries struct {
	ID                        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TopographicalTableTopicID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:u_topic_series,priority:1" json:"topographical_table_topic_id"`
	TimeSeriesID              uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:u_topic_series,priority:2" json:"time_series_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TopicTimeSeries) TableName() string { return "topic_time_series" }
