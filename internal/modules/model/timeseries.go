package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeSeries is the only entity with mandatory name and description; the
// table menu renders both and has no fallback.
type TimeSeries struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// TimeSeries <-> GeoEventGroup
	GeoEventGroups []GeoEventGroup `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"geo_event_groups"`
}

func (TimeSeries) TableName() string { return "time_series" }

type GeoEventGroup struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TimeSeriesID uuid.UUID `gorm:"type:uuid;not null;index" json:"time_series_id"`
	Label        *string   `gorm:"type:text" json:"label"`
	Description  *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// GeoEventGroup <-> GeoEvent
	GeoEvents []GeoEvent `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"geo_events"`
}

func (GeoEventGroup) TableName() string { return "geo_event_groups" }

// GeoEvent pins a historical event to a point on the table. Latitude and
// longitude are stored as given; out-of-range values are accepted.
type GeoEvent struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GeoEventGroupID uuid.UUID `gorm:"type:uuid;not null;index" json:"geo_event_group_id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Description     *string   `gorm:"type:text" json:"description"`
	DateTime        time.Time `gorm:"not null" json:"date_time"`
	Latitude        float64   `gorm:"not null" json:"latitude"`
	Longitude       float64   `gorm:"not null" json:"longitude"`

	MultimediaPresentationID *uuid.UUID `gorm:"type:uuid;index" json:"multimedia_presentation_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// GeoEvent <-> MultimediaPresentation
	MultimediaPresentation *MultimediaPresentation `gorm:"foreignKey:MultimediaPresentationID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (GeoEvent) TableName() string { return "geo_events" }
