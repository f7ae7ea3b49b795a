package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaType is stored numerically. This ordering is the canonical one; it
// matches the persisted data and never leaves the server as a number (the
// wire format uses string tags, see serializer).
type MediaType int

const (
	MediaTypeImage2D  MediaType = 0
	MediaTypeImage3D  MediaType = 1
	MediaTypeImage360 MediaType = 2
	MediaTypeVideo2D  MediaType = 3
	MediaTypeVideo3D  MediaType = 4
	MediaTypeVideo360 MediaType = 5
	MediaTypeAudio    MediaType = 6
)

// MediaFile is a binary the headset can render. FileName and Url stay null
// until the binary has been uploaded.
type MediaFile struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name              *string   `gorm:"type:text" json:"name"`
	Description       *string   `gorm:"type:text" json:"description"`
	FileName          *string   `gorm:"type:text" json:"file_name"`
	DurationInSeconds float64   `gorm:"not null;default:0" json:"duration_in_seconds"`
	Type              MediaType `gorm:"type:int;not null;default:0" json:"type"`
	Url               *string   `gorm:"type:text" json:"url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MediaFile) TableName() string { return "media_files" }

type MultimediaPresentation struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        *string   `gorm:"type:text" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// MultimediaPresentation <-> PresentationItem
	PresentationItems []PresentationItem `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"presentation_items"`
}

func (MultimediaPresentation) TableName() string { return "multimedia_presentations" }

// PresentationItem assigns a media file to a playback slot. Within a slot,
// sequence numbers are contiguous from 0; the reconciler rewrites them on
// every update. By convention slot 0 holds audio, slot 1 holds 360° media
// and slots >= 2 hold flat media; the convention is not enforced here.
type PresentationItem struct {
	ID                       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MultimediaPresentationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"multimedia_presentation_id"`
	MediaFileID              *uuid.UUID `gorm:"type:uuid;index" json:"media_file_id"`
	SlotNumber               int        `gorm:"not null;default:0" json:"slot_number"`
	SequenceNumber           int        `gorm:"not null;default:0" json:"sequence_number"`
	DurationInSeconds        float64    `gorm:"not null;default:0" json:"duration_in_seconds"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// PresentationItem <-> MediaFile
	MediaFile *MediaFile `gorm:"foreignKey:MediaFileID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"media_file"`
}

func (PresentationItem) TableName() string { return "presentation_items" }
