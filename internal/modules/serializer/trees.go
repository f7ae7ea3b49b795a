package serializer

import (
	"time"

	"github.com/google/uuid"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

// Wire shapes for the nested configuration trees. Display-bound nullable
// text fields collapse to empty strings; multimediaPresentationId keeps an
// explicit null because its absence means "no presentation", which the
// engine branches on.

type MediaFileTree struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	FileName          string    `json:"fileName"`
	DurationInSeconds float64   `json:"durationInSeconds"`
	Type              string    `json:"type"`
	URL               string    `json:"url"`
}

type PresentationItemTree struct {
	ID                uuid.UUID      `json:"id"`
	SlotNumber        int            `json:"slotNumber"`
	SequenceNumber    int            `json:"sequenceNumber"`
	DurationInSeconds float64        `json:"durationInSeconds"`
	MediaFile         *MediaFileTree `json:"mediaFile"`
}

type PresentationTree struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Items       []PresentationItemTree `json:"items"`
}

type GeoEventTree struct {
	ID                       uuid.UUID         `json:"id"`
	GroupID                  uuid.UUID         `json:"groupId"`
	Name                     string            `json:"name"`
	Description              string            `json:"description"`
	DateTime                 time.Time         `json:"dateTime"`
	Latitude                 float64           `json:"latitude"`
	Longitude                float64           `json:"longitude"`
	MultimediaPresentationID *uuid.UUID        `json:"multimediaPresentationId"`
	MultimediaPresentation   *PresentationTree `json:"multimediaPresentation,omitempty"`
}

type GeoEventGroupTree struct {
	ID          uuid.UUID      `json:"id"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	GeoEvents   []GeoEventTree `json:"geoEvents"`
}

type TimeSeriesTree struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	GeoEventGroups []GeoEventGroupTree `json:"geoEventGroups"`
}

type TopicTree struct {
	ID          uuid.UUID        `json:"id"`
	Topic       string           `json:"topic"`
	Description string           `json:"description"`
	Image       *MediaFileTree   `json:"image"`
	TimeSeries  []TimeSeriesTree `json:"timeSeries"`
}

type TopographicalTableTree struct {
	ID     uuid.UUID   `json:"id"`
	Topics []TopicTree `json:"topics"`
}

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type InventoryItemTree struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"roomId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Position    Vector3   `json:"position"`
	Rotation    Vector3   `json:"rotation"`
	Scale       Vector3   `json:"scale"`
}

type RoomTree struct {
	ID             uuid.UUID           `json:"id"`
	TenantID       uuid.UUID           `json:"tenantId"`
	Label          string              `json:"label"`
	Description    string              `json:"description"`
	Metadata       map[string]any      `json:"metadata,omitempty"`
	InventoryItems []InventoryItemTree `json:"inventoryItems,omitempty"`
	Tenant         *TenantTree         `json:"tenant,omitempty"`
}

type TenantTree struct {
	ID    uuid.UUID  `json:"id"`
	Name  string     `json:"name"`
	Rooms []RoomTree `json:"rooms,omitempty"`
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func FormatMediaFile(m *model.MediaFile) *MediaFileTree {
	if m == nil {
		return nil
	}
	return &MediaFileTree{
		ID:                m.ID,
		Name:              strOrEmpty(m.Name),
		Description:       strOrEmpty(m.Description),
		FileName:          strOrEmpty(m.FileName),
		DurationInSeconds: m.DurationInSeconds,
		Type:              MediaTypeTag(m.Type),
		URL:               strOrEmpty(m.Url),
	}
}

// FormatPresentationItem keeps items with an unresolvable media reference,
// emitting a null mediaFile, so slot ordering in editors stays stable.
func FormatPresentationItem(item model.PresentationItem, media *model.MediaFile) PresentationItemTree {
	return PresentationItemTree{
		ID:                item.ID,
		SlotNumber:        item.SlotNumber,
		SequenceNumber:    item.SequenceNumber,
		DurationInSeconds: item.DurationInSeconds,
		MediaFile:         FormatMediaFile(media),
	}
}

func FormatGeoEvent(ev model.GeoEvent, presentation *PresentationTree) GeoEventTree {
	return GeoEventTree{
		ID:                       ev.ID,
		GroupID:                  ev.GeoEventGroupID,
		Name:                     ev.Name,
		Description:              strOrEmpty(ev.Description),
		DateTime:                 ev.DateTime,
		Latitude:                 ev.Latitude,
		Longitude:                ev.Longitude,
		MultimediaPresentationID: ev.MultimediaPresentationID,
		MultimediaPresentation:   presentation,
	}
}

func FormatInventoryItem(item model.InventoryItem) InventoryItemTree {
	return InventoryItemTree{
		ID:          item.ID,
		RoomID:      item.RoomID,
		Name:        strOrEmpty(item.Name),
		Description: strOrEmpty(item.Description),
		Type:        InventoryTypeTag(item.Type),
		Position:    Vector3{X: item.PositionX, Y: item.PositionY, Z: item.PositionZ},
		Rotation:    Vector3{X: item.RotationX, Y: item.RotationY, Z: item.RotationZ},
		Scale:       Vector3{X: item.ScaleX, Y: item.ScaleY, Z: item.ScaleZ},
	}
}
