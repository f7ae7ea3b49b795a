package serializer

import (
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

// Wire tags for the numeric media type codes. The numeric values never
// appear on the wire; clients only ever see these strings.
var mediaTypeTags = map[model.MediaType]string{
	model.MediaTypeImage2D:  "Image2D",
	model.MediaTypeImage3D:  "Image3D",
	model.MediaTypeImage360: "Image360",
	model.MediaTypeVideo2D:  "Video2D",
	model.MediaTypeVideo3D:  "Video3D",
	model.MediaTypeVideo360: "Video360",
	model.MediaTypeAudio:    "Audio",
}

var mediaTypeValues = map[string]model.MediaType{
	"Image2D":  model.MediaTypeImage2D,
	"Image3D":  model.MediaTypeImage3D,
	"Image360": model.MediaTypeImage360,
	"Video2D":  model.MediaTypeVideo2D,
	"Video3D":  model.MediaTypeVideo3D,
	"Video360": model.MediaTypeVideo360,
	"Audio":    model.MediaTypeAudio,
}

func MediaTypeTag(t model.MediaType) string {
	if tag, ok := mediaTypeTags[t]; ok {
		return tag
	}
	return "Unknown"
}

// ParseMediaType resolves a wire tag; the second return value is false for
// unknown tags.
func ParseMediaType(tag string) (model.MediaType, bool) {
	t, ok := mediaTypeValues[tag]
	return t, ok
}

var inventoryTypeTags = map[model.InventoryType]string{
	model.InventoryTypeUnknown:            "Unknown",
	model.InventoryTypeTopographicalTable: "TopographicalTable",
}

func InventoryTypeTag(t model.InventoryType) string {
	if tag, ok := inventoryTypeTags[t]; ok {
		return tag
	}
	return "Unknown"
}
