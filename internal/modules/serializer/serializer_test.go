package serializer

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/model"
)

func TestMediaTypeTags(t *testing.T) {
	assert.Equal(t, "Image2D", MediaTypeTag(model.MediaTypeImage2D))
	assert.Equal(t, "Video360", MediaTypeTag(model.MediaTypeVideo360))
	assert.Equal(t, "Audio", MediaTypeTag(model.MediaTypeAudio))
	// out-of-range values never leak a number onto the wire
	assert.Equal(t, "Unknown", MediaTypeTag(model.MediaType(42)))
}

func TestParseMediaType(t *testing.T) {
	v, ok := ParseMediaType("Video3D")
	assert.True(t, ok)
	assert.Equal(t, model.MediaTypeVideo3D, v)

	_, ok = ParseMediaType("Hologram")
	assert.False(t, ok)
}

func TestFormatMediaFileCollapsesNullText(t *testing.T) {
	tree := FormatMediaFile(&model.MediaFile{ID: uuid.New(), Type: model.MediaTypeAudio})
	require.NotNil(t, tree)
	assert.Equal(t, "", tree.Name)
	assert.Equal(t, "", tree.Description)
	assert.Equal(t, "", tree.FileName)
	assert.Equal(t, "Audio", tree.Type)

	assert.Nil(t, FormatMediaFile(nil))
}

func TestGeoEventWireFormat(t *testing.T) {
	ev := model.GeoEvent{ID: uuid.New(), GeoEventGroupID: uuid.New(), Name: "Flood of 1342"}
	raw, err := json.Marshal(FormatGeoEvent(ev, nil))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	// absent presentation id must serialize as explicit null, the VR
	// client branches on it
	v, present := m["multimediaPresentationId"]
	assert.True(t, present)
	assert.Nil(t, v)

	// absent presentation object is omitted entirely
	_, present = m["multimediaPresentation"]
	assert.False(t, present)

	assert.Equal(t, "", m["description"])
}

func TestPresentationItemNullMediaStaysOnWire(t *testing.T) {
	item := model.PresentationItem{ID: uuid.New(), SlotNumber: 2, SequenceNumber: 1}
	raw, err := json.Marshal(FormatPresentationItem(item, nil))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	v, present := m["mediaFile"]
	assert.True(t, present)
	assert.Nil(t, v)
	assert.Equal(t, float64(2), m["slotNumber"])
}

func TestParamErrExtractsFieldIssues(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	err := validator.New().Struct(payload{})
	require.Error(t, err)

	res := ParamErr("", err)
	require.NotEmpty(t, res.Fields)
	assert.Equal(t, "Name", res.Fields[0].Field)
	assert.Equal(t, "required", res.Fields[0].Rule)
}
