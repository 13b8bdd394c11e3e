package sticker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatType_Known(t *testing.T) {
	for f := FormatTypePNG; f <= FormatTypeGIF; f++ {
		assert.True(t, f.Known())
	}
	assert.False(t, FormatType(0).Known())
	assert.False(t, FormatType(9).Known())
}

func TestFormatType_String(t *testing.T) {
	assert.Equal(t, "lottie", FormatTypeLottie.String())
	assert.Equal(t, "9", FormatType(9).String())
}

func TestStickerType_Known(t *testing.T) {
	assert.True(t, StickerTypeStandard.Known())
	assert.True(t, StickerTypeGuild.Known())
	assert.False(t, StickerType(7).Known())
}

func TestItem_RoundTrip(t *testing.T) {
	doc := `{"id": "749054660769218631", "name": "Wave", "format_type": 3}`
	var item Item
	require.NoError(t, json.Unmarshal([]byte(doc), &item))
	assert.Equal(t, "Wave", item.Name)
	assert.Equal(t, FormatTypeLottie, item.FormatType)

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
}

func TestItem_UnknownFormatPassesThrough(t *testing.T) {
	doc := `{"id": "1", "name": "Future", "format_type": 9}`
	var item Item
	require.NoError(t, json.Unmarshal([]byte(doc), &item))
	assert.Equal(t, FormatType(9), item.FormatType)
	assert.False(t, item.FormatType.Known())

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
}

func TestSticker_RoundTrip(t *testing.T) {
	s := Sticker{
		ID:          749054660769218631,
		PackID:      847199849233514549,
		Name:        "Wave",
		Description: "Wumpus waves hello",
		Tags:        "wumpus, hello",
		Type:        StickerTypeStandard,
		FormatType:  FormatTypeLottie,
		Available:   true,
		SortValue:   12,
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var again Sticker
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, s, again)
}
