// Package sticker provides sticker payloads: the compact sticker item
// carried on messages and the full sticker entity.
//
// Format and sticker type discriminants are open: unrecognized values decode
// and re-encode unchanged, and strict decoding surfaces them as schema errors
// at the codec layer.
package sticker

import (
	"strconv"

	"github.com/Siphalor/twilight/types"
)

// FormatType is the open sticker media format discriminant.
type FormatType int

// Known sticker formats.
const (
	FormatTypePNG    FormatType = 1
	FormatTypeAPNG   FormatType = 2
	FormatTypeLottie FormatType = 3
	FormatTypeGIF    FormatType = 4
)

// Known reports whether the format is part of the recognized set.
func (f FormatType) Known() bool {
	return f >= FormatTypePNG && f <= FormatTypeGIF
}

// String returns the name of a known format, or the raw value otherwise.
func (f FormatType) String() string {
	switch f {
	case FormatTypePNG:
		return "png"
	case FormatTypeAPNG:
		return "apng"
	case FormatTypeLottie:
		return "lottie"
	case FormatTypeGIF:
		return "gif"
	default:
		return strconv.Itoa(int(f))
	}
}

// StickerType is the open sticker origin discriminant.
type StickerType int

// Known sticker types.
const (
	// StickerTypeStandard is a sticker from a first-party pack.
	StickerTypeStandard StickerType = 1
	// StickerTypeGuild is a sticker uploaded to a guild.
	StickerTypeGuild StickerType = 2
)

// Known reports whether the type is part of the recognized set.
func (t StickerType) Known() bool {
	return t == StickerTypeStandard || t == StickerTypeGuild
}

// Item is the compact projection carried on messages: just enough to render
// the sticker without fetching the full entity.
type Item struct {
	ID         types.Snowflake `json:"id"`
	Name       string          `json:"name"`
	FormatType FormatType      `json:"format_type"`
}

// Sticker is the full sticker entity, returned by sticker endpoints and
// carried on messages from older protocol revisions.
type Sticker struct {
	ID          types.Snowflake `json:"id"`
	PackID      types.Snowflake `json:"pack_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Tags        string          `json:"tags,omitempty"`
	Type        StickerType     `json:"type"`
	FormatType  FormatType      `json:"format_type"`
	Available   bool            `json:"available,omitempty"`
	GuildID     types.Snowflake `json:"guild_id,omitempty"`
	SortValue   int             `json:"sort_value,omitempty"`
}
