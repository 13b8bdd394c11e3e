package message

import (
	"github.com/Siphalor/twilight/types"
)

// User is the partial user projection carried on messages: the author
// reference and mention targets. It is a distinct, smaller value type rather
// than the full user entity, keeping the message model's field set exact.
type User struct {
	ID            types.Snowflake `json:"id"`
	Username      string          `json:"username"`
	Discriminator string          `json:"discriminator,omitempty"`
	GlobalName    *string         `json:"global_name,omitempty"`
	Avatar        *string         `json:"avatar,omitempty"`
	Bot           bool            `json:"bot,omitempty"`
	System        bool            `json:"system,omitempty"`
	AccentColor   *types.Color    `json:"accent_color,omitempty"`
	Locale        types.Locale    `json:"locale,omitempty"`
	PublicFlags   int             `json:"public_flags,omitempty"`
}

// Member is the partial guild member projection attached to mentions: the
// per-guild nickname and role set that override how the user renders.
type Member struct {
	Nick         *string           `json:"nick,omitempty"`
	Roles        []types.Snowflake `json:"roles,omitempty"`
	JoinedAt     types.Timestamp   `json:"joined_at,omitzero"`
	PremiumSince types.Timestamp   `json:"premium_since,omitzero"`
	Pending      bool              `json:"pending,omitempty"`
}

// Mention records a user who was actually mentioned in a sent message, with
// the optional per-guild member overlay. Distinct from AllowedMentions,
// which is the pre-send policy.
type Mention struct {
	User
	Member *Member `json:"member,omitempty"`
}

// ChannelMention records a channel referenced in message content.
type ChannelMention struct {
	ID      types.Snowflake `json:"id"`
	GuildID types.Snowflake `json:"guild_id"`
	// Type is the channel kind discriminant of the mentioned channel.
	Type int    `json:"type"`
	Name string `json:"name"`
}
