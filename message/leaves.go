package message

import (
	"github.com/Siphalor/twilight/emoji"
	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/types"
)

// Attachment is a file attached to a message.
type Attachment struct {
	ID          types.Snowflake `json:"id"`
	Filename    string          `json:"filename"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	ContentType string          `json:"content_type,omitempty"`
	Size        int             `json:"size"`
	URL         string          `json:"url"`
	ProxyURL    string          `json:"proxy_url"`
	Height      *int            `json:"height,omitempty"`
	Width       *int            `json:"width,omitempty"`
	// Ephemeral attachments disappear once the interaction response is
	// dismissed.
	Ephemeral bool `json:"ephemeral,omitempty"`
	// DurationSecs and Waveform are set on voice messages.
	DurationSecs float64 `json:"duration_secs,omitempty"`
	Waveform     string  `json:"waveform,omitempty"`
	Flags        int     `json:"flags,omitempty"`
}

// ReactionCountDetails splits a reaction count into normal and burst parts.
type ReactionCountDetails struct {
	Burst  int `json:"burst"`
	Normal int `json:"normal"`
}

// Reaction is one emoji's reaction tally on a message.
type Reaction struct {
	Count        int                   `json:"count"`
	CountDetails *ReactionCountDetails `json:"count_details,omitempty"`
	// Me reports whether the current user reacted with this emoji.
	Me      bool `json:"me"`
	MeBurst bool `json:"me_burst,omitempty"`
	// Emoji is the tagged custom-or-unicode choice.
	Emoji emoji.Emoji `json:"emoji"`
	// Type distinguishes normal from burst reactions. Always emitted; the
	// discriminant is part of the reaction document.
	Type ReactionType `json:"type"`
	// BurstColors are the celebration colors of a burst reaction.
	BurstColors []string `json:"burst_colors,omitempty"`
}

// Activity is the rich presence invitation metadata attached to a message.
type Activity struct {
	Type ActivityType `json:"type"`
	// PartyID identifies the rich presence party to join or spectate.
	PartyID string `json:"party_id,omitempty"`
}

// Application is the partial application projection attached to rich
// presence messages. Only the fields relevant to rendering the invitation
// are carried.
type Application struct {
	ID          types.Snowflake `json:"id"`
	CoverImage  *string         `json:"cover_image,omitempty"`
	Description string          `json:"description,omitempty"`
	Icon        *string         `json:"icon"`
	Name        string          `json:"name"`
}

// Reference points at another message for replies, crossposts, forwards, and
// pin tracking. Every pointer is independently optional: a reply whose
// target was deleted still decodes as "reference present, message ID
// unknown".
type Reference struct {
	Type      ReferenceType   `json:"type,omitempty"`
	MessageID types.Snowflake `json:"message_id,omitempty"`
	ChannelID types.Snowflake `json:"channel_id,omitempty"`
	GuildID   types.Snowflake `json:"guild_id,omitempty"`
	// FailIfNotExists controls whether sending a reply to a deleted message
	// errors or falls back to a plain message. Outbound only.
	FailIfNotExists *bool `json:"fail_if_not_exists,omitempty"`
}

// Interaction identifies the interaction a message responds to.
type Interaction struct {
	ID   types.Snowflake `json:"id"`
	Type InteractionType `json:"type"`
	// Name is the invoked command's name.
	Name string `json:"name"`
	User User   `json:"user"`
}

// RoleSubscriptionData is attached to system messages announcing a role
// subscription purchase or renewal.
type RoleSubscriptionData struct {
	RoleSubscriptionListingID types.Snowflake `json:"role_subscription_listing_id"`
	TierName                  string          `json:"tier_name"`
	TotalMonthsSubscribed     int             `json:"total_months_subscribed"`
	IsRenewal                 bool            `json:"is_renewal"`
}

// AllowedMentions is the explicit outbound allow-list policy controlling who
// a sent message may ping. Category-wide allowances (Parse) and explicit ID
// lists are independent axes: an ID in Roles or Users is allowed even when
// its category is not in Parse.
type AllowedMentions struct {
	Parse       []MentionType     `json:"parse"`
	Roles       []types.Snowflake `json:"roles,omitempty"`
	Users       []types.Snowflake `json:"users,omitempty"`
	RepliedUser bool              `json:"replied_user,omitempty"`
}

// Validate rejects policies the protocol refuses: naming a category in Parse
// while also supplying its explicit ID list is ambiguous and errors upstream.
func (a AllowedMentions) Validate() error {
	for _, p := range a.Parse {
		switch p {
		case MentionTypeRoles:
			if len(a.Roles) > 0 {
				return errors.NewTypeMismatch("allowed_mentions", "parse roles or explicit role list", "both")
			}
		case MentionTypeUsers:
			if len(a.Users) > 0 {
				return errors.NewTypeMismatch("allowed_mentions", "parse users or explicit user list", "both")
			}
		}
	}
	return nil
}
