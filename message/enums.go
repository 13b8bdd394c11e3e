package message

import "strconv"

// Type is the open message kind discriminant. It determines which optional
// fields of a message are semantically meaningful (only replies carry a
// populated reference, only role subscription announcements carry
// RoleSubscriptionData), but decoding never rejects a message because an
// unexpected optional field is populated.
type Type int

// Known message types.
const (
	TypeRegular                               Type = 0
	TypeRecipientAdd                          Type = 1
	TypeRecipientRemove                       Type = 2
	TypeCall                                  Type = 3
	TypeChannelNameChange                     Type = 4
	TypeChannelIconChange                     Type = 5
	TypeChannelMessagePinned                  Type = 6
	TypeUserJoin                              Type = 7
	TypeGuildBoost                            Type = 8
	TypeGuildBoostTier1                       Type = 9
	TypeGuildBoostTier2                       Type = 10
	TypeGuildBoostTier3                       Type = 11
	TypeChannelFollowAdd                      Type = 12
	TypeGuildDiscoveryDisqualified            Type = 14
	TypeGuildDiscoveryRequalified             Type = 15
	TypeGuildDiscoveryGracePeriodInitialWarn  Type = 16
	TypeGuildDiscoveryGracePeriodFinalWarn    Type = 17
	TypeThreadCreated                         Type = 18
	TypeReply                                 Type = 19
	TypeChatInputCommand                      Type = 20
	TypeThreadStarterMessage                  Type = 21
	TypeGuildInviteReminder                   Type = 22
	TypeContextMenuCommand                    Type = 23
	TypeAutoModerationAction                  Type = 24
	TypeRoleSubscriptionPurchase              Type = 25
	TypeInteractionPremiumUpsell              Type = 26
	TypeStageStart                            Type = 27
	TypeStageEnd                              Type = 28
	TypeStageSpeaker                          Type = 29
	TypeStageTopic                            Type = 31
	TypeGuildApplicationPremiumSubscription   Type = 32
)

// Known reports whether the type is part of the recognized set.
func (t Type) Known() bool {
	switch {
	case t >= TypeRegular && t <= TypeChannelFollowAdd:
		return true
	case t >= TypeGuildDiscoveryDisqualified && t <= TypeStageSpeaker:
		return true
	case t == TypeStageTopic || t == TypeGuildApplicationPremiumSubscription:
		return true
	}
	return false
}

// String returns the name of a known type, or the raw value otherwise.
func (t Type) String() string {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeRecipientAdd:
		return "recipient_add"
	case TypeRecipientRemove:
		return "recipient_remove"
	case TypeCall:
		return "call"
	case TypeChannelNameChange:
		return "channel_name_change"
	case TypeChannelIconChange:
		return "channel_icon_change"
	case TypeChannelMessagePinned:
		return "channel_message_pinned"
	case TypeUserJoin:
		return "user_join"
	case TypeGuildBoost:
		return "guild_boost"
	case TypeGuildBoostTier1:
		return "guild_boost_tier_1"
	case TypeGuildBoostTier2:
		return "guild_boost_tier_2"
	case TypeGuildBoostTier3:
		return "guild_boost_tier_3"
	case TypeChannelFollowAdd:
		return "channel_follow_add"
	case TypeGuildDiscoveryDisqualified:
		return "guild_discovery_disqualified"
	case TypeGuildDiscoveryRequalified:
		return "guild_discovery_requalified"
	case TypeGuildDiscoveryGracePeriodInitialWarn:
		return "guild_discovery_grace_period_initial_warning"
	case TypeGuildDiscoveryGracePeriodFinalWarn:
		return "guild_discovery_grace_period_final_warning"
	case TypeThreadCreated:
		return "thread_created"
	case TypeReply:
		return "reply"
	case TypeChatInputCommand:
		return "chat_input_command"
	case TypeThreadStarterMessage:
		return "thread_starter_message"
	case TypeGuildInviteReminder:
		return "guild_invite_reminder"
	case TypeContextMenuCommand:
		return "context_menu_command"
	case TypeAutoModerationAction:
		return "auto_moderation_action"
	case TypeRoleSubscriptionPurchase:
		return "role_subscription_purchase"
	case TypeInteractionPremiumUpsell:
		return "interaction_premium_upsell"
	case TypeStageStart:
		return "stage_start"
	case TypeStageEnd:
		return "stage_end"
	case TypeStageSpeaker:
		return "stage_speaker"
	case TypeStageTopic:
		return "stage_topic"
	case TypeGuildApplicationPremiumSubscription:
		return "guild_application_premium_subscription"
	default:
		return strconv.Itoa(int(t))
	}
}

// ActivityType is the open rich presence activity discriminant.
type ActivityType int

// Known activity types. The value 4 is unassigned in the protocol.
const (
	ActivityTypeJoin        ActivityType = 1
	ActivityTypeSpectate    ActivityType = 2
	ActivityTypeListen      ActivityType = 3
	ActivityTypeJoinRequest ActivityType = 5
)

// Known reports whether the activity type is part of the recognized set.
func (t ActivityType) Known() bool {
	switch t {
	case ActivityTypeJoin, ActivityTypeSpectate, ActivityTypeListen, ActivityTypeJoinRequest:
		return true
	}
	return false
}

// ReactionType is the open reaction kind discriminant distinguishing normal
// from burst ("super") reactions.
type ReactionType int

// Known reaction types.
const (
	ReactionTypeNormal ReactionType = 0
	ReactionTypeBurst  ReactionType = 1
)

// Known reports whether the reaction type is part of the recognized set.
func (t ReactionType) Known() bool {
	return t == ReactionTypeNormal || t == ReactionTypeBurst
}

// MentionType is the open mention category used in the allowed-mentions
// parse list.
type MentionType string

// Known mention categories.
const (
	MentionTypeEveryone MentionType = "everyone"
	MentionTypeRoles    MentionType = "roles"
	MentionTypeUsers    MentionType = "users"
)

// Known reports whether the mention category is part of the recognized set.
func (t MentionType) Known() bool {
	switch t {
	case MentionTypeEveryone, MentionTypeRoles, MentionTypeUsers:
		return true
	}
	return false
}

// InteractionType is the open interaction kind discriminant carried in
// interaction metadata.
type InteractionType int

// Known interaction types.
const (
	InteractionTypePing               InteractionType = 1
	InteractionTypeApplicationCommand InteractionType = 2
	InteractionTypeMessageComponent   InteractionType = 3
	InteractionTypeAutocomplete       InteractionType = 4
	InteractionTypeModalSubmit        InteractionType = 5
)

// Known reports whether the interaction type is part of the recognized set.
func (t InteractionType) Known() bool {
	return t >= InteractionTypePing && t <= InteractionTypeModalSubmit
}

// ReferenceType is the open message reference kind discriminant.
type ReferenceType int

// Known reference types.
const (
	// ReferenceTypeDefault points at a replied-to or crossposted message.
	ReferenceTypeDefault ReferenceType = 0
	// ReferenceTypeForward points at a forwarded message snapshot.
	ReferenceTypeForward ReferenceType = 1
)

// Known reports whether the reference type is part of the recognized set.
func (t ReferenceType) Known() bool {
	return t == ReferenceTypeDefault || t == ReferenceTypeForward
}
