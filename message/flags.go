package message

// Flags is the message bit-flag set, backed by the raw wire integer.
// Bits without a named constant pass through decode and encode untouched, so
// re-serializing a message never drops protocol state the model does not yet
// understand.
type Flags uint64

// Named message flags.
const (
	// FlagCrossposted marks a message published to subscribed channels.
	FlagCrossposted Flags = 1 << 0
	// FlagIsCrosspost marks a message that originated in another channel.
	FlagIsCrosspost Flags = 1 << 1
	// FlagSuppressEmbeds hides any embeds on the message.
	FlagSuppressEmbeds Flags = 1 << 2
	// FlagSourceMessageDeleted marks a crosspost whose source is gone.
	FlagSourceMessageDeleted Flags = 1 << 3
	// FlagUrgent marks a message from the urgent message system.
	FlagUrgent Flags = 1 << 4
	// FlagHasThread marks a message with an associated thread.
	FlagHasThread Flags = 1 << 5
	// FlagEphemeral marks an interaction response only the invoker sees.
	FlagEphemeral Flags = 1 << 6
	// FlagLoading marks an interaction response still "thinking".
	FlagLoading Flags = 1 << 7
	// FlagFailedToMentionSomeRolesInThread marks a thread-add failure.
	FlagFailedToMentionSomeRolesInThread Flags = 1 << 8
	// FlagSuppressNotifications delivers the message without notifying.
	FlagSuppressNotifications Flags = 1 << 12
	// FlagIsVoiceMessage marks a voice message.
	FlagIsVoiceMessage Flags = 1 << 13
)

// Contains reports whether every bit of flag is set.
func (f Flags) Contains(flag Flags) bool {
	return f&flag == flag
}

// Union returns the combination of both flag sets.
func (f Flags) Union(other Flags) Flags {
	return f | other
}

// With returns the set with the given bits added.
func (f Flags) With(flag Flags) Flags {
	return f | flag
}

// Without returns the set with the given bits cleared.
func (f Flags) Without(flag Flags) Flags {
	return f &^ flag
}

// named covers every bit with a constant above.
const named = FlagCrossposted | FlagIsCrosspost | FlagSuppressEmbeds |
	FlagSourceMessageDeleted | FlagUrgent | FlagHasThread | FlagEphemeral |
	FlagLoading | FlagFailedToMentionSomeRolesInThread |
	FlagSuppressNotifications | FlagIsVoiceMessage

// UnknownBits returns the set bits that have no named constant in this
// revision of the model.
func (f Flags) UnknownBits() Flags {
	return f &^ named
}
