package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_Known(t *testing.T) {
	assert.True(t, TypeRegular.Known())
	assert.True(t, TypeReply.Known())
	assert.True(t, TypeGuildApplicationPremiumSubscription.Known())

	// 13 and 30 are unassigned protocol values
	assert.False(t, Type(13).Known())
	assert.False(t, Type(30).Known())
	assert.False(t, Type(250).Known())
	assert.False(t, Type(-1).Known())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "regular", TypeRegular.String())
	assert.Equal(t, "reply", TypeReply.String())
	assert.Equal(t, "role_subscription_purchase", TypeRoleSubscriptionPurchase.String())
	assert.Equal(t, "250", Type(250).String())
}

func TestActivityType_Known(t *testing.T) {
	assert.True(t, ActivityTypeJoin.Known())
	assert.True(t, ActivityTypeJoinRequest.Known())
	assert.False(t, ActivityType(4).Known())
	assert.False(t, ActivityType(0).Known())
}

func TestReactionType_Known(t *testing.T) {
	assert.True(t, ReactionTypeNormal.Known())
	assert.True(t, ReactionTypeBurst.Known())
	assert.False(t, ReactionType(2).Known())
}

func TestMentionType_Known(t *testing.T) {
	assert.True(t, MentionTypeEveryone.Known())
	assert.True(t, MentionTypeRoles.Known())
	assert.True(t, MentionTypeUsers.Known())
	assert.False(t, MentionType("here").Known())
}

func TestInteractionType_Known(t *testing.T) {
	assert.True(t, InteractionTypePing.Known())
	assert.True(t, InteractionTypeModalSubmit.Known())
	assert.False(t, InteractionType(0).Known())
	assert.False(t, InteractionType(6).Known())
}

func TestReferenceType_Known(t *testing.T) {
	assert.True(t, ReferenceTypeDefault.Known())
	assert.True(t, ReferenceTypeForward.Known())
	assert.False(t, ReferenceType(2).Known())
}
