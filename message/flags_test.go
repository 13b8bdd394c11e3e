package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_Contains(t *testing.T) {
	f := FlagCrossposted | FlagEphemeral

	assert.True(t, f.Contains(FlagCrossposted))
	assert.True(t, f.Contains(FlagEphemeral))
	assert.True(t, f.Contains(FlagCrossposted|FlagEphemeral))
	assert.False(t, f.Contains(FlagHasThread))
	assert.False(t, f.Contains(FlagCrossposted|FlagHasThread))
}

func TestFlags_SetOperations(t *testing.T) {
	f := FlagSuppressEmbeds.With(FlagUrgent)
	assert.True(t, f.Contains(FlagSuppressEmbeds))
	assert.True(t, f.Contains(FlagUrgent))

	f = f.Without(FlagSuppressEmbeds)
	assert.False(t, f.Contains(FlagSuppressEmbeds))
	assert.True(t, f.Contains(FlagUrgent))

	u := FlagLoading.Union(FlagEphemeral)
	assert.Equal(t, FlagLoading|FlagEphemeral, u)
}

func TestFlags_UnknownBits(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		unknown Flags
	}{
		{"all named", FlagCrossposted | FlagIsVoiceMessage, 0},
		{"one unknown bit", Flags(1 << 20), Flags(1 << 20)},
		{"mixed", FlagCrossposted | Flags(0x8000), Flags(0x8000)},
		{"gap bits are unknown", Flags(1 << 9), Flags(1 << 9)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.unknown, test.flags.UnknownBits())
		})
	}
}
