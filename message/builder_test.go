package message

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Siphalor/twilight/component"
	"github.com/Siphalor/twilight/embed"
	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/types"
)

func TestBuilder_ContentOnly(t *testing.T) {
	payload, err := NewBuilder().Content("hello").Build()
	require.NoError(t, err)

	out, err := payload.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"content": "hello"}`, string(out))
}

func TestBuilder_Full(t *testing.T) {
	payload, err := NewBuilder().
		Content("release notes").
		Nonce("dedup-1", true).
		TTS().
		Embed(embed.Embed{Title: "1.4.0", Description: "fixes"}).
		AllowedMentions(AllowedMentions{Parse: []MentionType{MentionTypeUsers}}).
		ReplyTo(types.Snowflake(42)).
		Component(component.ActionRow{Components: []component.Component{
			component.Button{Style: component.ButtonStyleLink, Label: "Changelog", URL: "https://example.com"},
		}}).
		Sticker(types.Snowflake(7)).
		Flags(FlagSuppressNotifications).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "release notes", payload.Content)
	assert.Equal(t, "dedup-1", payload.Nonce)
	assert.True(t, payload.EnforceNonce)
	assert.True(t, payload.TTS)
	require.NotNil(t, payload.Reference)
	assert.Equal(t, types.Snowflake(42), payload.Reference.MessageID)
	assert.Equal(t, []types.Snowflake{7}, payload.StickerIDs)
	assert.Equal(t, FlagSuppressNotifications, payload.Flags)

	out, err := payload.Encode()
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Contains(t, raw, "allowed_mentions")
	assert.Contains(t, raw, "components")
}

func TestBuilder_Empty(t *testing.T) {
	_, err := NewBuilder().Build()
	require.Error(t, err)
	assert.True(t, errors.IsMissingRequiredField(err))
}

func TestBuilder_StickerOnlyIsValid(t *testing.T) {
	_, err := NewBuilder().Sticker(types.Snowflake(7)).Build()
	assert.NoError(t, err)
}

func TestBuilder_ContentTooLong(t *testing.T) {
	// length is counted in characters, not bytes
	ok := strings.Repeat("ä", MaxContentLength)
	_, err := NewBuilder().Content(ok).Build()
	assert.NoError(t, err)

	_, err = NewBuilder().Content(ok + "x").Build()
	require.Error(t, err)
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestBuilder_TooManyEmbeds(t *testing.T) {
	b := NewBuilder()
	for i := 0; i <= MaxEmbeds; i++ {
		b.Embed(embed.Embed{Title: "e"})
	}
	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestBuilder_InvalidEmbed(t *testing.T) {
	_, err := NewBuilder().
		Embed(embed.Embed{Title: "fine"}).
		Embed(embed.Embed{Title: strings.Repeat("x", embed.MaxTitleLength+1)}).
		Build()
	require.Error(t, err)

	var de *errors.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "embeds[1].title", de.Path)
}

func TestBuilder_AllowedMentionsOverlap(t *testing.T) {
	_, err := NewBuilder().
		Content("hi").
		AllowedMentions(AllowedMentions{
			Parse: []MentionType{MentionTypeUsers},
			Users: []types.Snowflake{1, 2},
		}).
		Build()
	require.Error(t, err)
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestAllowedMentions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       AllowedMentions
		wantErr bool
	}{
		{"empty suppresses all", AllowedMentions{}, false},
		{"parse only", AllowedMentions{Parse: []MentionType{MentionTypeEveryone, MentionTypeRoles}}, false},
		{"explicit lists only", AllowedMentions{Roles: []types.Snowflake{1}, Users: []types.Snowflake{2}}, false},
		{"roles overlap", AllowedMentions{Parse: []MentionType{MentionTypeRoles}, Roles: []types.Snowflake{1}}, true},
		{"users overlap", AllowedMentions{Parse: []MentionType{MentionTypeUsers}, Users: []types.Snowflake{2}}, true},
		{"no overlap across categories", AllowedMentions{Parse: []MentionType{MentionTypeRoles}, Users: []types.Snowflake{2}}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.a.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
