// Package embed provides the rich embed family attached to messages.
//
// Embeds are selected by an open "type" string discriminant (rich, image,
// video, gifv, article, link, ...). Unrecognized types decode and re-encode
// unchanged; strict decoding surfaces them as schema errors at the codec
// layer. Outbound embeds are always type "rich"; the remaining types only
// appear on received messages where the protocol generated them from URLs.
package embed

import (
	"unicode/utf8"

	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/types"
)

// Type is the open embed discriminant. Unrecognized values pass through
// decode and encode unchanged.
type Type string

// Known embed types.
const (
	TypeRich       Type = "rich"
	TypeImage      Type = "image"
	TypeVideo      Type = "video"
	TypeGIFV       Type = "gifv"
	TypeArticle    Type = "article"
	TypeLink       Type = "link"
	TypePollResult Type = "poll_result"
)

// Known reports whether the type is part of the recognized set. Used by
// strict decoding; lenient decoding never consults it.
func (t Type) Known() bool {
	switch t {
	case TypeRich, TypeImage, TypeVideo, TypeGIFV, TypeArticle, TypeLink, TypePollResult:
		return true
	}
	return false
}

// Protocol-documented length limits for outbound embeds.
const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFields            = 25
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	MaxFooterTextLength  = 2048
	MaxAuthorNameLength  = 256
	MaxTotalLength       = 6000
)

// Embed is a rich content block attached to a message.
type Embed struct {
	Title       string           `json:"title,omitempty"`
	Type        Type             `json:"type,omitempty"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url,omitempty"`
	Timestamp   types.Timestamp  `json:"timestamp,omitzero"`
	Color       types.Color      `json:"color,omitempty"`
	Footer      *Footer          `json:"footer,omitempty"`
	Image       *Image           `json:"image,omitempty"`
	Thumbnail   *Thumbnail       `json:"thumbnail,omitempty"`
	Video       *Video           `json:"video,omitempty"`
	Provider    *Provider        `json:"provider,omitempty"`
	Author      *Author          `json:"author,omitempty"`
	Fields      []Field          `json:"fields,omitempty"`
}

// Footer is the embed footer line.
type Footer struct {
	Text         string `json:"text"`
	IconURL      string `json:"icon_url,omitempty"`
	ProxyIconURL string `json:"proxy_icon_url,omitempty"`
}

// Image is the embed's large image.
type Image struct {
	URL      string `json:"url"`
	ProxyURL string `json:"proxy_url,omitempty"`
	Height   int    `json:"height,omitempty"`
	Width    int    `json:"width,omitempty"`
}

// Thumbnail is the embed's corner thumbnail.
type Thumbnail struct {
	URL      string `json:"url"`
	ProxyURL string `json:"proxy_url,omitempty"`
	Height   int    `json:"height,omitempty"`
	Width    int    `json:"width,omitempty"`
}

// Video is the embed's video media. Only appears on received embeds.
type Video struct {
	URL      string `json:"url,omitempty"`
	ProxyURL string `json:"proxy_url,omitempty"`
	Height   int    `json:"height,omitempty"`
	Width    int    `json:"width,omitempty"`
}

// Provider names the service a link embed was generated from.
type Provider struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Author is the embed author line.
type Author struct {
	Name         string `json:"name"`
	URL          string `json:"url,omitempty"`
	IconURL      string `json:"icon_url,omitempty"`
	ProxyIconURL string `json:"proxy_icon_url,omitempty"`
}

// Field is a titled name/value pair in the embed body.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Validate checks the protocol's documented length limits for outbound
// embeds. Received embeds are not validated; the protocol may exceed its own
// outbound limits for generated embeds.
func (e Embed) Validate() error {
	total := 0
	count := func(s string) int {
		n := utf8.RuneCountInString(s)
		total += n
		return n
	}

	if count(e.Title) > MaxTitleLength {
		return errors.NewTypeMismatch("title", "at most 256 characters", "longer")
	}
	if count(e.Description) > MaxDescriptionLength {
		return errors.NewTypeMismatch("description", "at most 4096 characters", "longer")
	}
	if e.Footer != nil && count(e.Footer.Text) > MaxFooterTextLength {
		return errors.NewTypeMismatch("footer.text", "at most 2048 characters", "longer")
	}
	if e.Author != nil && count(e.Author.Name) > MaxAuthorNameLength {
		return errors.NewTypeMismatch("author.name", "at most 256 characters", "longer")
	}
	if len(e.Fields) > MaxFields {
		return errors.NewTypeMismatch("fields", "at most 25 fields", "more")
	}
	for i, f := range e.Fields {
		if count(f.Name) > MaxFieldNameLength {
			return errors.NewTypeMismatch(errors.Index("fields", i)+".name", "at most 256 characters", "longer")
		}
		if count(f.Value) > MaxFieldValueLength {
			return errors.NewTypeMismatch(errors.Index("fields", i)+".value", "at most 1024 characters", "longer")
		}
	}
	if total > MaxTotalLength {
		return errors.NewTypeMismatch("", "at most 6000 characters in total", "longer")
	}
	return nil
}
