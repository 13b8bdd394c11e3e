package types

import "fmt"

// Color is a 24-bit RGB color as the protocol encodes it: a plain integer
// with red in the high byte.
type Color int

// NewColor packs the given channels into a Color.
func NewColor(r, g, b uint8) Color {
	return Color(int(r)<<16 | int(g)<<8 | int(b))
}

// RGB unpacks the color channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String returns the CSS-style hex form, e.g. "#5865f2".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", int(c))
}

// Locale is an IETF language tag as carried in user and interaction payloads,
// e.g. "en-US", "de". Open set; unrecognized tags pass through unchanged.
type Locale string

// Locales observed in current protocol payloads. The set grows over time and
// is not exhaustive.
const (
	LocaleEnglishUS Locale = "en-US"
	LocaleEnglishGB Locale = "en-GB"
	LocaleGerman    Locale = "de"
	LocaleFrench    Locale = "fr"
	LocaleSpanish   Locale = "es-ES"
	LocaleJapanese  Locale = "ja"
	LocaleKorean    Locale = "ko"
	LocaleChineseCN Locale = "zh-CN"
)
