package pexels

import (
	"regexp"
	"strings"
)

// MediaType filters collection media to a single kind.
// The zero value requests all media.
type MediaType string

const (
	MediaTypeAll   MediaType = ""
	MediaTypePhoto MediaType = "photos"
	MediaTypeVideo MediaType = "videos"
)

// ParseMediaType parses a media type value case-insensitively.
// The empty string parses to MediaTypeAll.
func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(s) {
	case "photo", "photos":
		return MediaTypePhoto, nil
	case "video", "videos":
		return MediaTypeVideo, nil
	case "":
		return MediaTypeAll, nil
	default:
		return MediaTypeAll, ErrInvalidMediaType
	}
}

func (t MediaType) String() string { return string(t) }

// MediaSort orders items in a media collection. The API default is asc.
type MediaSort string

const (
	MediaSortAsc  MediaSort = "asc"
	MediaSortDesc MediaSort = "desc"
)

// ParseMediaSort parses a sort order value case-insensitively.
func ParseMediaSort(s string) (MediaSort, error) {
	switch strings.ToLower(s) {
	case "asc":
		return MediaSortAsc, nil
	case "desc":
		return MediaSortDesc, nil
	default:
		return "", ErrInvalidMediaSort
	}
}

func (s MediaSort) String() string { return string(s) }

// Orientation is the desired photo or video orientation.
type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Square    Orientation = "square"
)

// ParseOrientation parses an orientation value case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "landscape":
		return Landscape, nil
	case "portrait":
		return Portrait, nil
	case "square":
		return Square, nil
	default:
		return "", ErrInvalidOrientation
	}
}

func (o Orientation) String() string { return string(o) }

// Size is the minimum photo or video size.
type Size string

const (
	SizeLarge  Size = "large"
	SizeMedium Size = "medium"
	SizeSmall  Size = "small"
)

// ParseSize parses a size value case-insensitively.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(s) {
	case "large":
		return SizeLarge, nil
	case "medium":
		return SizeMedium, nil
	case "small":
		return SizeSmall, nil
	default:
		return "", ErrInvalidSize
	}
}

func (s Size) String() string { return string(s) }

// Locale is the locale of the search being performed.
type Locale string

// Locales supported by the search endpoints.
const (
	LocaleEnUS Locale = "en-US"
	LocalePtBR Locale = "pt-BR"
	LocaleEsES Locale = "es-ES"
	LocaleCaES Locale = "ca-ES"
	LocaleDeDE Locale = "de-DE"
	LocaleItIT Locale = "it-IT"
	LocaleFrFR Locale = "fr-FR"
	LocaleSvSE Locale = "sv-SE"
	LocaleIdID Locale = "id-ID"
	LocalePlPL Locale = "pl-PL"
	LocaleJaJP Locale = "ja-JP"
	LocaleZhTW Locale = "zh-TW"
	LocaleZhCN Locale = "zh-CN"
	LocaleKoKR Locale = "ko-KR"
	LocaleThTH Locale = "th-TH"
	LocaleNlNL Locale = "nl-NL"
	LocaleHuHU Locale = "hu-HU"
	LocaleViVN Locale = "vi-VN"
	LocaleCsCZ Locale = "cs-CZ"
	LocaleDaDK Locale = "da-DK"
	LocaleFiFI Locale = "fi-FI"
	LocaleUkUA Locale = "uk-UA"
	LocaleElGR Locale = "el-GR"
	LocaleRoRO Locale = "ro-RO"
	LocaleNbNO Locale = "nb-NO"
	LocaleSkSK Locale = "sk-SK"
	LocaleTrTR Locale = "tr-TR"
	LocaleRuRU Locale = "ru-RU"
)

var locales = map[string]Locale{
	"en-us": LocaleEnUS,
	"pt-br": LocalePtBR,
	"es-es": LocaleEsES,
	"ca-es": LocaleCaES,
	"de-de": LocaleDeDE,
	"it-it": LocaleItIT,
	"fr-fr": LocaleFrFR,
	"sv-se": LocaleSvSE,
	"id-id": LocaleIdID,
	"pl-pl": LocalePlPL,
	"ja-jp": LocaleJaJP,
	"zh-tw": LocaleZhTW,
	"zh-cn": LocaleZhCN,
	"ko-kr": LocaleKoKR,
	"th-th": LocaleThTH,
	"nl-nl": LocaleNlNL,
	"hu-hu": LocaleHuHU,
	"vi-vn": LocaleViVN,
	"cs-cz": LocaleCsCZ,
	"da-dk": LocaleDaDK,
	"fi-fi": LocaleFiFI,
	"uk-ua": LocaleUkUA,
	"el-gr": LocaleElGR,
	"ro-ro": LocaleRoRO,
	"nb-no": LocaleNbNO,
	"sk-sk": LocaleSkSK,
	"tr-tr": LocaleTrTR,
	"ru-ru": LocaleRuRU,
}

// ParseLocale parses a locale tag case-insensitively. Both "en-US" and
// "en_us" spellings are accepted.
func ParseLocale(s string) (Locale, error) {
	key := strings.ToLower(strings.ReplaceAll(s, "_", "-"))
	if l, ok := locales[key]; ok {
		return l, nil
	}
	return "", ErrInvalidLocale
}

func (l Locale) String() string { return string(l) }

// Color is a named color filter for photo search.
type Color string

const (
	ColorRed       Color = "red"
	ColorOrange    Color = "orange"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorTurquoise Color = "turquoise"
	ColorBlue      Color = "blue"
	ColorViolet    Color = "violet"
	ColorPink      Color = "pink"
	ColorBrown     Color = "brown"
	ColorBlack     Color = "black"
	ColorGray      Color = "gray"
	ColorWhite     Color = "white"
)

var namedColors = map[string]Color{
	"red":       ColorRed,
	"orange":    ColorOrange,
	"yellow":    ColorYellow,
	"green":     ColorGreen,
	"turquoise": ColorTurquoise,
	"blue":      ColorBlue,
	"violet":    ColorViolet,
	"pink":      ColorPink,
	"brown":     ColorBrown,
	"black":     ColorBlack,
	"gray":      ColorGray,
	"white":     ColorWhite,
}

// ParseColor parses a named color case-insensitively.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return "", ErrInvalidColor
}

func (c Color) String() string { return string(c) }

var hexColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ParseHexColor validates a six-digit hex color code and returns it in
// canonical "#rrggbb" form.
func ParseHexColor(s string) (string, error) {
	if !hexColorRe.MatchString(s) {
		return "", &HexColorError{Value: s}
	}
	hex := strings.ToLower(strings.TrimPrefix(s, "#"))
	return "#" + hex, nil
}
