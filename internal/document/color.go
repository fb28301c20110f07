package document

import "encoding/json"

// Color is a named foreground or background color tag.
type Color string

const (
	ColorNone             Color = ""
	ColorGray             Color = "gray"
	ColorBrown            Color = "brown"
	ColorOrange           Color = "orange"
	ColorYellow           Color = "yellow"
	ColorTeal             Color = "teal"
	ColorBlue             Color = "blue"
	ColorPurple           Color = "purple"
	ColorPink             Color = "pink"
	ColorRed              Color = "red"
	ColorGrayBackground   Color = "gray_background"
	ColorBrownBackground  Color = "brown_background"
	ColorOrangeBackground Color = "orange_background"
	ColorYellowBackground Color = "yellow_background"
	ColorTealBackground   Color = "teal_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorRedBackground    Color = "red_background"
)

var knownColors = map[Color]struct{}{
	ColorGray: {}, ColorBrown: {}, ColorOrange: {}, ColorYellow: {}, ColorTeal: {},
	ColorBlue: {}, ColorPurple: {}, ColorPink: {}, ColorRed: {},
	ColorGrayBackground: {}, ColorBrownBackground: {}, ColorOrangeBackground: {},
	ColorYellowBackground: {}, ColorTealBackground: {}, ColorBlueBackground: {},
	ColorPurpleBackground: {}, ColorPinkBackground: {}, ColorRedBackground: {},
}

// ParseColor maps a wire color name onto the closed enumeration. Unknown
// names map to ColorNone.
func ParseColor(value string) Color {
	c := Color(value)
	if _, ok := knownColors[c]; ok {
		return c
	}
	return ColorNone
}

// IsNone reports whether the color is the ColorNone sentinel.
func (c Color) IsNone() bool { return c == ColorNone }

func (c Color) String() string {
	if c == ColorNone {
		return "none"
	}
	return string(c)
}

// UnmarshalJSON accepts any JSON value; non-string or unknown values decode
// to ColorNone.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = ColorNone
		return nil
	}
	*c = ParseColor(raw)
	return nil
}

// MarshalJSON writes the wire name.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}
