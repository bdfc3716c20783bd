package domain

import "regexp"

// CustomColourSlots is the number of user-assignable colour slots.
const CustomColourSlots = 4

// hexColour matches #RGB and #RRGGBB forms.
var hexColour = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Theme is a named set of colour variables plus the custom colour slots.
// It round-trips through the theme export file format.
type Theme struct {
	// Colours maps variable names (e.g. "primary", "background") to hex
	// colour values.
	Colours map[string]string `json:"theme"`

	// CustomColours holds the user's quick-pick colours. Always exactly
	// CustomColourSlots entries.
	CustomColours []string `json:"customColors"`
}

// DefaultTheme returns the built-in colour palette.
func DefaultTheme() Theme {
	return Theme{
		Colours: map[string]string{
			"primary":    "#7C3AED",
			"secondary":  "#06B6D4",
			"background": "#1E1E2E",
			"foreground": "#CDD6F4",
			"muted":      "#6C7086",
			"success":    "#A6E3A1",
			"warning":    "#F9E2AF",
			"error":      "#F38BA8",
			"border":     "#45475A",
		},
		CustomColours: []string{"#F38BA8", "#A6E3A1", "#F9E2AF", "#89B4FA"},
	}
}

// ValidHexColour reports whether the value is a #RGB or #RRGGBB colour.
func ValidHexColour(value string) bool {
	return hexColour.MatchString(value)
}

// Validate checks every colour value in the theme. It returns
// ErrInvalidColour on the first malformed value and ErrInvalidInput if
// the custom slot count is wrong.
func (t Theme) Validate() error {
	for _, v := range t.Colours {
		if !ValidHexColour(v) {
			return ErrInvalidColour
		}
	}
	if len(t.CustomColours) != CustomColourSlots {
		return ErrInvalidInput
	}
	for _, v := range t.CustomColours {
		if !ValidHexColour(v) {
			return ErrInvalidColour
		}
	}
	return nil
}

// Clone returns a deep copy of the theme.
func (t Theme) Clone() Theme {
	c := Theme{
		Colours:       make(map[string]string, len(t.Colours)),
		CustomColours: append([]string(nil), t.CustomColours...),
	}
	for k, v := range t.Colours {
		c.Colours[k] = v
	}
	return c
}
