package display

import (
	"fmt"
	"math"
)

// Style tags a change cell with its sign
type Style int

const (
	StyleNeutral Style = iota
	StylePositive
	StyleNegative
)

// ChangeStyle classifies a percentage change. Zero, NaN and missing
// values are neutral.
func ChangeStyle(v *float64) Style {
	if v == nil || math.IsNaN(*v) {
		return StyleNeutral
	}
	switch {
	case *v < 0:
		return StyleNegative
	case *v > 0:
		return StylePositive
	default:
		return StyleNeutral
	}
}

func (s Style) String() string {
	switch s {
	case StylePositive:
		return "positive"
	case StyleNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Color returns the CSS color of the style
func (s Style) Color() string {
	switch s {
	case StylePositive:
		return "#00C08B"
	case StyleNegative:
		return "red"
	default:
		return "inherit"
	}
}

// CSS returns the inline declaration for the style
func (s Style) CSS() string {
	return fmt.Sprintf("color: %s; font-weight: bold;", s.Color())
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	switch string(text) {
	case "positive":
		*s = StylePositive
	case "negative":
		*s = StyleNegative
	case "neutral", "":
		*s = StyleNeutral
	default:
		return fmt.Errorf("unknown style %q", text)
	}
	return nil
}
