package badge

import (
	"strconv"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

// Style selects the visual layout of a badge.
type Style int

// Supported styles.
const (
	Flat Style = iota
	FlatSquare
	Plastic
	ForTheBadge
	Social
)

var styleNames = [...]string{
	Flat:        "flat",
	FlatSquare:  "flat-square",
	Plastic:     "plastic",
	ForTheBadge: "for-the-badge",
	Social:      "social",
}

// Styles returns every supported style in declaration order.
func Styles() []Style {
	return []Style{Flat, FlatSquare, Plastic, ForTheBadge, Social}
}

// ParseStyle returns the style with the given name, e.g. "flat-square".
func ParseStyle(s string) (Style, error) {
	for i, name := range styleNames {
		if name == s {
			return Style(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnsupportedStyle, "unsupported style %q", s)
}

func (s Style) String() string {
	if s.Valid() {
		return styleNames[s]
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	return s >= 0 && int(s) < len(styleNames)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.New(errors.ErrCodeUnsupportedStyle, "unsupported style %d", int(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
