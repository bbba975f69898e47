// Package fonts provides the glyph width tables used to size badge text.
//
// A [Font] maps code point ranges to advance widths at a fixed pixel size.
// Tables are immutable once built and are looked up by binary search, so a
// single Font can be shared by any number of concurrent renders.
//
// Fonts are registered by name in a [Registry]. Names follow the
// <family>-<size>px-<weight> convention, e.g. "verdana-11px-normal".
package fonts

import (
	"sort"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

// GuessRune is the reference glyph whose width is used for unmapped code points.
const GuessRune = 'm'

// Conventional font names used by the badge styles.
const (
	VerdanaNormal11 = "verdana-11px-normal"
	VerdanaNormal10 = "verdana-10px-normal"
	VerdanaBold10   = "verdana-10px-bold"
	HelveticaBold11 = "helvetica-11px-bold"

	// DefaultFont is the font used for plain badge text.
	DefaultFont = VerdanaNormal11
)

// Range assigns Width to every code point in [Low, High].
type Range struct {
	Low   rune
	High  rune
	Width float64
}

// Font is a width table at a fixed pixel size.
type Font struct {
	ranges []Range
	size   int
	guess  float64
}

// New builds a font from ranges ordered by High with no overlaps.
// The table must map [GuessRune] to a positive width.
func New(ranges []Range, size int) (*Font, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFontTable, "font size must be positive, got %d", size)
	}
	for i, r := range ranges {
		if r.Low < 0 || r.High < r.Low {
			return nil, errors.New(errors.ErrCodeInvalidFontTable, "range %d: invalid bounds [%d, %d]", i, r.Low, r.High)
		}
		if i > 0 && r.Low <= ranges[i-1].High {
			return nil, errors.New(errors.ErrCodeInvalidFontTable, "range %d: [%d, %d] overlaps or precedes [%d, %d]",
				i, r.Low, r.High, ranges[i-1].Low, ranges[i-1].High)
		}
	}

	f := &Font{
		ranges: append([]Range(nil), ranges...),
		size:   size,
	}
	guess, ok := f.WidthOf(GuessRune, false)
	if !ok || guess <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFontTable, "width of %q must be positive, got %g", GuessRune, guess)
	}
	f.guess = guess
	return f, nil
}

// Size returns the pixel size the table was measured at.
func (f *Font) Size() int { return f.size }

// GuessWidth returns the width used for unmapped code points.
func (f *Font) GuessWidth() float64 { return f.guess }

// Ranges returns a copy of the width table.
func (f *Font) Ranges() []Range {
	return append([]Range(nil), f.ranges...)
}

// IsControl reports whether r is a control character, which has no width.
func IsControl(r rune) bool {
	return (r >= 0 && r <= 31) || r == 127
}

// WidthOf returns the advance width of r. Control characters are 0 wide.
// For an unmapped code point it returns the guess width if guess is set,
// and false otherwise.
func (f *Font) WidthOf(r rune, guess bool) (float64, bool) {
	if IsControl(r) {
		return 0, true
	}
	i := sort.Search(len(f.ranges), func(i int) bool { return f.ranges[i].High >= r })
	if i < len(f.ranges) && f.ranges[i].Low <= r {
		return f.ranges[i].Width, true
	}
	if guess {
		return f.guess, true
	}
	return 0, false
}

// TextWidth sums the widths of the code points in s. With guess unset, any
// unmapped code point makes the whole width unknown.
func (f *Font) TextWidth(s string, guess bool) (float64, bool) {
	var total float64
	for _, r := range s {
		w, ok := f.WidthOf(r, guess)
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}
