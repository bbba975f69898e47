// Package fontgen derives width tables from TrueType and OpenType fonts.
//
// The advance of every mapped code point is measured at the requested pixel
// size without hinting, and consecutive code points of equal width are merged
// into a single [fonts.Range].
package fontgen

import (
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/stackbadge/pkg/errors"
	"github.com/matzehuels/stackbadge/pkg/fonts"
)

// MaxRune is the highest code point scanned by default (the Basic Multilingual Plane).
const MaxRune rune = 0xFFFF

// Source is a parsed font file ready for measurement.
type Source struct {
	Name string
	sfnt *sfnt.Font
}

// Parse parses a TrueType or OpenType font.
func Parse(data []byte) (*Source, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse font")
	}
	name, _ := f.Name(nil, sfnt.NameIDFull)
	return &Source{Name: name, sfnt: f}, nil
}

// Open reads and parses the font file at path.
func Open(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read font %s", path)
	}
	return Parse(data)
}

// Find locates an installed system font by file name, e.g. "Verdana.ttf".
func Find(name string) (string, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNotFound, err, "find system font %q", name)
	}
	return path, nil
}

// Ranges measures every code point in [0, max] that the font maps to a glyph.
func (s *Source) Ranges(size int, max rune) ([]fonts.Range, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %d", size)
	}

	var (
		buf    sfnt.Buffer
		ppem   = fixed.I(size)
		ranges []fonts.Range
	)
	for r := rune(0); r <= max; r++ {
		if fonts.IsControl(r) {
			continue
		}
		gid, err := s.sfnt.GlyphIndex(&buf, r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "glyph index of %U", r)
		}
		if gid == 0 {
			continue
		}
		adv, err := s.sfnt.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "advance of %U", r)
		}
		w := float64(adv) / 64

		if n := len(ranges); n > 0 && ranges[n-1].High == r-1 && ranges[n-1].Width == w {
			ranges[n-1].High = r
			continue
		}
		ranges = append(ranges, fonts.Range{Low: r, High: r, Width: w})
	}
	return ranges, nil
}

// Font measures the source at size and builds a font from the result.
func (s *Source) Font(size int) (*fonts.Font, error) {
	ranges, err := s.Ranges(size, MaxRune)
	if err != nil {
		return nil, err
	}
	return fonts.New(ranges, size)
}

// Generate parses data and measures it at size.
func Generate(data []byte, size int) (*fonts.Font, error) {
	src, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return src.Font(size)
}
