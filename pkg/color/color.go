// Package color implements the CSS color model used by badges.
//
// A [Color] is four 8-bit channels. Colors are parsed from the textual forms
// accepted by CSS (hex, rgb, rgba, hsl, hsla and the named colors) and
// serialized back to the shortest equivalent form, which is what ends up in
// rendered badge markup.
//
// # Parsing
//
// Grammars are tried in a fixed order and the first match wins:
//
//	#RGB, #RRGGBB
//	rgb(r, g, b)           r, g, b in 0-255
//	rgba(r, g, b, a)       a is a fraction in 0-1
//	hsl(h, s%, l%)         h in 0-360, s and l in 0-100%
//	hsla(h, s%, l%, a)     a is an integer in 0-255
//	aliceblue ... yellowgreen
//
// The functional forms are only attempted when the text ends in ")".
// Named colors are matched case-sensitively.
package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/stackbadge/internal/decimal"
	"github.com/matzehuels/stackbadge/pkg/errors"
)

// Color is an RGBA color with 8 bits per channel.
// The zero value is transparent black; use [Black] for the opaque default.
type Color struct {
	R, G, B, A uint8
}

// Black is the default color: opaque black.
var Black = Color{0, 0, 0, 255}

// contrastThreshold separates dark backgrounds (light text) from light ones.
const contrastThreshold = 0.69

// Text and shadow colors returned by ContrastPair.
const (
	LightText   = "#fff"
	LightShadow = "#010101"
	DarkText    = "#333"
	DarkShadow  = "#ccc"
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// FromRGBA32 unpacks a color stored as 0xRRGGBBAA.
func FromRGBA32(v uint32) Color {
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// RGBA32 packs the color as 0xRRGGBBAA.
func (c Color) RGBA32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Parse parses a CSS color. It returns an INVALID_COLOR error if no grammar matches.
func Parse(text string) (Color, error) {
	if c, ok := parse(text); ok {
		return c, nil
	}
	return Black, errors.New(errors.ErrCodeInvalidColor, "invalid color %q", text)
}

// FromString parses text. With strict set, a parse failure is returned as an
// error; otherwise it is ignored and [Black] is returned.
func FromString(text string, strict bool) (Color, error) {
	c, err := Parse(text)
	if err != nil && !strict {
		return Black, nil
	}
	return c, err
}

// MustParse is like Parse but panics on invalid input.
// It is intended for package-level color constants.
func MustParse(text string) Color {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

func parse(text string) (Color, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Black, false
	}
	if c, ok := ParseHex(s); ok {
		return c, true
	}
	if strings.HasSuffix(s, ")") {
		for _, p := range []func(string) (Color, bool){ParseRGB, ParseRGBA, ParseHSL, ParseHSLA} {
			if c, ok := p(s); ok {
				return c, true
			}
		}
	}
	return ParseName(s)
}

// ParseHex parses #RGB or #RRGGBB.
func ParseHex(s string) (Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return Black, false
	}
	switch len(s) {
	case 7:
		var ch [3]uint8
		for i := range ch {
			v, ok := hexByte(s[1+2*i : 3+2*i])
			if !ok {
				return Black, false
			}
			ch[i] = v
		}
		return RGB(ch[0], ch[1], ch[2]), true
	case 4:
		var ch [3]uint8
		for i := range ch {
			v, ok := hexByte(s[1+i : 2+i])
			if !ok {
				return Black, false
			}
			ch[i] = v * 17
		}
		return RGB(ch[0], ch[1], ch[2]), true
	}
	return Black, false
}

// ParseRGB parses rgb(r, g, b).
func ParseRGB(s string) (Color, bool) {
	args, ok := arguments(s, "rgb(", 3)
	if !ok {
		return Black, false
	}
	var ch [3]uint8
	for i, a := range args {
		v, ok := channel(a)
		if !ok {
			return Black, false
		}
		ch[i] = v
	}
	return RGB(ch[0], ch[1], ch[2]), true
}

// ParseRGBA parses rgba(r, g, b, a) where a is a fraction between 0 and 1.
func ParseRGBA(s string) (Color, bool) {
	args, ok := arguments(s, "rgba(", 4)
	if !ok {
		return Black, false
	}
	var ch [3]uint8
	for i, a := range args[:3] {
		v, ok := channel(a)
		if !ok {
			return Black, false
		}
		ch[i] = v
	}
	alpha, ok := fraction(args[3])
	if !ok {
		return Black, false
	}
	return Color{ch[0], ch[1], ch[2], alpha}, true
}

// ParseHSL parses hsl(h, s%, l%).
func ParseHSL(s string) (Color, bool) {
	args, ok := arguments(s, "hsl(", 3)
	if !ok {
		return Black, false
	}
	h, s2, l, ok := hslArgs(args)
	if !ok {
		return Black, false
	}
	return fromHSL(h, s2, l, 255), true
}

// ParseHSLA parses hsla(h, s%, l%, a) where a is an integer between 0 and 255.
func ParseHSLA(s string) (Color, bool) {
	args, ok := arguments(s, "hsla(", 4)
	if !ok {
		return Black, false
	}
	h, s2, l, ok := hslArgs(args[:3])
	if !ok {
		return Black, false
	}
	alpha, ok := channel(args[3])
	if !ok {
		return Black, false
	}
	return fromHSL(h, s2, l, alpha), true
}

// ParseName looks up a CSS named color. Names are case-sensitive.
func ParseName(s string) (Color, bool) {
	c, ok := named[s]
	if !ok {
		return Black, false
	}
	return c, true
}

// String returns the shortest CSS form of c: a color name, #rgb or #rrggbb
// for opaque colors, and rgba(r,g,b,a) otherwise.
func (c Color) String() string {
	if c.A != 255 {
		var b strings.Builder
		b.WriteString("rgba(")
		b.WriteString(strconv.Itoa(int(c.R)))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(c.G)))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(c.B)))
		b.WriteByte(',')
		b.WriteString(decimal.FormatPrec(float64(c.A)/255, 4))
		b.WriteByte(')')
		return b.String()
	}

	hex := c.Hex()
	if c.R>>4 == c.R&0xf && c.G>>4 == c.G&0xf && c.B>>4 == c.B&0xf {
		hex = string([]byte{'#', hexDigits[c.R&0xf], hexDigits[c.G&0xf], hexDigits[c.B&0xf]})
	}
	if name, ok := c.Name(); ok && len(name) < len(hex) {
		return name
	}
	return hex
}

// Hex returns the #rrggbb form of c, ignoring alpha.
func (c Color) Hex() string {
	return string([]byte{
		'#',
		hexDigits[c.R>>4], hexDigits[c.R&0xf],
		hexDigits[c.G>>4], hexDigits[c.G&0xf],
		hexDigits[c.B>>4], hexDigits[c.B&0xf],
	})
}

// Name returns the CSS name of an opaque color. When several names share a
// value (gray and grey), the shortest one wins, then the alphabetically first.
func (c Color) Name() (string, bool) {
	if c.A != 255 {
		return "", false
	}
	name, ok := reverseNamed[c]
	return name, ok
}

// Brightness returns the perceived luma of c in [0, 1].
func (c Color) Brightness() float64 {
	return (299*float64(c.R) + 587*float64(c.G) + 114*float64(c.B)) / 255000
}

// ContrastPair returns the text and shadow colors to draw on top of c.
func (c Color) ContrastPair() (text, shadow string) {
	if c.Brightness() <= contrastThreshold {
		return LightText, LightShadow
	}
	return DarkText, DarkShadow
}

// ContrastFor parses background leniently and returns its contrast pair.
func ContrastFor(background string) (text, shadow string) {
	c, _ := FromString(background, false)
	return c.ContrastPair()
}

const hexDigits = "0123456789abcdef"

var reverseNamed = func() map[Color]string {
	m := make(map[Color]string, len(named))
	for name, c := range named {
		if prev, ok := m[c]; ok {
			if len(prev) < len(name) || (len(prev) == len(name) && prev < name) {
				continue
			}
		}
		m[c] = name
	}
	return m
}()

// arguments strips prefix and the closing parenthesis and splits the rest into
// exactly n comma-separated, trimmed tokens.
func arguments(s, prefix string, n int) ([]string, bool) {
	if len(s) <= len(prefix) || !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	args := strings.Split(s[len(prefix):len(s)-1], ",")
	if len(args) != n {
		return nil, false
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, true
}

func hexByte(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func channel(s string) (uint8, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

func fraction(s string) (uint8, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 1 {
		return 0, false
	}
	return uint8(math.Round(v * 255)), true
}

func hslArgs(args []string) (h int, s, l float64, ok bool) {
	h, err := strconv.Atoi(args[0])
	if err != nil || h < 0 || h > 360 {
		return 0, 0, 0, false
	}
	if s, ok = percent(args[1]); !ok {
		return 0, 0, 0, false
	}
	if l, ok = percent(args[2]); !ok {
		return 0, 0, 0, false
	}
	return h, s, l, true
}

func percent(s string) (float64, bool) {
	num, found := strings.CutSuffix(s, "%")
	if !found {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 100 {
		return 0, false
	}
	return v / 100, true
}

// fromHSL converts with the chroma/hue-sector method. Channels are truncated.
func fromHSL(h int, s, l float64, alpha uint8) Color {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(float64(h)/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch (h % 360) / 60 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: alpha,
	}
}
