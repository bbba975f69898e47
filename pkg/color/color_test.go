package color

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"hex6", "#ff8000", Color{255, 128, 0, 255}},
		{"hex6 upper", "#FF8000", Color{255, 128, 0, 255}},
		{"hex3", "#f80", Color{255, 136, 0, 255}},
		{"rgb", "rgb(1,2,3)", Color{1, 2, 3, 255}},
		{"rgb spaced", "  rgb( 1 , 2 , 3 )  ", Color{1, 2, 3, 255}},
		{"rgba half", "rgba(255, 0, 0, 0.5)", Color{255, 0, 0, 128}},
		{"rgba transparent", "rgba(0,0,0,0)", Color{0, 0, 0, 0}},
		{"hsl red", "hsl(0,100%,50%)", Color{255, 0, 0, 255}},
		{"hsl dark green", "hsl(120, 100%, 25%)", Color{0, 127, 0, 255}},
		{"hsl hue 360", "hsl(360,100%,50%)", Color{255, 0, 0, 255}},
		{"hsla", "hsla(120,100%,50%,128)", Color{0, 255, 0, 128}},
		{"name", "rebeccapurple", Color{102, 51, 153, 255}},
		{"name trimmed", " navy ", Color{0, 0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"#12",
		"#12345",
		"#ggg",
		"#12345g",
		"rgb(256,0,0)",
		"rgb(-1,0,0)",
		"rgb(1,2)",
		"rgb(1,2,3,4)",
		"rgb(1.5,2,3)",
		"rgb()",
		"rgba(0,0,0,1.5)",
		"rgba(0,0,0,nan)",
		"hsl(361,0%,0%)",
		"hsl(0,50,50%)",
		"hsl(0,101%,50%)",
		"hsla(0,50%,50%,0.5)",
		"Red",
		"notacolor",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidColor), "got %v", err)
		})
	}
}

func TestEquivalentForms(t *testing.T) {
	rgb := MustParse("rgb(255, 0, 0)")
	hex := MustParse("#f00")
	name := MustParse("red")

	assert.Equal(t, rgb, hex)
	assert.Equal(t, hex, name)
	assert.Equal(t, MustParse("#f00").Brightness(), MustParse("hsl(0,100%,50%)").Brightness())
}

func TestFromString(t *testing.T) {
	c, err := FromString("bogus", false)
	require.NoError(t, err)
	assert.Equal(t, Black, c)

	_, err = FromString("bogus", true)
	assert.Error(t, err)

	c, err = FromString("#abc", true)
	require.NoError(t, err)
	assert.Equal(t, Color{0xaa, 0xbb, 0xcc, 255}, c)
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Color
		want string
	}{
		{Color{255, 0, 0, 255}, "red"},
		{Color{0x11, 0x22, 0x33, 255}, "#123"},
		{Color{0x12, 0x34, 0x56, 255}, "#123456"},
		{Color{0, 0, 128, 255}, "navy"},
		{Color{255, 255, 255, 255}, "#fff"},
		{Color{0, 255, 255, 255}, "#0ff"},
		{Color{0xd2, 0xb4, 0x8c, 255}, "tan"},
		{Color{0x44, 0xcc, 0x11, 255}, "#4c1"},
		{Color{255, 0, 0, 128}, "rgba(255,0,0,.5019)"},
		{Color{1, 2, 3, 0}, "rgba(1,2,3,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for v := 0; v < 0x1000; v++ {
		in := fmt.Sprintf("#%03x", v)
		c := MustParse(in)
		out := c.String()
		assert.LessOrEqual(t, len(out), len(in), "%s -> %s", in, out)
		assert.Equal(t, c, MustParse(out), "%s -> %s", in, out)
	}

	for _, in := range []string{"#000080", "#123456", "#fafafa", "#d5d5d5", "#663399", "#f0f8ff"} {
		c := MustParse(in)
		out := c.String()
		assert.LessOrEqual(t, len(out), len(in), "%s -> %s", in, out)
		assert.Equal(t, c, MustParse(out), "%s -> %s", in, out)
	}
}

func TestName(t *testing.T) {
	name, ok := RGB(0, 255, 255).Name()
	require.True(t, ok)
	assert.Equal(t, "aqua", name)

	name, ok = RGB(255, 0, 255).Name()
	require.True(t, ok)
	assert.Equal(t, "fuchsia", name)

	name, ok = RGB(128, 128, 128).Name()
	require.True(t, ok)
	assert.Equal(t, "gray", name)

	_, ok = RGB(1, 2, 3).Name()
	assert.False(t, ok)

	_, ok = Color{255, 0, 0, 0}.Name()
	assert.False(t, ok)
}

func TestBrightness(t *testing.T) {
	assert.Equal(t, 0.0, Black.Brightness())
	assert.InDelta(t, 1.0, RGB(255, 255, 255).Brightness(), 1e-12)
	assert.InDelta(t, 0.299, RGB(255, 0, 0).Brightness(), 1e-12)
}

func TestContrastPair(t *testing.T) {
	text, shadow := MustParse("#000").ContrastPair()
	assert.Equal(t, "#fff", text)
	assert.Equal(t, "#010101", shadow)

	text, shadow = MustParse("#fff").ContrastPair()
	assert.Equal(t, "#333", text)
	assert.Equal(t, "#ccc", shadow)

	text, _ = ContrastFor("#4c1")
	assert.Equal(t, LightText, text)

	text, _ = ContrastFor("not a color")
	assert.Equal(t, LightText, text)

	text, _ = ContrastFor("yellow")
	assert.Equal(t, DarkText, text)
}

func TestRGBA32(t *testing.T) {
	c := FromRGBA32(0x11223344)
	assert.Equal(t, Color{0x11, 0x22, 0x33, 0x44}, c)
	assert.Equal(t, uint32(0x11223344), c.RGBA32())
	assert.Equal(t, uint32(0x000000ff), Black.RGBA32())
}
