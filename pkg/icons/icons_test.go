package icons

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackbadge/pkg/color"
	"github.com/matzehuels/stackbadge/pkg/errors"
)

const (
	testSVG   = `<svg REPLACE="TAG"><path/></svg>`
	plainSVG  = `<svg><path/></svg>`
	testIndex = "0\t32\tff0000\tZeta\n32\t18\t00f\tAlpha\n"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse([]byte(testIndex), []byte(testSVG+plainSVG))
	require.NoError(t, err)
	return c
}

func TestParse(t *testing.T) {
	c := testCatalog(t)
	require.Equal(t, 2, c.Len())

	icons := c.Icons()
	assert.Equal(t, "Alpha", icons[0].Title)
	assert.Equal(t, "Zeta", icons[1].Title)
	assert.Equal(t, color.RGB(0, 0, 255), icons[0].BaseColor())
	assert.Equal(t, color.RGB(255, 0, 0), icons[1].BaseColor())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		index string
	}{
		{"missing newline", "0\t1\tfff\tA"},
		{"too few fields", "0\t1\tA\n"},
		{"bad offset", "x\t1\tfff\tA\n"},
		{"bad length", "0\t-1\tfff\tA\n"},
		{"out of range", "0\t99\tfff\tA\n"},
		{"offset past end", "99\t0\tfff\tA\n"},
		{"overflowing span", strconv.Itoa(math.MaxInt-1) + "\t10\tfff\tA\n"},
		{"overflowing length", "1\t" + strconv.Itoa(math.MaxInt) + "\tfff\tA\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.index), []byte(plainSVG))
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
		})
	}
}

func TestLookup(t *testing.T) {
	c := testCatalog(t)

	icon, ok := c.Lookup("Zeta")
	require.True(t, ok)
	assert.Equal(t, "Zeta", icon.Title)

	_, ok = c.Lookup("zeta")
	assert.False(t, ok)
	_, ok = c.Lookup("Beta")
	assert.False(t, ok)

	_, err := c.Get("Omega")
	assert.True(t, errors.Is(err, errors.ErrCodeIconNotFound))
}

func TestSVG(t *testing.T) {
	icon, _ := testCatalog(t).Lookup("Zeta")
	fill := color.MustParse("#fff")

	tests := []struct {
		name   string
		fill   *color.Color
		region *Region
		want   string
	}{
		{"bare", nil, nil, `<svg ><path/></svg>`},
		{"fill", &fill, nil, `<svg fill="#fff"><path/></svg>`},
		{"region", nil, &Region{1, 2, 14, 14}, `<svg  x="1" y="2" width="14" height="14"><path/></svg>`},
		{"both", &fill, &Region{0, 0, 24, 24}, `<svg fill="#fff" x="0" y="0" width="24" height="24"><path/></svg>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, icon.SVG(tt.fill, tt.region))
		})
	}

	plain, _ := testCatalog(t).Lookup("Alpha")
	assert.Equal(t, plainSVG, plain.SVG(&fill, &Region{}))
}

func TestURI(t *testing.T) {
	icon, _ := testCatalog(t).Lookup("Zeta")
	fill := icon.BaseColor()

	uri := icon.URI(&fill, nil)
	require.True(t, strings.HasPrefix(uri, DataURIPrefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
	require.NoError(t, err)
	assert.Equal(t, `<svg fill="red"><path/></svg>`, string(raw))
}

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	assert.Positive(t, c.Len())

	icons := c.Icons()
	for i := 1; i < len(icons); i++ {
		assert.Less(t, icons[i-1].Title, icons[i].Title)
	}
	for _, icon := range icons {
		svg := icon.SVG(nil, nil)
		assert.True(t, strings.HasPrefix(svg, "<svg"), icon.Title)
		assert.NotContains(t, svg, placeholder, icon.Title)
	}

	check, err := c.Get("Check")
	require.NoError(t, err)
	assert.Equal(t, "#2ea44f", check.BaseColor().String())

	assert.Len(t, c.Filter("ch"), 1)
	assert.Len(t, c.Filter(""), c.Len())
}
