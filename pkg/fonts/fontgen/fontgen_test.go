package fontgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/stackbadge/pkg/errors"
	"github.com/matzehuels/stackbadge/pkg/fonts"
)

func TestRangesMonospace(t *testing.T) {
	src, err := Parse(gomono.TTF)
	require.NoError(t, err)
	assert.NotEmpty(t, src.Name)

	ranges, err := src.Ranges(11, 0x7f)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, rune(' '), ranges[0].Low)
	assert.Equal(t, rune('~'), ranges[0].High)
	assert.Greater(t, ranges[0].Width, 0.0)
}

func TestGenerate(t *testing.T) {
	f, err := Generate(goregular.TTF, 11)
	require.NoError(t, err)
	assert.Equal(t, 11, f.Size())

	m, ok := f.WidthOf('m', false)
	require.True(t, ok)
	i, ok := f.WidthOf('i', false)
	require.True(t, ok)
	assert.Greater(t, m, i)
	assert.Less(t, m, 11.0*2)

	ranges := f.Ranges()
	for k := 1; k < len(ranges); k++ {
		assert.Greater(t, ranges[k].Low, ranges[k-1].High)
	}

	_, ok = f.WidthOf('\u0007', false)
	assert.True(t, ok)
}

func TestScaling(t *testing.T) {
	src, err := Parse(goregular.TTF)
	require.NoError(t, err)

	small, err := src.Font(10)
	require.NoError(t, err)
	large, err := src.Font(20)
	require.NoError(t, err)

	ws, _ := small.TextWidth("badge", false)
	wl, _ := large.TextWidth("badge", false)
	assert.InDelta(t, 2*ws, wl, 0.5)
}

func TestInvalid(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	src, err := Parse(goregular.TTF)
	require.NoError(t, err)
	_, err = src.Ranges(0, fonts.GuessRune)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Open("testdata/missing.ttf")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}
