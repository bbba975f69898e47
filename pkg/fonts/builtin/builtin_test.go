package builtin

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackbadge/pkg/fonts"
)

func TestRegistry(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)

	again, err := Registry()
	require.NoError(t, err)
	assert.Same(t, reg, again)

	assert.Equal(t, []string{
		fonts.HelveticaBold11,
		fonts.VerdanaBold10,
		fonts.VerdanaNormal10,
		fonts.VerdanaNormal11,
	}, reg.Names())

	for _, name := range reg.Names() {
		f, err := reg.Get(name)
		require.NoError(t, err)
		n, err := fonts.ParseName(name)
		require.NoError(t, err)
		assert.Equal(t, n.Size, f.Size(), name)
	}

	regular, _ := reg.Get(fonts.VerdanaNormal10)
	bold, _ := reg.Get(fonts.VerdanaBold10)
	wr, _ := regular.TextWidth("PASSING", false)
	wb, _ := bold.TextWidth("PASSING", false)
	assert.Greater(t, wb, wr)
}

func TestDirectoryOverride(t *testing.T) {
	dir := fstest.MapFS{
		"verdana-11px-normal.json": {Data: []byte("[[32,126,7]]")},
	}
	reg, err := NewRegistry(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())

	f, err := reg.Default()
	require.NoError(t, err)
	w, ok := f.TextWidth("abc", false)
	require.True(t, ok)
	assert.Equal(t, 21.0, w)
}
