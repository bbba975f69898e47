package fonts

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

const sampleTable = `[[32,32,3],[48,57,6],[65,90,7],[97,108,5],[109,109,9],[110,122,5]]`

func sampleFont(t *testing.T) *Font {
	t.Helper()
	f, err := ParseString(sampleTable, 11)
	require.NoError(t, err)
	return f
}

func TestWidthOf(t *testing.T) {
	f := sampleFont(t)

	tests := []struct {
		name  string
		r     rune
		guess bool
		want  float64
		ok    bool
	}{
		{"space", ' ', false, 3, true},
		{"digit", '7', false, 6, true},
		{"upper", 'Q', false, 7, true},
		{"guess rune", 'm', false, 9, true},
		{"range end", 'z', false, 5, true},
		{"nul", 0, false, 0, true},
		{"unit separator", 31, false, 0, true},
		{"delete", 127, false, 0, true},
		{"gap unknown", '!', false, 0, false},
		{"gap guessed", '!', true, 9, true},
		{"beyond table", 'é', false, 0, false},
		{"beyond table guessed", 'é', true, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.WidthOf(tt.r, tt.guess)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextWidth(t *testing.T) {
	f := sampleFont(t)

	w, ok := f.TextWidth("build", false)
	require.True(t, ok)
	assert.Equal(t, 25.0, w)

	w, ok = f.TextWidth("", false)
	require.True(t, ok)
	assert.Equal(t, 0.0, w)

	w, ok = f.TextWidth("a\tb", false)
	require.True(t, ok)
	assert.Equal(t, 10.0, w)

	_, ok = f.TextWidth("ok!", false)
	assert.False(t, ok)

	w, ok = f.TextWidth("ok!", true)
	require.True(t, ok)
	assert.Equal(t, 19.0, w)

	assert.Equal(t, 9.0, f.GuessWidth())
	assert.Equal(t, 11, f.Size())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		ranges []Range
		size   int
	}{
		{"zero size", []Range{{109, 109, 9}}, 0},
		{"inverted", []Range{{110, 100, 5}}, 11},
		{"negative", []Range{{-5, 109, 5}}, 11},
		{"overlap", []Range{{97, 110, 5}, {109, 120, 9}}, 11},
		{"unordered", []Range{{109, 109, 9}, {97, 100, 5}}, 11},
		{"no guess", []Range{{97, 100, 5}}, 11},
		{"zero guess", []Range{{109, 109, 0}}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.ranges, tt.size)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidFontTable), "got %v", err)
		})
	}
}

func TestParseTable(t *testing.T) {
	f, err := ParseString(" [ [ 109 , 109 , 9.5 ] ,\n\t[ 110, 120, .25 ] ] \n", 10)
	require.NoError(t, err)
	assert.Equal(t, []Range{{109, 109, 9.5}, {110, 120, 0.25}}, f.Ranges())
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"empty", "", "need '[', got EOF at offset 0"},
		{"not a list", "{}", "need '[', got '{' at offset 1"},
		{"missing comma", "[[109 109,9]]", "need ',', got '1' at offset 7"},
		{"float code point", "[[109.5,109,9]]", "need ',', got '.' at offset 6"},
		{"space inside number", "[[10 9,109,9]]", "need ',', got '9' at offset 6"},
		{"truncated", "[[109,109,9]", "need ',' or ']', got EOF at offset 12"},
		{"trailing data", "[[109,109,9]]x", "need end of input, got 'x' at offset 14"},
		{"bad width", "[[109,109,x]]", "need 0-9 or '.', got 'x' at offset 11"},
		{"dangling dot", "[[109,109,9.]]", "need 0-9, got ']' at offset 13"},
		{"code point too large", "[[1114112,1114112,9]]", "code point out of range"},
		{"quoted code point", `[["m",109,9]]`, `need 0-9, got '"' at offset 3`},
		{"exponent width", "[[109,109,1e2]]", "need ']', got 'e' at offset 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input, 11)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidFontTable), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestWriteTable(t *testing.T) {
	ranges := []Range{{32, 32, 3.5}, {109, 109, 9}}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, ranges))
	assert.Equal(t, "[[32,32,3.5],[109,109,9]]", buf.String())

	got, err := ReadTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, ranges, got)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	f := sampleFont(t)

	require.NoError(t, reg.Register(DefaultFont, f))
	require.NoError(t, reg.Register(VerdanaBold10, f))

	err := reg.Register(DefaultFont, f)
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateFont))

	err = reg.Register("", f)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	got, err := reg.Get(VerdanaBold10)
	require.NoError(t, err)
	assert.Same(t, f, got)

	_, err = reg.Get("comic-12px-normal")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownFont))

	def, err := reg.Default()
	require.NoError(t, err)
	assert.Same(t, f, def)

	assert.True(t, reg.Has(DefaultFont))
	assert.False(t, reg.Has(HelveticaBold11))
	assert.Equal(t, []string{VerdanaBold10, DefaultFont}, reg.Names())
	assert.Equal(t, 2, reg.Len())
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in      string
		want    Name
		wantErr bool
	}{
		{in: "verdana-11px-normal", want: Name{"verdana", 11, "normal"}},
		{in: "dejavu-sans-10px-bold", want: Name{"dejavu-sans", 10, "bold"}},
		{in: "verdana-11-normal", wantErr: true},
		{in: "verdana-0px-normal", wantErr: true},
		{in: "-11px-normal", wantErr: true},
		{in: "verdana-11px-", wantErr: true},
		{in: "verdana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseName(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestLoadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"verdana-11px-normal.json":   {Data: []byte(sampleTable)},
		"helvetica-11px-bold.json":   {Data: []byte("[[109,109,10]]")},
		"README.md":                  {Data: []byte("not a table")},
		"sub/verdana-10px-bold.json": {Data: []byte(sampleTable)},
	}

	reg := NewRegistry()
	loaded, err := LoadDir(reg, fsys)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"verdana-11px-normal", "helvetica-11px-bold"}, loaded)

	f, err := reg.Get(HelveticaBold11)
	require.NoError(t, err)
	assert.Equal(t, 11, f.Size())
	assert.Equal(t, 10.0, f.GuessWidth())

	again, err := LoadDir(reg, fsys)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestLoadDirInvalid(t *testing.T) {
	fsys := fstest.MapFS{
		"verdana-11px-normal.json": {Data: []byte("[[109,109,")},
	}
	_, err := LoadDir(NewRegistry(), fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFontTable))
	assert.True(t, strings.HasPrefix(err.Error(), "verdana-11px-normal.json: "))
}
