// Package icons is a catalog of SVG logos that can be embedded in badges.
//
// A catalog is built from two blobs: a data file holding the concatenated SVG
// documents, and a tab-separated index with one line per icon:
//
//	<offset>\t<length>\t<hex color>\t<title>\n
//
// Icons are sorted by title and looked up by binary search. An icon's SVG may
// carry a REPLACE="TAG" placeholder on its root element, which is substituted
// with fill and geometry attributes when the icon is rendered.
package icons

import (
	"bytes"
	"encoding/base64"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/stackbadge/pkg/color"
	"github.com/matzehuels/stackbadge/pkg/errors"
)

// DataURIPrefix starts every URI returned by [Icon.URI].
const DataURIPrefix = "data:image/svg+xml;base64,"

const placeholder = `REPLACE="TAG"`

// Region positions an icon inside its own coordinate space.
type Region struct {
	X, Y, Width, Height int
}

// Icon is a single catalog entry.
type Icon struct {
	Title string
	color color.Color
	svg   string
}

// BaseColor returns the brand color recorded in the index.
func (i *Icon) BaseColor() color.Color { return i.color }

// SVG returns the icon document with the placeholder replaced. A nil fill or
// region omits the corresponding attributes.
func (i *Icon) SVG(fill *color.Color, region *Region) string {
	pos := strings.Index(i.svg, placeholder)
	if pos < 0 {
		return i.svg
	}
	return i.svg[:pos] + attributes(fill, region) + i.svg[pos+len(placeholder):]
}

// URI returns the substituted SVG as a base64 data URI.
func (i *Icon) URI(fill *color.Color, region *Region) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(i.SVG(fill, region)))
}

func attributes(fill *color.Color, region *Region) string {
	var b strings.Builder
	if fill != nil {
		b.WriteString(`fill="`)
		b.WriteString(fill.String())
		b.WriteByte('"')
	}
	if region != nil {
		b.WriteString(` x="`)
		b.WriteString(strconv.Itoa(region.X))
		b.WriteString(`" y="`)
		b.WriteString(strconv.Itoa(region.Y))
		b.WriteString(`" width="`)
		b.WriteString(strconv.Itoa(region.Width))
		b.WriteString(`" height="`)
		b.WriteString(strconv.Itoa(region.Height))
		b.WriteByte('"')
	}
	return b.String()
}

// Catalog is an immutable, title-sorted set of icons.
type Catalog struct {
	icons []*Icon
}

// Parse builds a catalog from an index and the data blob it points into.
func Parse(index, data []byte) (*Catalog, error) {
	var list []*Icon
	for n := 1; len(index) > 0; n++ {
		line, rest, found := bytes.Cut(index, []byte{'\n'})
		if !found {
			return nil, errors.New(errors.ErrCodeInvalidInput, "icon index line %d: missing newline", n)
		}
		index = rest

		fields := strings.SplitN(string(line), "\t", 4)
		if len(fields) != 4 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "icon index line %d: need 4 fields, got %d", n, len(fields))
		}
		offset, err := strconv.Atoi(fields[0])
		if err != nil || offset < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "icon index line %d: invalid offset %q", n, fields[0])
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil || length < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "icon index line %d: invalid length %q", n, fields[1])
		}
		if offset > len(data) || length > len(data)-offset {
			return nil, errors.New(errors.ErrCodeInvalidInput, "icon index line %d: offset %d length %d exceeds data size %d",
				n, offset, length, len(data))
		}
		c, _ := color.FromString("#"+fields[2], false)

		list = append(list, &Icon{
			Title: fields[3],
			color: c,
			svg:   string(data[offset : offset+length]),
		})
	}

	sort.SliceStable(list, func(a, b int) bool { return list[a].Title < list[b].Title })
	return &Catalog{icons: list}, nil
}

// Lookup finds an icon by its exact title.
func (c *Catalog) Lookup(title string) (*Icon, bool) {
	i := sort.Search(len(c.icons), func(i int) bool { return c.icons[i].Title >= title })
	if i < len(c.icons) && c.icons[i].Title == title {
		return c.icons[i], true
	}
	return nil, false
}

// Get is like Lookup but returns an ICON_NOT_FOUND error for a missing title.
func (c *Catalog) Get(title string) (*Icon, error) {
	if icon, ok := c.Lookup(title); ok {
		return icon, nil
	}
	return nil, errors.New(errors.ErrCodeIconNotFound, "no icon titled %q", title)
}

// Icons returns all icons in title order.
func (c *Catalog) Icons() []*Icon {
	return append([]*Icon(nil), c.icons...)
}

// Len returns the number of icons.
func (c *Catalog) Len() int { return len(c.icons) }

// Filter returns the icons whose title contains query, ignoring case.
func (c *Catalog) Filter(query string) []*Icon {
	q := strings.ToLower(query)
	var out []*Icon
	for _, icon := range c.icons {
		if strings.Contains(strings.ToLower(icon.Title), q) {
			out = append(out, icon)
		}
	}
	return out
}
