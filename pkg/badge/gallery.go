package badge

import (
	"strconv"

	"github.com/matzehuels/stackbadge/pkg/markup"
)

// GalleryColumns are the header cells of the gallery table.
var GalleryColumns = []string{
	"STYLE", "label_msg", "msg_only", "label_only", "none", "logo_only", "logo_msg", "logo_label_msg",
}

// Gallery renders an HTML page with one table row per style, showing each
// style with every combination of label, message and logo. Badges get
// distinct id suffixes so they can share the page.
func (r *Renderer) Gallery(logo string) (*markup.Node, error) {
	header := markup.New("tr")
	for _, col := range GalleryColumns {
		header.AddContent(markup.Element("th", nil, markup.Text(col)))
	}
	table := markup.Element("table", markup.Attrs{attr("border", "1")}, header)

	var count int
	for _, style := range []Style{Flat, FlatSquare, Plastic, Social, ForTheBadge} {
		row := markup.Element("tr", nil, markup.Element("td", nil, markup.Text(style.String())))
		for _, b := range galleryBadges(style, logo) {
			count++
			b.IDSuffix = "id" + strconv.Itoa(count)
			svg, err := r.Render(b)
			if err != nil {
				return nil, err
			}
			row.AddContent(markup.Element("td", nil, svg))
		}
		table.AddContent(row)
	}

	return markup.Element("html", markup.Attrs{attr("lang", "en")},
		markup.Element("body", nil,
			markup.Element("h1", nil, markup.Text("badge:")),
			table,
		),
	), nil
}

func galleryBadges(style Style, logo string) []Badge {
	const label, message = "label", "message"
	return []Badge{
		{Style: style, Label: label, Message: message},
		{Style: style, Message: message},
		{Style: style, Label: label},
		{Style: style},
		{Style: style, Logo: logo},
		{Style: style, Logo: logo, Message: message},
		{Style: style, Logo: logo, Label: label, Message: message},
	}
}
