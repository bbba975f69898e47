package badge

import (
	"github.com/matzehuels/stackbadge/internal/decimal"
	"github.com/matzehuels/stackbadge/pkg/color"
	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/markup"
)

// Layout constants shared by the flat, flat-square and plastic styles.
const (
	horizPadding     = 5
	logoLabelPadding = 3
	logoHeight       = 14

	// Text is drawn at fontSizeUp times its size and scaled back down.
	fontSizeUp   = 10
	fontSizeDown = "scale(.1)"

	fontFamily  = "Verdana,Geneva,DejaVu Sans,sans-serif"
	transparent = "rgba(0,0,0,0)"
)

type textKind int

const (
	labelText textKind = iota
	messageText
)

// variant is one of the five badge styles.
type variant interface {
	height() int
	verticalMargin() int
	hasShadow() bool
	// font is the font whose size sets the foreground font-size.
	font() *fonts.Font
	// transform is applied to label and message before measuring.
	transform(text string) string
	measure(text string, kind textKind) int
	content(g *geometry) *markup.Node
}

// regionLayout is implemented by variants that size their regions differently.
type regionLayout interface {
	layout(g *geometry)
}

// geometry holds the computed layout of one badge.
type geometry struct {
	label, message string
	labelColor     string
	messageColor   string
	logo           string
	suffix         string
	leftLink       string
	rightLink      string
	ariaLabel      string

	hasLogo, hasLabel, hasMessage bool

	logoWidth     int
	labelWidth    int
	messageWidth  int
	labelMargin   int
	messageMargin int
	leftWidth     int
	rightWidth    int
	width         int
	height        int

	// for-the-badge and social
	labelRectWidth   int
	messageRectWidth int
	labelTextMinX    int
	messageTextMinX  int
}

func newGeometry(b Badge, logo string, v variant) *geometry {
	g := &geometry{
		label:        v.transform(b.Label),
		message:      v.transform(b.Message),
		labelColor:   or(b.LabelColor, DefaultLabelColor),
		messageColor: or(b.MessageColor, DefaultMessageColor),
		logo:         logo,
		suffix:       b.IDSuffix,
		leftLink:     b.LeftLink,
		rightLink:    b.RightLink,
		ariaLabel:    b.AccessibleText(),
		hasLogo:      logo != "",
		hasLabel:     b.Label != "",
		hasMessage:   b.Message != "",
		height:       v.height(),
	}
	if g.hasLogo {
		g.logoWidth = b.LogoWidth
		if g.logoWidth == 0 {
			g.logoWidth = DefaultLogoWidth
		}
	}
	if g.hasLabel {
		g.labelWidth = v.measure(g.label, labelText)
	}
	if g.hasMessage {
		g.messageWidth = v.measure(g.message, messageText)
	}

	switch {
	case g.hasLogo && g.hasLabel:
		g.labelMargin = 1 + g.logoWidth + logoLabelPadding
		g.leftWidth = horizPadding + g.logoWidth + logoLabelPadding + g.labelWidth + horizPadding
	case g.hasLogo:
		g.leftWidth = horizPadding + g.logoWidth + horizPadding
	case g.hasLabel:
		g.labelMargin = 1
		g.leftWidth = horizPadding + g.labelWidth + horizPadding
	}
	g.messageMargin = g.leftWidth
	if g.hasMessage && g.leftWidth > 0 {
		g.messageMargin--
	}
	if g.hasMessage {
		g.rightWidth = horizPadding + g.messageWidth + horizPadding
	}
	g.width = g.leftWidth + g.rightWidth

	if l, ok := v.(regionLayout); ok {
		l.layout(g)
	}
	return g
}

// oddWidth truncates a measured width and rounds it up to an odd number of
// pixels, so that text centers on a whole pixel.
func oddWidth(w float64) int {
	n := int(w)
	if n%2 == 0 {
		n++
	}
	return n
}

func measureWith(f *fonts.Font, text string) int {
	w, _ := f.TextWidth(text, true)
	return oddWidth(w)
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func attr(name, value string) markup.Attr { return markup.Attr{Name: name, Value: value} }

func itoa(v int) string { return decimal.Int(v) }

func svgRoot(g *geometry, content *markup.Node) *markup.Node {
	return markup.Element("svg", markup.Attrs{
		attr("xmlns", "http://www.w3.org/2000/svg"),
		attr("xmlns:xlink", "http://www.w3.org/1999/xlink"),
		attr("width", itoa(g.width)),
		attr("height", itoa(g.height)),
		attr("role", "img"),
		attr("aria-label", g.ariaLabel),
	}, content)
}

// gradientStop is one stop of a vertical linear gradient. An empty color
// omits stop-color.
type gradientStop struct {
	offset, color, opacity string
}

func linearGradient(id string, stops ...gradientStop) *markup.Node {
	n := markup.Element("linearGradient", markup.Attrs{
		attr("id", id),
		attr("x2", "0"),
		attr("y2", "100%"),
	})
	for _, s := range stops {
		stop := markup.New("stop").AddAttr("offset", s.offset)
		if s.color != "" {
			stop.AddAttr("stop-color", s.color)
		}
		n.AddContent(stop.AddAttr("stop-opacity", s.opacity))
	}
	return n
}

func clipPath(g *geometry, rx int) *markup.Node {
	return markup.Element("clipPath", markup.Attrs{attr("id", "r"+g.suffix)},
		markup.Element("rect", markup.Attrs{
			attr("width", itoa(g.width)),
			attr("height", itoa(g.height)),
			attr("rx", itoa(rx)),
			attr("fill", "#fff"),
		}),
	)
}

func backgroundGroup(g *geometry, withGradient bool, attrs markup.Attrs) *markup.Node {
	n := markup.Element("g", attrs,
		markup.Element("rect", markup.Attrs{
			attr("width", itoa(g.leftWidth)),
			attr("height", itoa(g.height)),
			attr("fill", g.labelColor),
		}),
		markup.Element("rect", markup.Attrs{
			attr("x", itoa(g.leftWidth)),
			attr("width", itoa(g.rightWidth)),
			attr("height", itoa(g.height)),
			attr("fill", g.messageColor),
		}),
	)
	if withGradient {
		n.AddContent(markup.Element("rect", markup.Attrs{
			attr("width", itoa(g.width)),
			attr("height", itoa(g.height)),
			attr("fill", "url(#s"+g.suffix+")"),
		}))
	}
	return n
}

func foregroundGroup(g *geometry, v variant) *markup.Node {
	return markup.Element("g", markup.Attrs{
		attr("fill", "#fff"),
		attr("text-anchor", "middle"),
		attr("font-family", fontFamily),
		attr("text-rendering", "geometricPrecision"),
		attr("font-size", itoa(fontSizeUp*v.font().Size())),
	},
		logoElement(g, horizPadding, g.height),
		textElement(g, v, g.labelMargin, g.label, g.labelColor, g.labelWidth, g.leftLink, 0, g.leftWidth),
		textElement(g, v, g.messageMargin, g.message, g.messageColor, g.messageWidth, g.rightLink, g.leftWidth, g.rightWidth),
	)
}

// logoElement returns nil when the badge has no logo.
func logoElement(g *geometry, x, badgeHeight int) *markup.Node {
	if !g.hasLogo {
		return nil
	}
	return markup.Element("image", markup.Attrs{
		attr("x", itoa(x)),
		attr("y", decimal.Format(0.5*float64(badgeHeight-logoHeight))),
		attr("width", itoa(g.logoWidth)),
		attr("height", itoa(logoHeight)),
		attr("xlink:href", g.logo),
	})
}

// textElement draws content centered in its region, preceded by a shadow
// copy when the variant has shadows. With a link it is wrapped in an anchor
// whose transparent hit area spans [regionX, regionX+regionWidth).
func textElement(g *geometry, v variant, margin int, content, background string, textWidth int, link string, regionX, regionWidth int) *markup.Node {
	if content == "" {
		return nil
	}
	text, shadow := color.ContrastFor(background)
	x := decimal.Format(fontSizeUp * (float64(margin) + 0.5*float64(textWidth) + horizPadding))
	length := itoa(fontSizeUp * textWidth)
	vm := v.verticalMargin()

	n := markup.Fragment()
	if link != "" {
		n.SetName("a").
			AddAttr("target", "_blank").
			AddAttr("xlink:href", link).
			AddContent(markup.Element("rect", markup.Attrs{
				attr("x", itoa(regionX)),
				attr("width", itoa(regionWidth)),
				attr("height", itoa(g.height)),
				attr("fill", transparent),
			}))
	}
	if v.hasShadow() {
		n.AddContent(markup.Element("text", markup.Attrs{
			attr("aria-hidden", "true"),
			attr("x", x),
			attr("y", itoa(150+vm)),
			attr("fill", shadow),
			attr("fill-opacity", ".3"),
			attr("transform", fontSizeDown),
			attr("textLength", length),
		}, markup.Text(content)))
	}
	n.AddContent(markup.Element("text", markup.Attrs{
		attr("x", x),
		attr("y", itoa(140+vm)),
		attr("fill", text),
		attr("transform", fontSizeDown),
		attr("textLength", length),
	}, markup.Text(content)))
	return n
}
