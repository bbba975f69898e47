package badge

import (
	"github.com/matzehuels/stackbadge/internal/decimal"
	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/markup"
)

const (
	socialHeight           = 20
	socialInternalHeight   = 19
	socialLabelPadding     = 5
	socialMessagePadding   = 4
	socialGutter           = 6
	socialFontFamily       = "Helvetica Neue,Helvetica,Arial,sans-serif"
	socialBorder           = "#d5d5d5"
	socialBubbleBackground = "#fafafa"
)

// social mimics a GitHub button: a label pill and an optional message
// bubble with a notch pointing at the pill.
type social struct {
	face *fonts.Font
}

func (social) height() int                           { return socialHeight }
func (social) verticalMargin() int                   { return 0 }
func (social) hasShadow() bool                       { return true }
func (s social) font() *fonts.Font                   { return s.face }
func (social) transform(text string) string          { return text }
func (s social) measure(text string, _ textKind) int { return measureWith(s.face, text) }

func (social) layout(g *geometry) {
	switch {
	case g.hasLogo && g.hasLabel:
		g.labelRectWidth = socialLabelPadding + g.logoWidth + logoLabelPadding + g.labelWidth + socialLabelPadding
	case g.hasLabel:
		g.labelRectWidth = socialLabelPadding + g.labelWidth + socialLabelPadding
	case g.hasLogo:
		g.labelRectWidth = socialLabelPadding + g.logoWidth + socialLabelPadding
	default:
		g.labelRectWidth = 0
	}
	g.leftWidth = g.labelRectWidth + 1
	g.messageRectWidth = socialMessagePadding + g.messageWidth + socialMessagePadding
	g.rightWidth = 0
	if g.hasMessage {
		g.rightWidth = socialGutter + g.messageRectWidth
	}

	g.width = g.leftWidth + g.rightWidth
	if g.labelRectWidth == 0 && !g.hasMessage {
		g.width = g.height
	}
}

func (s social) content(g *geometry) *markup.Node {
	style := markup.Element("style", nil, markup.Text(
		"a:hover #llink"+g.suffix+"{fill:url(#b"+g.suffix+");stroke:#ccc}"+
			"a:hover #rlink"+g.suffix+"{fill:#4183c4}",
	))

	gradients := markup.Fragment(
		linearGradient("a"+g.suffix,
			gradientStop{"0", "#fcfcfc", "0"},
			gradientStop{"1", "", ".1"},
		),
		linearGradient("b"+g.suffix,
			gradientStop{"0", "#ccc", ".1"},
			gradientStop{"1", "", ".1"},
		),
	)

	background := markup.Element("g", markup.Attrs{attr("stroke", socialBorder)},
		markup.Element("rect", markup.Attrs{
			attr("x", "0.5"),
			attr("y", "0.5"),
			attr("width", itoa(g.labelRectWidth)),
			attr("height", itoa(socialInternalHeight)),
			attr("rx", "2"),
			attr("stroke", "none"),
			attr("fill", "#fcfcfc"),
		}),
		s.bubble(g),
		markup.Element("rect", markup.Attrs{
			attr("id", "llink"+g.suffix),
			attr("stroke", socialBorder),
			attr("fill", "url(#a"+g.suffix+")"),
			attr("x", ".5"),
			attr("y", ".5"),
			attr("width", itoa(g.labelRectWidth)),
			attr("height", itoa(socialInternalHeight)),
			attr("rx", "2"),
		}),
	)

	foreground := markup.Element("g", markup.Attrs{
		attr("aria-hidden", "false"),
		attr("fill", "#333"),
		attr("text-anchor", "middle"),
		attr("font-family", socialFontFamily),
		attr("text-rendering", "geometricPrecision"),
		attr("font-weight", "700"),
		attr("font-size", itoa(fontSizeUp*s.face.Size())+"px"),
		attr("line-height", "14px"),
	},
		s.labelText(g),
		s.messageText(g),
	)

	return markup.Fragment(
		style,
		gradients,
		background,
		logoElement(g, socialLabelPadding, socialHeight),
		foreground,
	)
}

func (social) bubble(g *geometry) *markup.Node {
	if !g.hasMessage {
		return nil
	}
	notchX := g.labelRectWidth + socialGutter
	mainX := decimal.Format(float64(notchX) + 0.5)
	return markup.Fragment(
		markup.Element("rect", markup.Attrs{
			attr("x", mainX),
			attr("y", "0.5"),
			attr("width", itoa(g.messageRectWidth)),
			attr("height", itoa(socialInternalHeight)),
			attr("rx", "2"),
			attr("fill", socialBubbleBackground),
		}),
		markup.Element("rect", markup.Attrs{
			attr("x", itoa(notchX)),
			attr("y", "7.5"),
			attr("width", "0.5"),
			attr("height", "5"),
			attr("stroke", socialBubbleBackground),
		}),
		markup.Element("path", markup.Attrs{
			attr("d", "M"+mainX+" 6.5 l-3 3v1 l3 3"),
			attr("fill", socialBubbleBackground),
			attr("stroke", socialBorder),
		}),
	)
}

// socialText returns the white embossing copy followed by the text itself.
func socialText(x, length, content, id string) (shadow, text *markup.Node) {
	shadow = markup.Element("text", markup.Attrs{
		attr("aria-hidden", "true"),
		attr("x", x),
		attr("y", "150"),
		attr("fill", "#fff"),
		attr("transform", fontSizeDown),
		attr("textLength", length),
	}, markup.Text(content))

	text = markup.New("text")
	if id != "" {
		text.AddAttr("id", id)
	}
	text.AddAttr("x", x).
		AddAttr("y", "140").
		AddAttr("transform", fontSizeDown).
		AddAttr("textLength", length).
		AddContent(markup.Text(content))
	return shadow, text
}

func (social) labelText(g *geometry) *markup.Node {
	if !g.hasLabel {
		return nil
	}
	center := 0.5*float64(g.labelWidth) + socialLabelPadding
	if g.hasLogo {
		center += float64(g.logoWidth + logoLabelPadding)
	}
	shadow, text := socialText(decimal.Format(fontSizeUp*center), itoa(fontSizeUp*g.labelWidth), g.label, "")

	return socialLink(g, g.leftLink, 0, g.leftWidth, shadow, text)
}

func (social) messageText(g *geometry) *markup.Node {
	if !g.hasMessage {
		return nil
	}
	center := float64(g.labelRectWidth+socialGutter) + 0.5*float64(g.messageRectWidth)
	shadow, text := socialText(decimal.Format(fontSizeUp*center), itoa(fontSizeUp*g.messageWidth), g.message, "rlink"+g.suffix)

	return socialLink(g, g.rightLink, g.leftWidth, g.rightWidth, shadow, text)
}

// socialLink wraps a side's texts in an anchor whose transparent hit area
// spans the whole region, gutter included.
func socialLink(g *geometry, link string, regionX, regionWidth int, items ...markup.Item) *markup.Node {
	if link == "" {
		return markup.Fragment(items...)
	}
	hit := markup.Element("rect", markup.Attrs{
		attr("x", itoa(regionX)),
		attr("width", itoa(regionWidth)),
		attr("height", itoa(g.height)),
		attr("fill", transparent),
	})
	return markup.Element("a", markup.Attrs{attr("target", "_blank"), attr("xlink:href", link)},
		append([]markup.Item{hit}, items...)...)
}
