package badge

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/stackbadge/internal/decimal"
	"github.com/matzehuels/stackbadge/pkg/color"
	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/markup"
)

const (
	ftbFontSize       = 10
	ftbHeight         = 28
	ftbTextMargin     = 12
	ftbLogoMargin     = 9
	ftbLogoTextGutter = 6
	ftbLetterSpacing  = 1.25
	ftbTextY          = "175"
)

// forTheBadge is a tall, square badge with uppercase, letter-spaced text
// and a bold message.
type forTheBadge struct {
	labelFont   *fonts.Font
	messageFont *fonts.Font
}

func (forTheBadge) height() int         { return ftbHeight }
func (forTheBadge) verticalMargin() int { return 0 }
func (forTheBadge) hasShadow() bool     { return false }

func (f forTheBadge) font() *fonts.Font { return f.labelFont }

// transform uppercases text. A Caser is stateful, so each call gets its own.
func (forTheBadge) transform(text string) string {
	return cases.Upper(language.Und).String(text)
}

func (f forTheBadge) measure(text string, kind textKind) int {
	font := f.labelFont
	if kind == messageText {
		font = f.messageFont
	}
	w, _ := font.TextWidth(text, true)
	return oddWidth(w + ftbLetterSpacing*float64(utf8.RuneCountInString(text)))
}

func (forTheBadge) layout(g *geometry) {
	g.labelTextMinX = ftbTextMargin
	if g.hasLogo {
		g.labelTextMinX = ftbLogoMargin + g.logoWidth + ftbLogoTextGutter
	}

	switch {
	case g.hasLabel:
		g.labelRectWidth = g.labelTextMinX + g.labelWidth + ftbTextMargin
	case g.hasLogo:
		g.labelRectWidth = ftbLogoMargin + g.logoWidth + ftbLogoMargin
	default:
		g.labelRectWidth = 0
	}
	g.messageTextMinX = ftbTextMargin
	if g.labelRectWidth > 0 {
		g.messageTextMinX = g.labelRectWidth + ftbTextMargin
	}
	g.messageRectWidth = 0
	if g.hasMessage {
		g.messageRectWidth = ftbTextMargin + g.messageWidth + ftbTextMargin
	}
	g.width = g.labelRectWidth + g.messageRectWidth
}

func (f forTheBadge) content(g *geometry) *markup.Node {
	bg := markup.Element("g", markup.Attrs{attr("shape-rendering", "crispEdges")})
	if g.hasLabel || g.hasLogo {
		bg.AddContent(markup.Element("rect", markup.Attrs{
			attr("width", itoa(g.labelRectWidth)),
			attr("height", itoa(ftbHeight)),
			attr("fill", g.labelColor),
		}))
		if g.hasMessage {
			bg.AddContent(markup.Element("rect", markup.Attrs{
				attr("x", itoa(g.labelRectWidth)),
				attr("width", itoa(g.messageRectWidth)),
				attr("height", itoa(ftbHeight)),
				attr("fill", g.messageColor),
			}))
		}
	} else if g.hasMessage {
		bg.AddContent(markup.Element("rect", markup.Attrs{
			attr("width", itoa(g.messageRectWidth)),
			attr("height", itoa(ftbHeight)),
			attr("fill", g.messageColor),
		}))
	}

	fg := markup.Element("g", markup.Attrs{
		attr("fill", "#fff"),
		attr("text-anchor", "middle"),
		attr("font-family", fontFamily),
		attr("text-rendering", "geometricPrecision"),
		attr("font-size", itoa(fontSizeUp*ftbFontSize)),
	},
		logoElement(g, ftbLogoMargin, ftbHeight),
		f.labelElement(g),
		f.messageElement(g),
	)
	return markup.Fragment(bg, fg)
}

func (forTheBadge) labelElement(g *geometry) *markup.Node {
	if !g.hasLabel {
		return nil
	}
	fill, _ := color.ContrastFor(g.labelColor)
	midX := float64(g.labelTextMinX) + 0.5*float64(g.labelWidth)
	text := markup.Element("text", markup.Attrs{
		attr("transform", fontSizeDown),
		attr("x", decimal.Format(fontSizeUp*midX)),
		attr("y", ftbTextY),
		attr("textLength", itoa(fontSizeUp*g.labelWidth)),
		attr("fill", fill),
	}, markup.Text(g.label))

	if g.leftLink == "" {
		return text
	}
	return markup.Element("a", markup.Attrs{attr("target", "_blank"), attr("xlink:href", g.leftLink)},
		markup.Element("rect", markup.Attrs{
			attr("width", itoa(g.labelRectWidth)),
			attr("height", itoa(ftbHeight)),
			attr("fill", transparent),
		}),
		text,
	)
}

func (forTheBadge) messageElement(g *geometry) *markup.Node {
	if !g.hasMessage {
		return nil
	}
	fill, _ := color.ContrastFor(g.messageColor)
	midX := float64(g.messageTextMinX) + 0.5*float64(g.messageWidth)
	text := markup.Element("text", markup.Attrs{
		attr("transform", fontSizeDown),
		attr("x", decimal.Format(fontSizeUp*midX)),
		attr("y", ftbTextY),
		attr("textLength", itoa(fontSizeUp*g.messageWidth)),
		attr("fill", fill),
		attr("font-weight", "bold"),
	}, markup.Text(g.message))

	if g.rightLink == "" {
		return text
	}
	return markup.Element("a", markup.Attrs{attr("target", "_blank"), attr("xlink:href", g.rightLink)},
		markup.Element("rect", markup.Attrs{
			attr("width", itoa(g.messageRectWidth)),
			attr("height", itoa(ftbHeight)),
			attr("x", itoa(g.labelRectWidth)),
			attr("fill", transparent),
		}),
		text,
	)
}
