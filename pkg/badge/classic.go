package badge

import (
	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/markup"
)

// classic carries what flat, flat-square and plastic have in common.
type classic struct {
	face *fonts.Font
}

func (c classic) font() *fonts.Font                   { return c.face }
func (classic) transform(text string) string          { return text }
func (c classic) measure(text string, _ textKind) int { return measureWith(c.face, text) }

type flat struct{ classic }

func (flat) height() int         { return 20 }
func (flat) verticalMargin() int { return 0 }
func (flat) hasShadow() bool     { return true }

func (f flat) content(g *geometry) *markup.Node {
	return markup.Fragment(
		linearGradient("s"+g.suffix,
			gradientStop{"0", "#bbb", ".1"},
			gradientStop{"1", "", ".1"},
		),
		clipPath(g, 3),
		backgroundGroup(g, true, markup.Attrs{attr("clip-path", "url(#r"+g.suffix+")")}),
		foregroundGroup(g, f),
	)
}

type flatSquare struct{ classic }

func (flatSquare) height() int         { return 20 }
func (flatSquare) verticalMargin() int { return 0 }
func (flatSquare) hasShadow() bool     { return false }

func (f flatSquare) content(g *geometry) *markup.Node {
	return markup.Fragment(
		backgroundGroup(g, false, markup.Attrs{attr("shape-rendering", "crispEdges")}),
		foregroundGroup(g, f),
	)
}

type plastic struct{ classic }

func (plastic) height() int         { return 18 }
func (plastic) verticalMargin() int { return -10 }
func (plastic) hasShadow() bool     { return true }

func (p plastic) content(g *geometry) *markup.Node {
	return markup.Fragment(
		linearGradient("s"+g.suffix,
			gradientStop{"0", "#fff", ".7"},
			gradientStop{".1", "#aaa", ".1"},
			gradientStop{".9", "#000", ".3"},
			gradientStop{"1", "#000", ".5"},
		),
		clipPath(g, 4),
		backgroundGroup(g, true, markup.Attrs{attr("clip-path", "url(#r"+g.suffix+")")}),
		foregroundGroup(g, p),
	)
}
