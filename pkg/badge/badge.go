// Package badge lays out status badges ("build: passing") as SVG documents.
//
// A [Badge] describes the texts, colors, logo and style of one badge. A
// [Renderer] resolves the fonts each style measures with and turns a Badge
// into a [markup.Node] tree whose root is an svg element:
//
//	r, err := badge.NewRenderer(reg)
//	...
//	svg, err := r.RenderString(badge.Badge{Label: "build", Message: "passing"})
//
// Five styles are supported: flat, flat-square, plastic, for-the-badge and
// social. Geometry follows the shields.io conventions: text is measured with
// per-code-point width tables, widths are rounded to odd pixel counts, and
// text is drawn at ten times its size under a scale(.1) transform.
//
// Renderers are immutable and safe for concurrent use.
package badge

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/stackbadge/pkg/color"
	"github.com/matzehuels/stackbadge/pkg/errors"
	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/fonts/builtin"
	"github.com/matzehuels/stackbadge/pkg/icons"
	"github.com/matzehuels/stackbadge/pkg/markup"
)

// Default colors of the two badge halves.
const (
	DefaultLabelColor   = "#555"
	DefaultMessageColor = "#4c1"
)

// DefaultLogoWidth is the logo width used when Badge.LogoWidth is zero.
const DefaultLogoWidth = 14

// Badge describes a single badge. Empty strings mean "absent".
type Badge struct {
	Label        string `json:"label,omitempty" toml:"label" yaml:"label,omitempty"`
	LabelColor   string `json:"label_color,omitempty" toml:"label_color" yaml:"label_color,omitempty"`
	Message      string `json:"message,omitempty" toml:"message" yaml:"message,omitempty"`
	MessageColor string `json:"message_color,omitempty" toml:"message_color" yaml:"message_color,omitempty"`
	Style        Style  `json:"style" toml:"style" yaml:"style"`

	// Logo is an image reference, typically a data URI, embedded as is.
	Logo string `json:"logo,omitempty" toml:"logo" yaml:"logo,omitempty"`
	// Icon names a catalog icon. It is used only when Logo is empty.
	Icon string `json:"icon,omitempty" toml:"icon" yaml:"icon,omitempty"`
	// LogoColor overrides the fill of Icon. Defaults to the icon's base color.
	LogoColor string `json:"logo_color,omitempty" toml:"logo_color" yaml:"logo_color,omitempty"`
	LogoWidth int    `json:"logo_width,omitempty" toml:"logo_width" yaml:"logo_width,omitempty"`

	// IDSuffix is appended to every element id, so that several badges can
	// be inlined into one document.
	IDSuffix string `json:"id_suffix,omitempty" toml:"id_suffix" yaml:"id_suffix,omitempty"`

	LeftLink  string `json:"left_link,omitempty" toml:"left_link" yaml:"left_link,omitempty"`
	RightLink string `json:"right_link,omitempty" toml:"right_link" yaml:"right_link,omitempty"`
}

// AccessibleText returns the aria-label of the badge.
func (b Badge) AccessibleText() string {
	switch {
	case b.Label != "" && b.Message != "":
		return b.Label + ": " + b.Message
	case b.Label != "":
		return b.Label + ":"
	default:
		return b.Message
	}
}

// Renderer renders badges with a fixed set of fonts.
type Renderer struct {
	text      *fonts.Font
	ftbLabel  *fonts.Font
	ftbMsg    *fonts.Font
	social    *fonts.Font
	catalog   *icons.Catalog
	strictCol bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithIcons resolves Badge.Icon against c.
func WithIcons(c *icons.Catalog) Option { return func(r *Renderer) { r.catalog = c } }

// WithStrictColors makes unparseable label and message colors an error.
// By default they are passed through and contrast is computed against black.
func WithStrictColors() Option { return func(r *Renderer) { r.strictCol = true } }

// NewRenderer resolves the fonts used by all styles from reg.
func NewRenderer(reg *fonts.Registry, opts ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, f := range []struct {
		dst  **fonts.Font
		name string
	}{
		{&r.text, fonts.VerdanaNormal11},
		{&r.ftbLabel, fonts.VerdanaNormal10},
		{&r.ftbMsg, fonts.VerdanaBold10},
		{&r.social, fonts.HelveticaBold11},
	} {
		font, err := reg.Get(f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = font
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render lays out b and returns the svg document tree.
func (r *Renderer) Render(b Badge) (*markup.Node, error) {
	v, err := r.variant(b.Style)
	if err != nil {
		return nil, err
	}
	if err := r.validate(b); err != nil {
		return nil, err
	}
	logo, err := r.logo(b)
	if err != nil {
		return nil, err
	}

	g := newGeometry(b, logo, v)
	return svgRoot(g, v.content(g)), nil
}

// RenderString is Render followed by serialization.
func (r *Renderer) RenderString(b Badge) (string, error) {
	n, err := r.Render(b)
	if err != nil {
		return "", err
	}
	return n.Render(), nil
}

func (r *Renderer) variant(s Style) (variant, error) {
	switch s {
	case Flat:
		return flat{classic{r.text}}, nil
	case FlatSquare:
		return flatSquare{classic{r.text}}, nil
	case Plastic:
		return plastic{classic{r.text}}, nil
	case ForTheBadge:
		return forTheBadge{labelFont: r.ftbLabel, messageFont: r.ftbMsg}, nil
	case Social:
		return social{face: r.social}, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupportedStyle, "unsupported style %s", s)
}

func (r *Renderer) validate(b Badge) error {
	if err := errors.ValidateIDSuffix(b.IDSuffix); err != nil {
		return err
	}
	if b.LogoWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "logo width must not be negative, got %d", b.LogoWidth)
	}
	for _, link := range []string{b.LeftLink, b.RightLink} {
		if link == "" {
			continue
		}
		if err := errors.ValidateLinkURL(link); err != nil {
			return err
		}
	}
	if r.strictCol {
		for _, c := range []string{b.LabelColor, b.MessageColor} {
			if c == "" {
				continue
			}
			if _, err := color.Parse(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) logo(b Badge) (string, error) {
	if b.Logo != "" || b.Icon == "" {
		return b.Logo, nil
	}
	if r.catalog == nil {
		return "", errors.New(errors.ErrCodeIconNotFound, "no icon catalog to resolve %q", b.Icon)
	}
	icon, err := r.catalog.Get(b.Icon)
	if err != nil {
		return "", err
	}
	fill := icon.BaseColor()
	if b.LogoColor != "" {
		if fill, err = color.Parse(b.LogoColor); err != nil {
			return "", err
		}
	}
	return icon.URI(&fill, nil), nil
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Default returns a renderer over the built-in fonts and icons.
func Default() (*Renderer, error) {
	defaultOnce.Do(func() {
		reg, err := builtin.Registry()
		if err != nil {
			defaultErr = err
			return
		}
		catalog, err := icons.Builtin()
		if err != nil {
			defaultErr = err
			return
		}
		defaultRenderer, defaultErr = NewRenderer(reg, WithIcons(catalog))
	})
	return defaultRenderer, defaultErr
}

// MakeBadge renders a badge with the default renderer.
func MakeBadge(b Badge) (string, error) {
	r, err := Default()
	if err != nil {
		return "", err
	}
	return r.RenderString(b)
}

// RandomIDSuffix returns a fresh suffix for Badge.IDSuffix.
func RandomIDSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
