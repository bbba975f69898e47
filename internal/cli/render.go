package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbadge/pkg/badge"
	"github.com/matzehuels/stackbadge/pkg/batch"
	"github.com/matzehuels/stackbadge/pkg/errors"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	badge.Badge
	style    string
	idSuffix string
	output   string
	noCache  bool
}

// renderCommand creates the render command for a single badge.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [label] [message]",
		Short: "Render a single badge as SVG",
		Long: `Render a single badge as an SVG document.

With one argument it is the message; with two they are the label and the
message. The --label and --message flags take precedence over arguments.`,
		Example: `  stackbadge render build passing > build.svg
  stackbadge render --style for-the-badge --icon Check coverage 91% -o cov.svg
  stackbadge render --message-color '#e05d44' --right-link https://ci.example.com tests failing`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Label, "label", "", "left-hand text")
	f.StringVar(&opts.Message, "message", "", "right-hand text")
	f.StringVarP(&opts.style, "style", "s", "", "badge style: flat, flat-square, plastic, for-the-badge, social")
	f.StringVar(&opts.LabelColor, "label-color", "", "label background color (default #555)")
	f.StringVar(&opts.MessageColor, "message-color", "", "message background color (default #4c1)")
	f.StringVar(&opts.Logo, "logo", "", "logo image reference, usually a data URI")
	f.StringVar(&opts.Icon, "icon", "", "built-in icon title, used when --logo is empty")
	f.StringVar(&opts.LogoColor, "logo-color", "", "icon fill color")
	f.IntVar(&opts.LogoWidth, "logo-width", 0, "logo width in pixels (default 14)")
	f.StringVar(&opts.idSuffix, "id-suffix", "", `suffix for element ids, or "auto" for a random one`)
	f.StringVar(&opts.LeftLink, "left-link", "", "link target of the label side")
	f.StringVar(&opts.RightLink, "right-link", "", "link target of the message side")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.BoolVar(&opts.noCache, "no-cache", false, "render without the cache")

	_ = c.viper.BindPFlag("style", f.Lookup("style"))
	_ = cmd.RegisterFlagCompletionFunc("style", completeStyles)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	b := opts.Badge
	switch len(args) {
	case 1:
		b.Message = firstNonEmpty(b.Message, args[0])
	case 2:
		b.Label = firstNonEmpty(b.Label, args[0])
		b.Message = firstNonEmpty(b.Message, args[1])
	}
	b.Style = c.config().BadgeStyle()
	b.IDSuffix = opts.idSuffix
	if b.IDSuffix == batch.AutoIDSuffix {
		b.IDSuffix = badge.RandomIDSuffix()
	}
	if b.IDSuffix != "" {
		if err := errors.ValidateIDSuffix(b.IDSuffix); err != nil {
			return err
		}
	}

	r, err := c.newRenderer()
	if err != nil {
		return err
	}
	store, keyer, err := c.newCache(opts.noCache)
	if err != nil {
		return err
	}
	runner := batch.NewRunner(r, store, keyer, loggerFromContext(cmd.Context()))
	runner.TTL = c.config().Cache.TTL
	defer runner.Close()

	name := firstNonEmpty(b.Label, b.Message, "badge")
	svg, cached, err := runner.RenderBadge(cmd.Context(), name, b)
	if err != nil {
		return err
	}
	c.Logger.Debug("render", "style", b.Style.String(), "bytes", len(svg), "cached", cached)

	if opts.output == "" || opts.output == "-" {
		_, err := c.Out.Write(append(svg, '\n'))
		return err
	}
	if err := writeFile(opts.output, svg); err != nil {
		return err
	}
	p := c.out()
	p.success("Rendered %s badge", b.Style)
	p.file(opts.output)
	if b.LeftLink != "" || b.RightLink != "" {
		p.detail("links: %s", StyleLink.Render(firstNonEmpty(b.LeftLink, b.RightLink)))
	}
	return nil
}

// writeFile writes a rendered document to path.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// createOutput opens path for writing, or returns w for "" and "-".
func createOutput(path string, w io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, f.Close, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// styleNames lists the accepted --style values for help and completion.
func styleNames() []string {
	styles := badge.Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}
	return names
}

func completeStyles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return styleNames(), cobra.ShellCompDirectiveNoFileComp
}
