package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbadge/pkg/icons"
)

// galleryCommand creates the gallery command.
func (c *CLI) galleryCommand() *cobra.Command {
	var output, icon, logo string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render every style as an HTML table",
		Long: `Render an HTML page showing every badge style with each combination of
label, message and logo. Useful to compare styles or check a font table.`,
		Example: `  stackbadge gallery -o gallery.html
  stackbadge gallery --icon Terminal > gallery.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.newRenderer()
			if err != nil {
				return err
			}

			if logo == "" && icon != "" {
				catalog, err := icons.Builtin()
				if err != nil {
					return err
				}
				ic, err := catalog.Get(icon)
				if err != nil {
					return err
				}
				base := ic.BaseColor()
				logo = ic.URI(&base, nil)
			}

			page, err := r.Gallery(logo)
			if err != nil {
				return err
			}

			w, closeFn, err := createOutput(output, c.Out)
			if err != nil {
				return err
			}
			if _, err := page.WriteTo(w); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}

			if output != "" && output != "-" {
				p := c.out()
				p.success("Rendered gallery")
				p.file(output)
				p.nextStep("Render one of them", "stackbadge render --style social label message")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&icon, "icon", "", "built-in icon used as the logo")
	cmd.Flags().StringVar(&logo, "logo", "", "logo image reference, overrides --icon")

	return cmd
}
