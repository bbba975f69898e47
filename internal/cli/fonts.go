package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbadge/pkg/errors"
	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/fonts/fontgen"
)

// fontsCommand creates the fonts command group.
func (c *CLI) fontsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List and build font width tables",
	}

	cmd.AddCommand(c.fontsListCommand())
	cmd.AddCommand(c.fontsBuildCommand())

	return cmd
}

// fontsListCommand creates the "fonts list" subcommand.
func (c *CLI) fontsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, reg.Len())
			for _, name := range reg.Names() {
				f, err := reg.Get(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					name,
					strconv.Itoa(f.Size()),
					strconv.Itoa(len(f.Ranges())),
					strconv.FormatFloat(f.GuessWidth(), 'f', -1, 64),
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleTableBorder).
				Headers("Font", "Size", "Ranges", "Guess").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return styleTableHeader
					}
					if col == 0 {
						return StyleValue
					}
					return StyleDim
				})
			fmt.Fprintln(c.Out, t.Render())
			if dir := c.config().Fonts.Dir; dir != "" {
				c.out().detail("Tables from %s override the built-in fonts", dir)
			}
			return nil
		},
	}
}

// fontsBuildCommand creates the "fonts build" subcommand.
func (c *CLI) fontsBuildCommand() *cobra.Command {
	var (
		name   string
		outDir string
		find   bool
		maxCP  int
	)

	cmd := &cobra.Command{
		Use:   "build <font-file>",
		Short: "Generate a width table from a TrueType or OpenType font",
		Long: `Measure every glyph of a TrueType or OpenType font and write the widths as a
<family>-<size>px-<weight>.json table. Point fonts.dir (or --fonts-dir) at
the output directory to use the table for rendering.

The pixel size is taken from --name.`,
		Example: `  stackbadge fonts build /usr/share/fonts/Verdana.ttf --name verdana-11px-normal -o fonts/
  stackbadge fonts build --find Verdana_Bold.ttf --name verdana-10px-bold -o fonts/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := fonts.ParseName(name)
			if err != nil {
				return err
			}
			if maxCP <= 0 || maxCP > 0x10FFFF {
				return errors.New(errors.ErrCodeInvalidInput, "--max must be in [1, 0x10FFFF], got %d", maxCP)
			}

			path := args[0]
			if find {
				if path, err = fontgen.Find(args[0]); err != nil {
					return err
				}
				c.Logger.Debug("found system font", "name", args[0], "path", path)
			}
			src, err := fontgen.Open(path)
			if err != nil {
				return err
			}

			ranges, err := src.Ranges(parsed.Size, rune(maxCP))
			if err != nil {
				return err
			}
			if _, err := fonts.New(ranges, parsed.Size); err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", outDir)
			}
			out := filepath.Join(outDir, parsed.String()+fonts.TableExt)
			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", out)
			}
			if err := fonts.WriteTable(f, ranges); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			p := c.out()
			p.success("Built %s from %s", parsed, firstNonEmpty(src.Name, filepath.Base(path)))
			p.detail("%d ranges", len(ranges))
			p.file(out)
			p.nextStep("Use it", "stackbadge --fonts-dir "+outDir+" render label message")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", fonts.DefaultFont, "table name, <family>-<size>px-<weight>")
	f.StringVarP(&outDir, "output", "o", ".", "output directory")
	f.BoolVar(&find, "find", false, "treat the argument as an installed font file name")
	f.IntVar(&maxCP, "max", int(fontgen.MaxRune), "highest code point to measure")

	return cmd
}
