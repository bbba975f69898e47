package cli

import (
	"strconv"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbadge/pkg/fonts"
)

// measurement is the result of the measure command.
type measurement struct {
	Text  string  `json:"text"`
	Font  string  `json:"font"`
	Size  int     `json:"size"`
	Runes int     `json:"runes"`
	Width float64 `json:"width"`
	// Exact is false when some code point fell back to the guess width.
	Exact bool `json:"exact"`
}

func measureText(f *fonts.Font, name, text string) measurement {
	m := measurement{
		Text:  text,
		Font:  name,
		Size:  f.Size(),
		Runes: utf8.RuneCountInString(text),
	}
	if w, ok := f.TextWidth(text, false); ok {
		m.Width, m.Exact = w, true
	} else {
		m.Width, _ = f.TextWidth(text, true)
	}
	return m
}

// measureCommand creates the measure command.
func (c *CLI) measureCommand() *cobra.Command {
	var (
		fontName string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "measure <text>...",
		Short: "Measure the rendered width of text",
		Example: `  stackbadge measure passing
  stackbadge measure --font verdana-10px-bold --json BUILD`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			f, err := reg.Get(fontName)
			if err != nil {
				return err
			}

			results := make([]measurement, len(args))
			for i, text := range args {
				results[i] = measureText(f, fontName, text)
			}

			if asJSON {
				enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			p := c.out()
			for _, m := range results {
				width := StyleNumber.Render(strconv.FormatFloat(m.Width, 'f', -1, 64))
				if !m.Exact {
					width += " " + StyleWarning.Render("(estimated)")
				}
				p.keyValue(strconv.Quote(m.Text), width)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fontName, "font", "f", fonts.DefaultFont, "registered font name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	_ = cmd.RegisterFlagCompletionFunc("font", c.completeFonts)

	return cmd
}

func (c *CLI) completeFonts(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	reg, err := c.registry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return reg.Names(), cobra.ShellCompDirectiveNoFileComp
}
