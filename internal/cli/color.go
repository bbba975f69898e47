package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbadge/pkg/color"
)

// colorInfo describes one parsed color.
type colorInfo struct {
	Input      string  `json:"input"`
	CSS        string  `json:"css"`
	Hex        string  `json:"hex"`
	Name       string  `json:"name,omitempty"`
	Alpha      uint8   `json:"alpha"`
	Brightness float64 `json:"brightness"`
	Text       string  `json:"text"`
	Shadow     string  `json:"shadow"`
}

func describeColor(input string) (colorInfo, error) {
	col, err := color.Parse(input)
	if err != nil {
		return colorInfo{}, err
	}
	name, _ := col.Name()
	text, shadow := col.ContrastPair()
	return colorInfo{
		Input:      input,
		CSS:        col.String(),
		Hex:        col.Hex(),
		Name:       name,
		Alpha:      col.A,
		Brightness: col.Brightness(),
		Text:       text,
		Shadow:     shadow,
	}, nil
}

// colorCommand creates the color command.
func (c *CLI) colorCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "color <color>...",
		Short: "Parse colors and show their badge text contrast",
		Long: `Parse CSS colors the way badges do (hex, rgb(), rgba(), hsl(), hsla() and
names) and show their canonical form, brightness and the text and shadow
colors drawn on top of them.`,
		Example: `  stackbadge color '#4c1' 'rgb(255, 0, 0)' yellowgreen
  stackbadge color --json 'hsla(120, 50%, 50%, 0.5)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]colorInfo, 0, len(args))
			for _, arg := range args {
				info, err := describeColor(arg)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}

			if asJSON {
				enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			p := c.out()
			for i, info := range infos {
				if i > 0 {
					p.newline()
				}
				swatch := lipgloss.NewStyle().
					Background(lipgloss.Color(info.Hex)).
					Foreground(lipgloss.Color(info.Text)).
					Padding(0, 1).
					Render("Aa")
				fmt.Fprintln(c.Out, StyleTitle.Render(info.Input)+" "+swatch)
				p.keyValue("css", info.CSS)
				p.keyValue("hex", info.Hex)
				if info.Name != "" {
					p.keyValue("name", info.Name)
				}
				p.keyValue("brightness", StyleNumber.Render(strconv.FormatFloat(info.Brightness, 'f', 3, 64)))
				p.keyValue("text", info.Text+" on shadow "+info.Shadow)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}
