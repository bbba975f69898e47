package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbadge/pkg/color"
	"github.com/matzehuels/stackbadge/pkg/icons"
)

// iconsCommand creates the icons command group.
func (c *CLI) iconsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Browse the built-in icon catalog",
	}

	cmd.AddCommand(c.iconsListCommand())
	cmd.AddCommand(c.iconsShowCommand())
	cmd.AddCommand(c.iconsPickCommand())

	return cmd
}

// iconsListCommand creates the "icons list" subcommand.
func (c *CLI) iconsListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List icons, optionally filtered by title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := icons.Builtin()
			if err != nil {
				return err
			}
			list := catalog.Icons()
			if filter != "" {
				list = catalog.Filter(filter)
			}
			if len(list) == 0 {
				c.out().warning("No icon matches %q", filter)
				return nil
			}

			rows := make([][]string, len(list))
			for i, icon := range list {
				rows[i] = []string{icon.Title, icon.BaseColor().Hex()}
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleTableBorder).
				Headers("Icon", "Color").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return styleTableHeader
					}
					if col == 1 {
						return lipgloss.NewStyle().Foreground(lipgloss.Color(list[row].BaseColor().Hex()))
					}
					return StyleValue
				})
			fmt.Fprintln(c.Out, t.Render())
			c.out().detail("%d of %d icons", len(list), catalog.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "case-insensitive title substring")

	return cmd
}

// iconsShowCommand creates the "icons show" subcommand.
func (c *CLI) iconsShowCommand() *cobra.Command {
	var (
		fill  string
		asURI bool
	)

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Print an icon as SVG or as a data URI",
		Example: `  stackbadge icons show Gear --color white
  stackbadge render --logo "$(stackbadge icons show Gear --uri)" build passing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := icons.Builtin()
			if err != nil {
				return err
			}
			icon, err := catalog.Get(args[0])
			if err != nil {
				return err
			}

			col := icon.BaseColor()
			if fill != "" {
				if col, err = color.Parse(fill); err != nil {
					return err
				}
			}
			if asURI {
				fmt.Fprintln(c.Out, icon.URI(&col, nil))
				return nil
			}
			fmt.Fprintln(c.Out, icon.SVG(&col, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&fill, "color", "", "fill color (default the icon's brand color)")
	cmd.Flags().BoolVar(&asURI, "uri", false, "print a base64 data URI")
	cmd.ValidArgsFunction = completeIcons

	return cmd
}

// iconsPickCommand creates the "icons pick" subcommand.
func (c *CLI) iconsPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick an icon interactively and print its title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := icons.Builtin()
			if err != nil {
				return err
			}

			prog := tea.NewProgram(NewIconListModel(catalog),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.ErrOrStderr()),
			)
			final, err := prog.Run()
			if err != nil {
				return err
			}
			m, ok := final.(IconListModel)
			if !ok || m.Selected == nil {
				c.out().info("No icon selected")
				return nil
			}
			fmt.Fprintln(c.Out, m.Selected.Title)
			return nil
		},
	}
}

func completeIcons(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	catalog, err := icons.Builtin()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var titles []string
	for _, icon := range catalog.Filter(toComplete) {
		titles = append(titles, icon.Title)
	}
	return titles, cobra.ShellCompDirectiveNoFileComp
}
