package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for stackbadge. Styles, fonts and icon
titles complete as well as commands.

To load completions:

Bash:
  $ source <(stackbadge completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ stackbadge completion bash > /etc/bash_completion.d/stackbadge
  # macOS:
  $ stackbadge completion bash > $(brew --prefix)/etc/bash_completion.d/stackbadge

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ stackbadge completion zsh > "${fpath[1]}/_stackbadge"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ stackbadge completion fish | source

  # To load completions for each session, execute once:
  $ stackbadge completion fish > ~/.config/fish/completions/stackbadge.fish

PowerShell:
  PS> stackbadge completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> stackbadge completion powershell > stackbadge.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(c.Out)
			case "zsh":
				return root.GenZshCompletion(c.Out)
			case "fish":
				return root.GenFishCompletion(c.Out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(c.Out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}
