package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cipherstack/cipherstack/pkg/cipher/registry"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/stackfile"
)

func (c *CLI) buildCommand() *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Interactively build a stack file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := stackfile.FormatFromPath(output); err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(output); err == nil {
					return errs.New(errs.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", output)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			p := tea.NewProgram(NewStackBuilderModel(registry.All),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("stack builder: %w", err)
			}

			m := final.(StackBuilderModel)
			out := cmd.OutOrStdout()
			if !m.Saved {
				printInfo(out, "Cancelled, nothing written")
				return nil
			}

			if err := stackfile.Save(output, m.Layers); err != nil {
				return err
			}
			c.Logger.Debug("stack saved", "path", output, "layers", len(m.Layers))
			printSuccess(out, "Saved stack with %d layer(s)", len(m.Layers))
			printFile(out, output)
			printNextStep(out, "Encrypt with it", fmt.Sprintf("%s encrypt --stack %s \"your message\"", appName, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "stack.toml", "stack file to write (.toml or .json)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
