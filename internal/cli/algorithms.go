package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	"github.com/cipherstack/cipherstack/pkg/cipher/registry"
)

func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algos", "ls"},
		Short:   "List supported cipher algorithms and their key formats",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderAlgorithms(registry.All))
			return nil
		},
	}
}

// renderAlgorithms draws the registry as a table.
func renderAlgorithms(algs []*cipher.Algorithm) string {
	rows := make([][]string, 0, len(algs)+1)
	for _, alg := range algs {
		var notes []string
		if alg.Lossy {
			notes = append(notes, "lossy")
		}
		if alg.Traces() {
			notes = append(notes, "trace")
		}
		rows = append(rows, []string{
			string(alg.ID),
			strings.Join(alg.Aliases, ", "),
			alg.KeyHint,
			strings.Join(notes, ", "),
		})
	}
	rows = append(rows, []string{string(cipher.None), `""`, "ignored; layer is skipped", ""})

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(colorCyan)
	dimStyle := lipgloss.NewStyle().Foreground(colorDim)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Aliases", "Key", "Notes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == len(rows)-1:
				return dimStyle
			case col == 0:
				return idStyle
			case col == 3:
				return dimStyle
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}
