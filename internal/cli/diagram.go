package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
	"github.com/cipherstack/cipherstack/pkg/render/diagram"
)

// diagramOpts holds the command-line flags for the diagram command.
type diagramOpts struct {
	layerFlags
	output    string // output file; stdout when empty
	format    string // dot or svg
	direction string // encrypt or decrypt
	showKeys  bool   // include keys in node labels
}

func (c *CLI) diagramCommand() *cobra.Command {
	opts := diagramOpts{format: string(diagram.FormatDOT), direction: cipher.Encrypt.String()}

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Draw a layer stack as a Graphviz diagram",
		Example: `  cipherstack diagram -l shift:3 -l railfence:2
  cipherstack diagram --stack stack.toml --format svg -o stack.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := diagram.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			dir, err := cipher.ParseDirection(opts.direction)
			if err != nil {
				return err
			}
			layers, err := opts.resolve()
			if err != nil {
				return err
			}
			return c.runDiagram(cmd, layers, format, diagram.Options{Direction: dir, ShowKeys: opts.showKeys}, opts.output)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: dot, svg")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", opts.direction, "layer order to draw: encrypt, decrypt")
	cmd.Flags().BoolVar(&opts.showKeys, "show-keys", false, "include layer keys in the diagram")

	return cmd
}

func (c *CLI) runDiagram(cmd *cobra.Command, layers []pipeline.LayerSpec, format diagram.Format, opts diagram.Options, output string) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	var spinner *Spinner
	if format == diagram.FormatSVG && output != "" {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), "Rendering diagram...")
		spinner.Start()
	}
	data, err := diagram.Render(ctx, layers, format, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done("rendered " + string(format) + " diagram")

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printSuccess(cmd.ErrOrStderr(), "Diagram written")
	printFile(cmd.ErrOrStderr(), output)
	return nil
}
