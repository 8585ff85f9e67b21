package cli

import (
	"github.com/spf13/cobra"

	"github.com/cipherstack/cipherstack/pkg/pipeline"
	"github.com/cipherstack/cipherstack/pkg/stackfile"
)

// layerFlags collects a layer stack from --stack and repeated --layer flags.
type layerFlags struct {
	stack  string
	layers []string
}

func (f *layerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.stack, "stack", "s", "", "stack file (.toml or .json) listing layers in encryption order")
	cmd.Flags().StringArrayVarP(&f.layers, "layer", "l", nil, "layer as algorithm:key (repeatable, appended after --stack)")
}

// resolve returns the stack file's layers followed by the --layer flags.
func (f *layerFlags) resolve() ([]pipeline.LayerSpec, error) {
	var out []pipeline.LayerSpec
	if f.stack != "" {
		loaded, err := stackfile.Load(f.stack)
		if err != nil {
			return nil, err
		}
		out = append(out, loaded...)
	}
	for _, s := range f.layers {
		l, err := pipeline.ParseLayer(s)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
