package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// transformOpts holds the flags shared by encrypt and decrypt.
type transformOpts struct {
	layerFlags
	file    string // read text from this file instead of the argument
	trace   bool   // print feistel traces after the result
	jsonOut bool   // emit {text, trace} as JSON
}

func (c *CLI) encryptCommand() *cobra.Command {
	return c.transformCommand(cipher.Encrypt, "Encrypt text through a layer stack", `  cipherstack encrypt "attack at dawn" -l shift:3 -l zigzag-transposition:3
  cipherstack encrypt 11110011 -l feistel-block:1010000010 --trace
  echo "hello" | cipherstack encrypt --stack stack.toml`)
}

func (c *CLI) decryptCommand() *cobra.Command {
	return c.transformCommand(cipher.Decrypt, "Decrypt text through a layer stack (applied in reverse)", `  cipherstack decrypt dwwdfndwgdzq -l shift:3
  cipherstack decrypt --file secret.txt --stack stack.toml`)
}

func (c *CLI) transformCommand(dir cipher.Direction, short, example string) *cobra.Command {
	var opts transformOpts

	cmd := &cobra.Command{
		Use:     dir.String() + " [text]",
		Short:   short,
		Example: example,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args, opts.file)
			if err != nil {
				return err
			}
			layers, err := opts.resolve()
			if err != nil {
				return err
			}
			return c.runTransform(cmd, text, layers, dir, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read text from file")
	cmd.Flags().BoolVarP(&opts.trace, "trace", "t", false, "print the feistel-block trace")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print {text, trace} as JSON")

	return cmd
}

func (c *CLI) runTransform(cmd *cobra.Command, text string, layers []pipeline.LayerSpec, dir cipher.Direction, opts transformOpts) error {
	prog := newProgress(c.Logger)
	res, err := c.newRunner().Execute(cmd.Context(), pipeline.Request{
		Text:      text,
		Layers:    layers,
		Direction: dir,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("%sed through %d layer(s)", dir, len(layers)))

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(out, res.Text)
	if opts.trace && len(res.Trace) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, res.JoinedTrace())
	}
	return nil
}

// readInput picks the text from the argument, the --file flag or stdin, in
// that order. A single trailing newline from a file or pipe is dropped.
func readInput(stdin io.Reader, args []string, file string) (string, error) {
	if len(args) > 0 && file != "" {
		return "", errs.New(errs.ErrCodeInvalidInput, "give the text as an argument or with --file, not both")
	}
	if len(args) > 0 {
		return args[0], nil
	}

	var data []byte
	var err error
	if file != "" {
		data, err = os.ReadFile(file)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidInput, err, "read input")
	}

	text := string(data)
	if s, ok := strings.CutSuffix(text, "\n"); ok {
		text = strings.TrimSuffix(s, "\r")
	}
	return text, nil
}
