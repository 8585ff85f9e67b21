// Package diagram renders a layer stack as a Graphviz diagram.
//
// # Overview
//
// A diagram is a left-to-right chain: the input text, one box per layer in
// application order, then the output text. Encryption diagrams read
// plaintext → layers → ciphertext; decryption diagrams list the same layers
// in reverse. "none" layers appear as dashed boxes.
//
// # Usage
//
//	dot, err := diagram.ToDOT(layers, diagram.Options{Direction: cipher.Encrypt})
//	svg, err := diagram.RenderSVG(ctx, dot)
//
// Keys are hidden unless [Options].ShowKeys is set.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package diagram
