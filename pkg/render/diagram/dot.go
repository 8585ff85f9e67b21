package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	"github.com/cipherstack/cipherstack/pkg/cipher/registry"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// Format is a diagram output format.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
)

// ParseFormat parses "dot" or "svg".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatDOT:
		return FormatDOT, nil
	case FormatSVG, "":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported diagram format %q (must be dot or svg)", s)
}

// Options configures diagram generation.
type Options struct {
	// Direction selects the layer order and the end labels.
	Direction cipher.Direction

	// ShowKeys includes each layer's key in its label.
	ShowKeys bool
}

// ToDOT converts layers to Graphviz DOT source. Algorithm names are
// resolved through the registry, so an unknown algorithm is an error.
func ToDOT(layers []pipeline.LayerSpec, opts Options) (string, error) {
	if len(layers) == 0 {
		return "", errs.New(errs.ErrCodeEmptyPipeline, "pipeline has no layers")
	}
	canon, err := pipeline.Canonicalize(layers)
	if err != nil {
		return "", err
	}

	from, to := "plaintext", "ciphertext"
	if opts.Direction == cipher.Decrypt {
		from, to = to, from
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  in [label=%s, shape=plaintext, style=\"\"];\n", quoteLabel(from))
	fmt.Fprintf(&buf, "  out [label=%s, shape=plaintext, style=\"\"];\n", quoteLabel(to))

	prev := "in"
	for i := range canon {
		idx := i
		if opts.Direction == cipher.Decrypt {
			idx = len(canon) - 1 - i
		}
		id := fmt.Sprintf("layer%d", idx)
		attrs := fmtAttrs(idx, canon[idx], opts.ShowKeys)
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(attrs, ", "))
		fmt.Fprintf(&buf, "  %s -> %s;\n", prev, id)
		prev = id
	}
	fmt.Fprintf(&buf, "  %s -> out;\n", prev)

	buf.WriteString("}\n")
	return buf.String(), nil
}

func fmtLabel(idx int, l pipeline.LayerSpec, showKeys bool) string {
	label := fmt.Sprintf("%d. %s", idx+1, l.Algorithm)
	if alg := registry.Find(l.Algorithm); alg != nil {
		label += "\n" + alg.Name
	}
	if showKeys && l.Algorithm != string(cipher.None) {
		label += "\nkey: " + l.Key
	}
	return label
}

// labelEscaper escapes text for a DOT double-quoted string. Graphviz reads
// UTF-8 directly, so only quotes, backslashes and line breaks change.
var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

func quoteLabel(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}

func fmtAttrs(idx int, l pipeline.LayerSpec, showKeys bool) []string {
	attrs := []string{"label=" + quoteLabel(fmtLabel(idx, l, showKeys))}
	switch cipher.ID(l.Algorithm) {
	case cipher.None:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=gray40")
	case cipher.FeistelBlock:
		attrs = append(attrs, "fillcolor=\"#fde68a\"")
	case cipher.ZigZagTransposition, cipher.ColumnarTransposition:
		attrs = append(attrs, "fillcolor=\"#bfdbfe\"")
	default:
		attrs = append(attrs, "fillcolor=\"#bbf7d0\"")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Render produces the diagram in the requested format.
func Render(ctx context.Context, layers []pipeline.LayerSpec, format Format, opts Options) ([]byte, error) {
	dot, err := ToDOT(layers, opts)
	if err != nil {
		return nil, err
	}
	if format == FormatDOT {
		return []byte(dot), nil
	}
	return RenderSVG(ctx, dot)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a plain
// viewBox so the image scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
