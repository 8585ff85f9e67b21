// Package stackfile reads and writes layer stacks as TOML or JSON documents.
//
// TOML stacks use an array of tables:
//
//	[[layer]]
//	algorithm = "shift"
//	key = "3"
//
// JSON stacks use a top-level "layers" array:
//
//	{"layers": [{"algorithm": "shift", "key": "3"}]}
//
// Layer order in the file is the encryption order.
package stackfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// Format identifies a stack file encoding.
type Format string

const (
	TOML Format = "toml"
	JSON Format = "json"
)

// document is the on-disk shape shared by both encodings.
type document struct {
	Layers []pipeline.LayerSpec `toml:"layer" json:"layers"`
}

// ParseFormat parses "toml" or "json" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case TOML:
		return TOML, nil
	case JSON:
		return JSON, nil
	}
	return "", errs.New(errs.ErrCodeInvalidStack, "unsupported stack format %q (must be toml or json)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", errs.New(errs.ErrCodeInvalidStack, "cannot infer stack format from %q (use .toml or .json)", filepath.Base(path))
}

// Load reads the stack file at path, inferring its format from the extension.
func Load(path string) ([]pipeline.LayerSpec, error) {
	if err := errs.ValidateStackPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "open stack file")
	}
	defer f.Close()
	return Read(f, format)
}

// Read decodes a stack from r. Unknown fields are rejected so that a
// misspelled "algorithm" or "key" does not silently become an empty layer.
func Read(r io.Reader, format Format) ([]pipeline.LayerSpec, error) {
	var doc document
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidStack, err, "parse toml stack")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errs.New(errs.ErrCodeInvalidStack, "unknown stack field %q", undecoded[0].String())
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidStack, err, "parse json stack")
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidStack, "unsupported stack format %q", format)
	}
	if doc.Layers == nil {
		doc.Layers = []pipeline.LayerSpec{}
	}
	return doc.Layers, nil
}

// Write encodes layers to w in the given format.
func Write(w io.Writer, layers []pipeline.LayerSpec, format Format) error {
	doc := document{Layers: layers}
	switch format {
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("encode toml stack: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	return errs.New(errs.ErrCodeInvalidStack, "unsupported stack format %q", format)
}

// Save writes layers to path, inferring the format from the extension.
func Save(path string, layers []pipeline.LayerSpec) error {
	if err := errs.ValidateStackPath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, layers, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
