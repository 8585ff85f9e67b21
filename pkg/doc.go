// Package pkg provides the core libraries for cipherstack, a layered
// classical cipher engine.
//
// # Overview
//
// A cipherstack transform is an ordered list of cipher layers. Encryption
// feeds the text through the layers from first to last; decryption undoes
// them from last to first, so a round trip through the same stack restores
// the input for every lossless cipher.
//
// The typical data flow:
//
//	text + [stackfile] or "algorithm:key" flags
//	         ↓
//	    [cipher/registry] (resolve names and aliases)
//	         ↓
//	    [pipeline] (validate every key, fold the layers)
//	         ↓
//	    ciphertext + feistel-block traces
//
// # Quick Start
//
//	layers := []pipeline.LayerSpec{
//	    {Algorithm: "shift", Key: "3"},
//	    {Algorithm: "railfence", Key: "2"},
//	}
//	res, _ := pipeline.Run("hello", layers, cipher.Encrypt)
//	fmt.Println(res.Text) // korho
//
// # Main Packages
//
// [cipher] - The Algorithm descriptor shared by every cipher, plus the
// alphabet helpers. Each cipher lives in its own subpackage: shift, mono,
// poly, zigzag, columnar, feistel and digraph.
//
// [cipher/registry] - The list of supported algorithms and name resolution.
// "none" and the empty name mark a layer that is skipped.
//
// [pipeline] - Layer parsing, key pre-validation, ordered application and
// the instrumented Runner used by the CLI and HTTP API.
//
// [stackfile] - TOML and JSON stack documents.
//
// [render/diagram] - Graphviz DOT and SVG drawings of a stack.
//
// [cache] - In-memory LRU used for rendered diagrams.
//
// [observability] - Hook interfaces for pipeline, cache and HTTP events.
//
// [errors] - Coded errors shared by every entry point.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/cipher/...   # Cipher packages only
//	go test -run Example       # Examples only
//
// [cipher]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/cipher
// [cipher/registry]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/cipher/registry
// [pipeline]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/pipeline
// [stackfile]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/stackfile
// [render/diagram]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/render/diagram
// [cache]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/cache
// [observability]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/observability
// [errors]: https://pkg.go.dev/github.com/cipherstack/cipherstack/pkg/errors
package pkg
