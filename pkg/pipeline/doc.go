// Package pipeline composes cipher layers into a single transform.
//
// A pipeline is an ordered list of [LayerSpec] values. Encryption applies
// the layers head to tail; decryption walks them tail to head and applies
// each layer's inverse, so the last encryption step is undone first. This
// ordering matters because substitutions and transpositions do not
// generally commute.
//
// # Validation
//
// Before any layer runs, every layer is resolved through the cipher
// registry and its key is validated. A bad key or unknown algorithm fails
// the run before any text is transformed. Errors that depend on the text
// itself (such as a feistel-block layer receiving something other than one
// 8-bit block) surface when that layer runs. Either way the run fails with
// exactly one error, wrapped in a [*LayerError] naming the offending layer.
//
// # Usage
//
// The pure entry point is [Run]:
//
//	res, err := pipeline.Run("attack at dawn", []pipeline.LayerSpec{
//	    {Algorithm: "shift", Key: "3"},
//	    {Algorithm: "zigzag-transposition", Key: "3"},
//	}, cipher.Encrypt)
//
// A [Runner] adds logging and observability hooks around Run and is what
// the CLI and HTTP API use:
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Request{Text: text, Layers: layers, Direction: cipher.Decrypt})
package pipeline
