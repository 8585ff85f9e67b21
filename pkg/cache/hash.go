package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key types reported to cache hooks.
const (
	KeyTypeDiagram = "diagram"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// DiagramKey generates the key for a rendered pipeline diagram. layers is
// any JSON-encodable description of the pipeline; format is the output
// format ("dot" or "svg").
func DiagramKey(format string, layers any) string {
	return hashKey(KeyTypeDiagram+":"+format, layers)
}
