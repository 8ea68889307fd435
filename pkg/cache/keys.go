package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// LayoutKeyOpts are the layout options that influence a layout result and
// therefore belong in its cache key.
type LayoutKeyOpts struct {
	Columns        int     `json:"columns"`
	Spacing        float64 `json:"spacing"`
	ContainerWidth float64 `json:"container_width"`
}

// ArtifactKeyOpts are the render options that influence an artifact and
// therefore belong in its cache key.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Title  string `json:"title"`
}

// Keyer derives cache keys from content hashes and option sets.
type Keyer interface {
	// LayoutKey generates a key for a layout result computed from the item
	// set identified by itemsHash.
	LayoutKey(itemsHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact derived from the
	// layout identified by layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key derivation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a layout result.
func (k *DefaultKeyer) LayoutKey(itemsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", itemsHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so multiple grid instances in one
// process can share a cache without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(itemsHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(itemsHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
