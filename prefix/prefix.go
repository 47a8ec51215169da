// Package prefix rebuilds string-keyed maps with every key carrying a fixed
// prefix, and strips it back off.
//
// Go has no type-level key remapping: map[string]V says nothing about which
// keys exist. The key-set contract (same size, every key is P+k, same values)
// is a runtime property, checked by the tests in this package.
package prefix

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/ErikKalkoken/go-set"
)

// ErrMissingPrefix is returned by Strip when a key does not start with the prefix.
var ErrMissingPrefix = errors.New("key is missing prefix")

// Prefix returns a new map holding m[k] under the key p+k for every k in m.
// m is not modified. A nil m yields an empty, non-nil map.
func Prefix[K ~string, V any](m map[K]V, p string) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[p+string(k)] = v
	}
	return out
}

// Strip is the inverse of Prefix. Every key of m must start with p.
func Strip[V any](m map[string]V, p string) (map[string]V, error) {
	out := make(map[string]V, len(m))
	for k, v := range m {
		suffix, ok := strings.CutPrefix(k, p)
		if !ok {
			return nil, fmt.Errorf("strip %q from %q: %w", p, k, ErrMissingPrefix)
		}
		out[suffix] = v
	}
	return out, nil
}

// Keys returns the key set of m.
func Keys[V any](m map[string]V) set.Set[string] {
	return set.Collect(maps.Keys(m))
}
