package forge

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/mod/module"

	"proxy-generator/descriptor"
)

// DefaultNamePrefix is the prefix SuffixingRandom uses when none is configured.
const DefaultNamePrefix = "Proxy"

// NamingStrategy produces a unique identifier for a generated type derived
// from the given parent type descriptor.
type NamingStrategy interface {
	Name(parent *descriptor.Type) (string, error)
}

// SuffixingRandom names generated types by prefixing the parent's name and
// appending a random suffix, e.g. "ProxyGateway_9f3c2a...". The zero value
// uses DefaultNamePrefix.
type SuffixingRandom struct {
	Prefix string
}

// NewSuffixingRandom returns a SuffixingRandom with the given prefix.
// The prefix must be a valid Go identifier; empty selects DefaultNamePrefix.
func NewSuffixingRandom(prefix string) (SuffixingRandom, error) {
	if prefix != "" && !descriptor.IsIdentifier(prefix) {
		return SuffixingRandom{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}

	return SuffixingRandom{Prefix: prefix}, nil
}

// Name implements NamingStrategy. The parent's package path, when present,
// must be a valid import path.
func (s SuffixingRandom) Name(parent *descriptor.Type) (string, error) {
	if parent == nil {
		return "", ErrNilType
	}

	if pkgPath := parent.ID.PkgPath; pkgPath != "" {
		if err := module.CheckImportPath(pkgPath); err != nil {
			return "", fmt.Errorf("forge: invalid parent package path: %w", err)
		}
	}

	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultNamePrefix
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	name := prefix + parent.ID.Name + "_" + suffix

	if !descriptor.IsIdentifier(name) {
		return "", fmt.Errorf("%w: generated name %q", ErrInvalidPrefix, name)
	}

	return name, nil
}
