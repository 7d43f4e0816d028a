package forge

import (
	"fmt"
	goversion "go/version"
	"reflect"
	"runtime"

	"proxy-generator/attribute"
	"proxy-generator/descriptor"
	"proxy-generator/internal/common"
	"proxy-generator/matcher"
)

// fallbackFormatVersion is used when the running toolchain does not report a
// release version (e.g. devel builds).
const fallbackFormatVersion = "go1.24"

// DefaultFormatVersion returns the Go release tag of the running toolchain,
// e.g. "go1.24".
func DefaultFormatVersion() string {
	if v := goversion.Lang(runtime.Version()); v != "" {
		return v
	}

	return fallbackFormatVersion
}

// DefaultIgnoredMethods returns the matcher every new Config starts with:
// synthetic methods and the parameterless Finalize hook are never intercepted.
func DefaultIgnoredMethods() matcher.Matcher {
	return matcher.Or(matcher.IsSynthetic(), matcher.IsFinalizer())
}

// Config is an immutable configuration snapshot. Every mutator returns a new
// Config built from the receiver's fields plus one changed field; the
// receiver is never modified and stays valid after any number of derivations.
// A Config may be shared freely across goroutines.
type Config struct {
	formatVersion string
	naming        NamingStrategy
	interfaces    []*descriptor.Type
	ignored       matcher.Matcher
	visitors      *VisitorChain
	registry      *MethodRegistry
	modifiers     Definable[descriptor.Modifiers]
	typeAppender  Definable[attribute.TypeAppender]
	fieldFactory  attribute.Factory
	methodFactory attribute.Factory
}

// NewConfig returns a Config with all defaults applied: the running
// toolchain's format version, random suffix naming, no interfaces, ignored
// synthetic and finalizer methods, an empty visitor chain and registry,
// undefined modifiers and type attributes, and no-op attribute defaults.
func NewConfig() *Config {
	return &Config{
		formatVersion: DefaultFormatVersion(),
		naming:        SuffixingRandom{Prefix: DefaultNamePrefix},
		ignored:       DefaultIgnoredMethods(),
		visitors:      NewVisitorChain(),
		registry:      NewMethodRegistry(),
		modifiers:     Undefined[descriptor.Modifiers](),
		typeAppender:  Undefined[attribute.TypeAppender](),
		fieldFactory:  attribute.NoOpFactory(),
		methodFactory: attribute.NoOpFactory(),
	}
}

// derive returns a shallow copy of the receiver for one-field changes.
func (c *Config) derive() *Config {
	d := *c

	return &d
}

// FormatVersion returns the configured Go release tag.
func (c *Config) FormatVersion() string {
	return c.formatVersion
}

// NamingStrategy returns the configured naming strategy.
func (c *Config) NamingStrategy() NamingStrategy {
	return c.naming
}

// InterfaceTypes returns the configured interface descriptors in insertion
// order. The returned slice is a copy.
func (c *Config) InterfaceTypes() []*descriptor.Type {
	return common.Clone(c.interfaces)
}

// IgnoredMethods returns the matcher for methods that are never intercepted.
func (c *Config) IgnoredMethods() matcher.Matcher {
	return c.ignored
}

// VisitorChain returns the configured visitor chain.
func (c *Config) VisitorChain() *VisitorChain {
	return c.visitors
}

// Registry returns the configured method registry.
func (c *Config) Registry() *MethodRegistry {
	return c.registry
}

// Modifiers returns the configured type modifiers, which may be undefined.
func (c *Config) Modifiers() Definable[descriptor.Modifiers] {
	return c.modifiers
}

// TypeAttribute returns the configured type attribute appender, which may be
// undefined.
func (c *Config) TypeAttribute() Definable[attribute.TypeAppender] {
	return c.typeAppender
}

// DefaultFieldFactory returns the attribute factory applied to every
// generated field.
func (c *Config) DefaultFieldFactory() attribute.Factory {
	return c.fieldFactory
}

// DefaultMethodFactory returns the attribute factory applied to every
// generated or intercepted method.
func (c *Config) DefaultMethodFactory() attribute.Factory {
	return c.methodFactory
}

// WithFormatVersion returns a new Config targeting the given Go release tag.
func (c *Config) WithFormatVersion(v string) (*Config, error) {
	if !goversion.IsValid(v) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormatVersion, v)
	}

	d := c.derive()
	d.formatVersion = v

	return d, nil
}

// WithNamingStrategy returns a new Config using the given naming strategy.
func (c *Config) WithNamingStrategy(s NamingStrategy) (*Config, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}

	d := c.derive()
	d.naming = s

	return d, nil
}

// WithModifiers returns a new Config with explicitly pinned type modifiers,
// replacing any implicit (parent-derived) modifiers.
func (c *Config) WithModifiers(m descriptor.Modifiers) (*Config, error) {
	if m&^descriptor.ModifiersTypeMask != 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModifiers, m)
	}

	d := c.derive()
	d.modifiers = Defined(m)

	return d, nil
}

// WithAttribute returns a new Config with the given type attribute appender,
// replacing any previously configured one.
func (c *Config) WithAttribute(a attribute.TypeAppender) (*Config, error) {
	if a == nil {
		return nil, ErrNilAppender
	}

	d := c.derive()
	d.typeAppender = Defined(a)

	return d, nil
}

// WithTypeAnnotations returns a new Config whose type attribute appender
// attaches the given annotations, replacing any previously configured one.
func (c *Config) WithTypeAnnotations(annotations ...attribute.Annotation) (*Config, error) {
	return c.WithAttribute(attribute.TypeForAnnotations(annotations...))
}

// WithIgnoredMethods returns a new Config replacing the ignored-method
// matcher. By default synthetic methods and the Finalize hook are ignored.
func (c *Config) WithIgnoredMethods(m matcher.Matcher) (*Config, error) {
	if m == nil {
		return nil, ErrNilMatcher
	}

	d := c.derive()
	d.ignored = m

	return d, nil
}

// WithVisitor returns a new Config with the given visitor appended to the
// chain applied to every generated unit.
func (c *Config) WithVisitor(v Visitor) (*Config, error) {
	chain, err := c.visitors.Append(v)
	if err != nil {
		return nil, err
	}

	d := c.derive()
	d.visitors = chain

	return d, nil
}

// WithDefaultFieldFactory returns a new Config with the attribute factory
// applied as a default to every generated field.
func (c *Config) WithDefaultFieldFactory(f attribute.Factory) (*Config, error) {
	if f == nil {
		return nil, ErrNilFactory
	}

	d := c.derive()
	d.fieldFactory = f

	return d, nil
}

// WithDefaultMethodFactory returns a new Config with the attribute factory
// applied as a default to every generated or intercepted method.
func (c *Config) WithDefaultMethodFactory(f attribute.Factory) (*Config, error) {
	if f == nil {
		return nil, ErrNilFactory
	}

	d := c.derive()
	d.methodFactory = f

	return d, nil
}

// WithImplementing returns an optional selection over the methods declared
// by the given interface, with the interface appended to the configuration's
// interface list. If the selection is never intercepted, the new interface's
// methods remain exactly as declared (abstract).
func (c *Config) WithImplementing(iface *descriptor.Type) (*OptionalSelection, error) {
	if iface == nil {
		return nil, ErrNilType
	}

	if !iface.IsInterface() {
		return nil, fmt.Errorf("%w: %s", ErrNotInterface, iface.ID)
	}

	d := c.derive()
	d.interfaces = append(common.Clone(c.interfaces), iface)

	return &OptionalSelection{
		config:    d,
		predicate: matcher.DeclaredBy(iface),
	}, nil
}

// Invokable returns a matched selection over any executable, method or
// constructor, matching m.
func (c *Config) Invokable(m matcher.Matcher) (*MatchedSelection, error) {
	if m == nil {
		return nil, ErrNilMatcher
	}

	return &MatchedSelection{config: c, predicate: m}, nil
}

// Method returns a matched selection restricted to plain methods matching m.
func (c *Config) Method(m matcher.Matcher) (*MatchedSelection, error) {
	if m == nil {
		return nil, ErrNilMatcher
	}

	return c.Invokable(matcher.And(matcher.IsMethod(), m))
}

// Constructor returns a matched selection restricted to constructors
// matching m.
func (c *Config) Constructor(m matcher.Matcher) (*MatchedSelection, error) {
	if m == nil {
		return nil, ErrNilMatcher
	}

	return c.Invokable(matcher.And(matcher.IsConstructor(), m))
}

// Equal reports whether two snapshots carry the same configuration.
func (c *Config) Equal(o *Config) bool {
	if c == nil || o == nil {
		return c == o
	}

	return reflect.DeepEqual(c, o)
}
