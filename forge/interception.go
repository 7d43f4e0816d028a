package forge

import (
	"proxy-generator/attribute"
	"proxy-generator/descriptor"
	"proxy-generator/matcher"
)

// Interceptable is a method selection that can be assigned a behavior.
// OptionalSelection and MatchedSelection both implement it.
type Interceptable interface {
	// Intercept assigns the behavior to the current selection.
	Intercept(b Behavior) (*AnnotatedTarget, error)
	// WithoutCode marks the current selection abstract.
	WithoutCode() (*AnnotatedTarget, error)
}

// OptionalSelection is a method selection for which assigning a behavior is
// optional. It is produced by WithImplementing: the new interface's methods
// may be intercepted, but if they never are, they stay as declared and
// Config returns the snapshot unchanged with no registry mutation.
type OptionalSelection struct {
	config    *Config
	predicate matcher.Matcher
}

// Config returns the configuration the selection was derived from (with the
// implemented interface already appended). Reading it has no effect on the
// registry.
func (s *OptionalSelection) Config() *Config {
	return s.config
}

// Intercept assigns the behavior to the selection.
func (s *OptionalSelection) Intercept(b Behavior) (*AnnotatedTarget, error) {
	return (&MatchedSelection{config: s.config, predicate: s.predicate}).Intercept(b)
}

// WithoutCode marks the selected methods abstract.
func (s *OptionalSelection) WithoutCode() (*AnnotatedTarget, error) {
	return s.Intercept(Abstract)
}

// MatchedSelection is a method selection for which Intercept is the expected
// next step before any artifact is produced.
type MatchedSelection struct {
	config    *Config
	predicate matcher.Matcher
}

// Intercept assigns the behavior to the selection, yielding a target that
// can still accumulate attribute appenders before materializing.
func (s *MatchedSelection) Intercept(b Behavior) (*AnnotatedTarget, error) {
	if b == nil {
		return nil, ErrNilBehavior
	}

	return &AnnotatedTarget{
		config:    s.config,
		predicate: s.predicate,
		behavior:  b,
		factory:   attribute.NoOpFactory(),
	}, nil
}

// WithoutCode marks the selected methods abstract.
func (s *MatchedSelection) WithoutCode() (*AnnotatedTarget, error) {
	return s.Intercept(Abstract)
}

// AnnotatedTarget is a selection with a behavior assigned and an attribute
// appender factory accumulating. Materialize folds it into a new Config.
type AnnotatedTarget struct {
	config    *Config
	predicate matcher.Matcher
	behavior  Behavior
	factory   attribute.Factory
}

// Attribute returns a new target whose appender factory applies the current
// factory first and then f: attribute factories compose left to right in
// call order.
func (t *AnnotatedTarget) Attribute(f attribute.Factory) (*AnnotatedTarget, error) {
	if f == nil {
		return nil, ErrNilFactory
	}

	composed, err := attribute.Compound(t.factory, f)
	if err != nil {
		return nil, err
	}

	return &AnnotatedTarget{
		config:    t.config,
		predicate: t.predicate,
		behavior:  t.behavior,
		factory:   composed,
	}, nil
}

// AnnotateMethod attaches the given annotations to the selected methods.
func (t *AnnotatedTarget) AnnotateMethod(annotations ...attribute.Annotation) (*AnnotatedTarget, error) {
	return t.Attribute(attribute.ForAnnotations(annotations...))
}

// AnnotateParameter attaches the given annotations to the parameter at the
// given index of the selected methods, the first parameter being index 0.
func (t *AnnotatedTarget) AnnotateParameter(index int, annotations ...attribute.Annotation) (*AnnotatedTarget, error) {
	return t.Attribute(attribute.ForParameterAnnotations(index, annotations...))
}

// Materialize folds the accumulated rule into the originating Config's
// registry and returns the resulting new Config. It is a pure function of
// the target: the originating Config is unchanged, and materializing the
// same target twice yields two equal configurations.
func (t *AnnotatedTarget) Materialize() *Config {
	d := t.config.derive()
	d.registry = t.config.registry.prepend(RegistryEntry{
		Matcher:  t.predicate,
		Behavior: t.behavior,
		Factory:  t.factory,
	})

	return d
}

// The helpers below continue the fluent chain from a target. Each delegates
// through exactly one Materialize.

// Invokable materializes and selects any executable matching m.
func (t *AnnotatedTarget) Invokable(m matcher.Matcher) (*MatchedSelection, error) {
	return t.Materialize().Invokable(m)
}

// Method materializes and selects plain methods matching m.
func (t *AnnotatedTarget) Method(m matcher.Matcher) (*MatchedSelection, error) {
	return t.Materialize().Method(m)
}

// Constructor materializes and selects constructors matching m.
func (t *AnnotatedTarget) Constructor(m matcher.Matcher) (*MatchedSelection, error) {
	return t.Materialize().Constructor(m)
}

// WithImplementing materializes and implements the given interface.
func (t *AnnotatedTarget) WithImplementing(iface *descriptor.Type) (*OptionalSelection, error) {
	return t.Materialize().WithImplementing(iface)
}

// Subclass materializes and resolves a subclass plan for the given parent.
func (t *AnnotatedTarget) Subclass(parent *descriptor.Type, strategy ConstructorStrategy) (*SubclassPlan, error) {
	return t.Materialize().Subclass(parent, strategy)
}
