package attribute

import (
	"errors"

	"proxy-generator/descriptor"
	"proxy-generator/internal/common"
)

// ErrNilFactory is returned when a nil factory is composed into a compound.
var ErrNilFactory = errors.New("attribute: nil appender factory")

// Annotation is a single metadata record attached to a generated element,
// e.g. a doc-comment marker or a struct tag entry.
type Annotation struct {
	Name   string
	Values map[string]string
}

// Target receives the metadata an appender attaches to a generated element.
// The emission engine supplies the implementation; appenders only ever call
// into it, they never read from it.
type Target interface {
	// AddAnnotation attaches an annotation to the element itself.
	AddAnnotation(a Annotation)
	// AddParameterAnnotation attaches an annotation to the parameter at the
	// given index, the first parameter being index 0.
	AddParameterAnnotation(index int, a Annotation)
}

// Appender attaches metadata to a single generated element. Appenders are
// pure values: Apply writes only into the supplied target.
type Appender interface {
	Apply(target Target)
}

// Factory produces an Appender for a method or field of an instrumented type.
type Factory interface {
	Make(instrumented *descriptor.Type) Appender
}

// TypeAppender attaches metadata to the generated type itself.
type TypeAppender interface {
	Apply(target Target)
}

type noOp struct{}

func (noOp) Apply(Target)                   {}
func (noOp) Make(*descriptor.Type) Appender { return noOp{} }
func (noOp) String() string                 { return "noop" }

// NoOpFactory returns the factory producing appenders that attach nothing.
// The same instance is returned on every call.
func NoOpFactory() Factory {
	return noOp{}
}

// NoOpAppender returns the appender that attaches nothing.
func NoOpAppender() Appender {
	return noOp{}
}

// NoOpType returns the type appender that attaches nothing.
func NoOpType() TypeAppender {
	return noOp{}
}

// compound applies member factories strictly in slice order.
type compound struct {
	members []Factory
}

func (c compound) Make(instrumented *descriptor.Type) Appender {
	appenders := make([]Appender, 0, len(c.members))
	for _, f := range c.members {
		appenders = append(appenders, f.Make(instrumented))
	}

	return compoundAppender{members: appenders}
}

type compoundAppender struct {
	members []Appender
}

func (c compoundAppender) Apply(target Target) {
	for _, a := range c.members {
		a.Apply(target)
	}
}

// Compound composes factories into one that applies each member's appender
// in argument order: earlier factories take effect before later ones.
// Nested compounds are flattened. A nil member yields an error.
func Compound(factories ...Factory) (Factory, error) {
	members := make([]Factory, 0, len(factories))

	for _, f := range factories {
		if f == nil {
			return nil, ErrNilFactory
		}

		if inner, ok := f.(compound); ok {
			members = append(members, inner.members...)
			continue
		}

		members = append(members, f)
	}

	if len(members) == 1 {
		return members[0], nil
	}

	return compound{members: members}, nil
}

// forAnnotations attaches fixed annotations to the element.
type forAnnotations struct {
	annotations []Annotation
}

func (f forAnnotations) Make(*descriptor.Type) Appender { return f }

func (f forAnnotations) Apply(target Target) {
	for _, a := range f.annotations {
		target.AddAnnotation(a)
	}
}

// ForAnnotations returns a factory attaching the given annotations to each
// selected element, in argument order.
func ForAnnotations(annotations ...Annotation) Factory {
	return forAnnotations{annotations: common.Clone(annotations)}
}

// forParameterAnnotations attaches fixed annotations to one parameter.
type forParameterAnnotations struct {
	index       int
	annotations []Annotation
}

func (f forParameterAnnotations) Make(*descriptor.Type) Appender { return f }

func (f forParameterAnnotations) Apply(target Target) {
	for _, a := range f.annotations {
		target.AddParameterAnnotation(f.index, a)
	}
}

// ForParameterAnnotations returns a factory attaching the given annotations
// to the parameter at the given index of each selected method.
func ForParameterAnnotations(index int, annotations ...Annotation) Factory {
	return forParameterAnnotations{index: index, annotations: common.Clone(annotations)}
}

// typeForAnnotations attaches fixed annotations to the generated type.
type typeForAnnotations struct {
	annotations []Annotation
}

func (f typeForAnnotations) Apply(target Target) {
	for _, a := range f.annotations {
		target.AddAnnotation(a)
	}
}

// TypeForAnnotations returns a type appender attaching the given annotations
// to the generated type, in argument order.
func TypeForAnnotations(annotations ...Annotation) TypeAppender {
	return typeForAnnotations{annotations: common.Clone(annotations)}
}

// CompoundType composes type appenders applied in argument order.
func CompoundType(appenders ...TypeAppender) (TypeAppender, error) {
	for _, a := range appenders {
		if a == nil {
			return nil, ErrNilFactory
		}
	}

	return compoundType{members: common.Clone(appenders)}, nil
}

type compoundType struct {
	members []TypeAppender
}

func (c compoundType) Apply(target Target) {
	for _, a := range c.members {
		a.Apply(target)
	}
}
