package forge

import (
	"fmt"

	"proxy-generator/attribute"
	"proxy-generator/descriptor"
	"proxy-generator/internal/common"
	"proxy-generator/matcher"
)

// ConstructorStrategy decides which constructors the generated type exposes.
// It is opaque to the configuration core; the emission engine interprets it.
type ConstructorStrategy interface {
	// Describe returns a short name for plans and diagnostics.
	Describe() string
}

type constructorStrategy struct {
	name string
}

func (s constructorStrategy) Describe() string { return s.name }

var (
	// ImitateParent generates a constructor per visible parent constructor.
	ImitateParent ConstructorStrategy = constructorStrategy{name: "imitate-parent"}

	// DefaultConstructor generates a single parameterless constructor.
	DefaultConstructor ConstructorStrategy = constructorStrategy{name: "default-constructor"}

	// NoConstructors generates no constructors at all.
	NoConstructors ConstructorStrategy = constructorStrategy{name: "no-constructors"}
)

// SubclassPlan is the fully resolved configuration record handed to the
// emission engine for one artifact-build request. All Definable fields are
// resolved: modifiers against the parent's own, the type attribute against
// the no-op appender.
type SubclassPlan struct {
	FormatVersion        string
	Naming               NamingStrategy
	BaseType             *descriptor.Type
	Interfaces           []*descriptor.Type
	Modifiers            descriptor.Modifiers
	TypeAttribute        attribute.TypeAppender
	IgnoredMethods       matcher.Matcher
	Visitors             *VisitorChain
	Registry             *MethodRegistry
	DefaultFieldFactory  attribute.Factory
	DefaultMethodFactory attribute.Factory
	Constructors         ConstructorStrategy
}

// Subclass resolves the configuration against a requested parent type.
//
// If the parent is an interface, the base type of the generated unit is the
// root object type and the parent is placed ahead of the configured
// interfaces. Otherwise the parent is used as the base type and must be
// implementable: not final, not a basic type, not an array type.
//
// Subclass only reads the Config; it never mutates it.
func (c *Config) Subclass(parent *descriptor.Type, strategy ConstructorStrategy) (*SubclassPlan, error) {
	if parent == nil {
		return nil, ErrNilType
	}

	if strategy == nil {
		return nil, ErrNilStrategy
	}

	baseType := parent
	interfaces := common.Clone(c.interfaces)

	if parent.IsInterface() {
		baseType = descriptor.Object()
		interfaces = common.Prepended(interfaces, parent)
	} else if !parent.Implementable() {
		return nil, fmt.Errorf("%w: %s (%s, %s)", ErrNotImplementable, parent.ID, parent.Kind, parent.Modifiers)
	}

	return &SubclassPlan{
		FormatVersion:        c.formatVersion,
		Naming:               c.naming,
		BaseType:             baseType,
		Interfaces:           interfaces,
		Modifiers:            c.modifiers.Resolve(parent.Modifiers),
		TypeAttribute:        c.typeAppender.Resolve(attribute.NoOpType()),
		IgnoredMethods:       c.ignored,
		Visitors:             c.visitors,
		Registry:             c.registry,
		DefaultFieldFactory:  c.fieldFactory,
		DefaultMethodFactory: c.methodFactory,
		Constructors:         strategy,
	}, nil
}

// Engine is the external emission engine boundary. An implementation
// consumes a resolved plan exactly once per artifact-build request and
// produces the source of the synthetic unit. The configuration core never
// implements it.
type Engine interface {
	Emit(plan *SubclassPlan) ([]byte, error)
}
