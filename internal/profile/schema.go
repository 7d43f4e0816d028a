package profile

import (
	"fmt"
	"strings"

	"proxy-generator/descriptor"
	"proxy-generator/forge"
)

// Profile represents the root of a YAML build-profile file. A profile is the
// declarative, human-reviewed form of a forge configuration: applied in file
// order, it folds into an immutable Config through the fluent API.
type Profile struct {
	// Version of the profile schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Format is the Go release tag generated units target (e.g. "go1.24").
	Format string `yaml:"format,omitempty"`

	// Name configures the naming strategy for generated types.
	Name NamingSpec `yaml:"name,omitempty"`

	// Modifiers lists type modifiers to pin explicitly.
	// Recognized: exported, abstract, final, synthetic.
	Modifiers []string `yaml:"modifiers,omitempty"`

	// Implements lists interfaces every generated type implements, by
	// "pkg/path.Name" or short "pkg.Name" reference.
	Implements []string `yaml:"implements,omitempty"`

	// Ignore replaces the default ignored-method matcher when set.
	Ignore *MatchSpec `yaml:"ignore,omitempty"`

	// Annotations are attached to the generated type itself.
	Annotations []AnnotationSpec `yaml:"annotations,omitempty"`

	// Rules are behavior-override rules, applied in file order. Later rules
	// take precedence over earlier ones when their selections overlap.
	Rules []Rule `yaml:"rules,omitempty"`
}

// NamingSpec configures the naming strategy.
type NamingSpec struct {
	// Prefix for generated type names; must be a valid Go identifier.
	Prefix string `yaml:"prefix,omitempty"`
}

// Rule attaches a behavior and optional annotations to a method selection.
type Rule struct {
	// Match selects the methods this rule applies to.
	Match MatchSpec `yaml:"match"`

	// Behavior names the implementation strategy: "abstract", "stub" or
	// "delegate:<field>".
	Behavior string `yaml:"behavior"`

	// Annotations are attached to the selected methods, in list order.
	Annotations []AnnotationSpec `yaml:"annotations,omitempty"`
}

// MatchSpec is the declarative form of a method matcher. Leaf conditions
// combine conjunctively; All, Any and Not nest arbitrarily.
type MatchSpec struct {
	// Kind restricts the selection: "method", "constructor" or "any".
	Kind string `yaml:"kind,omitempty"`

	// Name matches the method name exactly.
	Name string `yaml:"name,omitempty"`

	// NameGlob matches the method name against a glob pattern (e.g. "Get*").
	NameGlob string `yaml:"name_glob,omitempty"`

	// DeclaredBy matches methods declared by the referenced type.
	DeclaredBy string `yaml:"declared_by,omitempty"`

	// Synthetic matches compiler- or generator-produced methods.
	Synthetic bool `yaml:"synthetic,omitempty"`

	// All matches when every nested spec matches.
	All []MatchSpec `yaml:"all,omitempty"`

	// Any matches when at least one nested spec matches.
	Any []MatchSpec `yaml:"any,omitempty"`

	// Not inverts the nested spec.
	Not *MatchSpec `yaml:"not,omitempty"`
}

// IsZero returns true if no condition is set; a zero spec matches everything.
func (s *MatchSpec) IsZero() bool {
	return s.Kind == "" && s.Name == "" && s.NameGlob == "" && s.DeclaredBy == "" &&
		!s.Synthetic && len(s.All) == 0 && len(s.Any) == 0 && s.Not == nil
}

// AnnotationSpec is the declarative form of an attribute annotation.
type AnnotationSpec struct {
	// Name of the annotation.
	Name string `yaml:"name"`

	// Values carries the annotation's key/value payload.
	Values map[string]string `yaml:"values,omitempty"`

	// Parameter targets the annotation at a method parameter index instead
	// of the method itself.
	Parameter *int `yaml:"parameter,omitempty"`
}

// Recognized MatchSpec kinds.
const (
	KindAny         = "any"
	KindMethod      = "method"
	KindConstructor = "constructor"
)

// Recognized behavior names.
const (
	BehaviorAbstract       = "abstract"
	BehaviorStub           = "stub"
	behaviorDelegatePrefix = "delegate:"
)

// ParseBehavior resolves a behavior name from a profile into a forge behavior.
func ParseBehavior(name string) (forge.Behavior, error) {
	switch {
	case name == BehaviorAbstract:
		return forge.Abstract, nil

	case name == BehaviorStub:
		return forge.Stub(), nil

	case strings.HasPrefix(name, behaviorDelegatePrefix):
		target := strings.TrimPrefix(name, behaviorDelegatePrefix)
		if !descriptor.IsIdentifier(target) {
			return nil, fmt.Errorf("invalid delegate target %q", target)
		}

		return forge.Delegate(target), nil

	default:
		return nil, fmt.Errorf("unknown behavior %q", name)
	}
}

// ParseModifiers resolves modifier names from a profile into a bitmask.
func ParseModifiers(names []string) (descriptor.Modifiers, error) {
	var mods descriptor.Modifiers

	for _, name := range names {
		switch name {
		case "exported":
			mods |= descriptor.ModifierExported
		case "abstract":
			mods |= descriptor.ModifierAbstract
		case "final":
			mods |= descriptor.ModifierFinal
		case "synthetic":
			mods |= descriptor.ModifierSynthetic
		default:
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
	}

	return mods, nil
}
