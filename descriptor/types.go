package descriptor

import (
	"go/types"
	"strings"

	"proxy-generator/internal/common"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "proxy-generator/examples/payment"
	Name    string // e.g., "Gateway"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Alias returns the short "pkg.Name" form of the TypeID.
func (t TypeID) Alias() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindExternal           // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// Modifiers is a bitmask of properties attached to a type or method.
type Modifiers uint32

const (
	ModifierExported  Modifiers = 1 << iota // name is exported from its package
	ModifierAbstract                        // declared without a body (interface methods, generated abstract methods)
	ModifierFinal                           // may not be used as the parent of a generated type
	ModifierSynthetic                       // produced by the compiler or the generator, not written by hand

	// ModifiersTypeMask covers every modifier that may be set on a generated type.
	ModifiersTypeMask = (1 << iota) - 1
	// ModifiersNone is the empty modifier set.
	ModifiersNone Modifiers = 0
)

// Has returns true if all bits of m are set.
func (ms Modifiers) Has(m Modifiers) bool {
	return ms&m == m
}

// String returns a "|"-joined list of set modifier names.
func (ms Modifiers) String() string {
	var parts []string
	if ms.Has(ModifierExported) {
		parts = append(parts, "exported")
	}

	if ms.Has(ModifierAbstract) {
		parts = append(parts, "abstract")
	}

	if ms.Has(ModifierFinal) {
		parts = append(parts, "final")
	}

	if ms.Has(ModifierSynthetic) {
		parts = append(parts, "synthetic")
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// Type describes a Go type known to the generator.
type Type struct {
	ID         TypeID     // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind   // Kind of type
	Modifiers  Modifiers  // Modifier bits for the type itself
	Methods    []*Method  // Declared and promoted methods, plus constructor functions
	Underlying *Type      // For named types wrapping another type
	ElemType   *Type      // For pointers, slices and arrays, the element type
	GoType     types.Type // The original go/types.Type, if loaded from source
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *Type) IsNamed() bool {
	return t.ID.Name != ""
}

// IsInterface returns true if the type is an interface.
func (t *Type) IsInterface() bool {
	return t.Kind == TypeKindInterface
}

// Implementable returns true if a generated type may use t as its parent:
// t must not be final, not a basic type and not an array type.
func (t *Type) Implementable() bool {
	if t == nil {
		return false
	}

	if t.Modifiers.Has(ModifierFinal) {
		return false
	}

	switch t.Kind {
	case TypeKindBasic, TypeKindArray:
		return false
	default:
		return true
	}
}

// Method looks up a method or constructor by name, or returns nil.
func (t *Type) Method(name string) *Method {
	for _, m := range t.Methods {
		if m.Name == name {
			return m
		}
	}

	return nil
}

// MethodKind distinguishes plain methods from constructor functions.
type MethodKind int

const (
	MethodKindMethod      MethodKind = iota // a method in the type's method set
	MethodKindConstructor                   // a package-level factory function producing the type
)

// String returns a human-readable kind name.
func (k MethodKind) String() string {
	switch k {
	case MethodKindMethod:
		return "method"
	case MethodKindConstructor:
		return "constructor"
	default:
		return common.UnknownStr
	}
}

// Param describes a single parameter or result of a method.
type Param struct {
	Name string
	Type *Type
}

// Method describes an executable member of a type: a method or a constructor.
type Method struct {
	Name       string
	Kind       MethodKind
	Modifiers  Modifiers
	DeclaredBy *Type // The type that declares this method (the embedding origin for promoted methods)
	Params     []Param
	Results    []Param
}

// IsMethod returns true for a plain (non-constructor) method.
func (m *Method) IsMethod() bool {
	return m.Kind == MethodKindMethod
}

// IsConstructor returns true for a constructor function.
func (m *Method) IsConstructor() bool {
	return m.Kind == MethodKindConstructor
}

// IsSynthetic returns true if the method was produced by the compiler or
// promoted through embedding rather than written by hand.
func (m *Method) IsSynthetic() bool {
	return m.Modifiers.Has(ModifierSynthetic)
}

// IsAbstract returns true if the method is declared without a body.
func (m *Method) IsAbstract() bool {
	return m.Modifiers.Has(ModifierAbstract)
}

// String returns a readable signature, e.g. "payment.Gateway.Charge(amount int) error".
func (m *Method) String() string {
	var sb strings.Builder
	if m.DeclaredBy != nil && m.DeclaredBy.IsNamed() {
		sb.WriteString(m.DeclaredBy.ID.Alias())
		sb.WriteByte('.')
	}

	sb.WriteString(m.Name)
	sb.WriteByte('(')

	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		if p.Name != "" {
			sb.WriteString(p.Name)
			sb.WriteByte(' ')
		}

		sb.WriteString(typeString(p.Type))
	}

	sb.WriteByte(')')

	switch len(m.Results) {
	case 0:
	case 1:
		sb.WriteByte(' ')
		sb.WriteString(typeString(m.Results[0].Type))
	default:
		sb.WriteString(" (")
		for i, r := range m.Results {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(typeString(r.Type))
		}

		sb.WriteByte(')')
	}

	return sb.String()
}

func typeString(t *Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + typeString(t.ElemType)
	case TypeKindSlice:
		return "[]" + typeString(t.ElemType)
	case TypeKindArray:
		return "[...]" + typeString(t.ElemType)
	default:
		if t.IsNamed() {
			return t.ID.Alias()
		}

		if t.GoType != nil {
			return t.GoType.String()
		}

		return t.Kind.String()
	}
}

// objectType is the canonical root base for generated types whose requested
// parent is an interface: an empty struct with no methods of its own.
var objectType = &Type{
	ID:        TypeID{Name: "object"},
	Kind:      TypeKindStruct,
	Modifiers: ModifiersNone,
}

// Object returns the root base type descriptor. The same instance is
// returned on every call so that identity comparison works.
func Object() *Type {
	return objectType
}
