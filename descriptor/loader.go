package descriptor

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and builds a descriptor graph.
type Loader struct {
	graph     *Graph
	typeCache map[types.Type]*Type // Cache to handle recursive types
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{
		graph:     NewGraph(),
		typeCache: make(map[types.Type]*Type),
	}
}

// Graph holds all loaded types.
type Graph struct {
	// Types maps TypeID to Type for all named types.
	Types map[TypeID]*Type
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Types:    make(map[TypeID]*Type),
		Packages: make(map[string]*PackageInfo),
	}
}

// Get returns the Type for a given TypeID, or nil if not found.
func (g *Graph) Get(id TypeID) *Type {
	return g.Types[id]
}

// Resolve looks up a type by its "pkg/path.Name" or short "pkg.Name" form.
func (g *Graph) Resolve(ref string) *Type {
	dot := strings.LastIndex(ref, ".")
	if dot < 0 {
		return nil
	}

	pkgRef, name := ref[:dot], ref[dot+1:]
	if t := g.Get(TypeID{PkgPath: pkgRef, Name: name}); t != nil {
		return t
	}

	// Fall back to matching the package alias.
	for id, t := range g.Types {
		if id.Name == name && id.Alias() == ref {
			return t
		}
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}

// Load loads the specified packages and builds the descriptor graph.
// Patterns are standard Go package patterns (e.g., "./examples/payment").
func (l *Loader) Load(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		l.processPackage(pkg)
	}

	return l.graph, nil
}

// Graph returns the current descriptor graph.
func (l *Loader) Graph() *Graph {
	return l.graph
}

// processPackage extracts named types and their executables from a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		info := l.analyzeType(typeName.Type())
		info.ID = TypeID{PkgPath: pkg.PkgPath, Name: name}
		info.Modifiers |= ModifierExported

		l.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	// Constructor functions are collected after all named types so that a
	// NewFoo declared before Foo still resolves.
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		l.collectConstructor(pkg.PkgPath, fn)
	}

	l.graph.Packages[pkg.PkgPath] = pkgInfo
}

// collectConstructor records a package-level NewXxx factory function as a
// constructor of the type its first result produces.
func (l *Loader) collectConstructor(pkgPath string, fn *types.Func) {
	if !strings.HasPrefix(fn.Name(), "New") {
		return
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Results().Len() == 0 {
		return
	}

	produced := sig.Results().At(0).Type()
	if ptr, isPtr := produced.(*types.Pointer); isPtr {
		produced = ptr.Elem()
	}

	named, ok := produced.(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != pkgPath {
		return
	}

	owner := l.graph.Get(TypeID{PkgPath: pkgPath, Name: named.Obj().Name()})
	if owner == nil {
		return
	}

	ctor := &Method{
		Name:       fn.Name(),
		Kind:       MethodKindConstructor,
		Modifiers:  ModifierExported,
		DeclaredBy: owner,
		Params:     l.analyzeTuple(sig.Params()),
		Results:    l.analyzeTuple(sig.Results()),
	}

	owner.Methods = append(owner.Methods, ctor)
}

// analyzeType recursively analyzes a go/types.Type and returns a Type.
func (l *Loader) analyzeType(t types.Type) *Type {
	if cached, ok := l.typeCache[t]; ok {
		return cached
	}

	info := &Type{
		GoType: t,
	}

	// Pre-cache to handle recursive types.
	l.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		l.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = l.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = l.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = l.analyzeType(tt.Elem())

	case *types.Interface:
		info.Kind = TypeKindInterface
		info.Modifiers |= ModifierAbstract

	case *types.Struct:
		info.Kind = TypeKindStruct

	default:
		// Maps, channels, funcs, etc. are opaque to the generator.
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type and collects its method set.
func (l *Loader) analyzeNamedType(named *types.Named, info *Type) {
	obj := named.Obj()
	if obj.Pkg() != nil {
		info.ID = TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
	}

	if obj.Exported() {
		info.Modifiers |= ModifierExported
	}

	switch ut := named.Underlying().(type) {
	case *types.Interface:
		info.Kind = TypeKindInterface
		info.Modifiers |= ModifierAbstract
		l.collectInterfaceMethods(ut, info)

	case *types.Struct:
		info.Kind = TypeKindStruct
		l.collectStructMethods(named, info)

	case *types.Basic:
		info.Kind = TypeKindBasic
		info.Underlying = l.analyzeType(ut)

	default:
		info.Kind = TypeKindExternal
	}
}

// collectInterfaceMethods records every method of an interface as abstract,
// declared by the interface itself.
func (l *Loader) collectInterfaceMethods(iface *types.Interface, info *Type) {
	for i := 0; i < iface.NumMethods(); i++ {
		fn := iface.Method(i)
		sig := fn.Type().(*types.Signature)

		mods := ModifierAbstract
		if fn.Exported() {
			mods |= ModifierExported
		}

		info.Methods = append(info.Methods, &Method{
			Name:       fn.Name(),
			Kind:       MethodKindMethod,
			Modifiers:  mods,
			DeclaredBy: info,
			Params:     l.analyzeTuple(sig.Params()),
			Results:    l.analyzeTuple(sig.Results()),
		})
	}
}

// collectStructMethods records the full method set of *T. Methods promoted
// through embedding are marked synthetic and keep their embedding origin as
// the declaring type.
func (l *Loader) collectStructMethods(named *types.Named, info *Type) {
	mset := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < mset.Len(); i++ {
		sel := mset.At(i)

		fn, ok := sel.Obj().(*types.Func)
		if !ok {
			continue
		}

		sig := fn.Type().(*types.Signature)

		var mods Modifiers
		if fn.Exported() {
			mods |= ModifierExported
		}

		declaredBy := info
		if len(sel.Index()) > 1 {
			// Promoted through embedding: compiler-generated wrapper.
			mods |= ModifierSynthetic
			declaredBy = l.receiverType(sig, info)
		}

		info.Methods = append(info.Methods, &Method{
			Name:       fn.Name(),
			Kind:       MethodKindMethod,
			Modifiers:  mods,
			DeclaredBy: declaredBy,
			Params:     l.analyzeTuple(sig.Params()),
			Results:    l.analyzeTuple(sig.Results()),
		})
	}
}

// receiverType resolves the named type declaring a method via its receiver.
func (l *Loader) receiverType(sig *types.Signature, fallback *Type) *Type {
	recv := sig.Recv()
	if recv == nil {
		return fallback
	}

	rt := recv.Type()
	if ptr, ok := rt.(*types.Pointer); ok {
		rt = ptr.Elem()
	}

	named, ok := rt.(*types.Named)
	if !ok {
		return fallback
	}

	return l.analyzeType(named)
}

// analyzeTuple converts a go/types tuple into a Param list.
func (l *Loader) analyzeTuple(tuple *types.Tuple) []Param {
	if tuple == nil || tuple.Len() == 0 {
		return nil
	}

	out := make([]Param, 0, tuple.Len())
	for i := 0; i < tuple.Len(); i++ {
		v := tuple.At(i)
		out = append(out, Param{
			Name: v.Name(),
			Type: l.analyzeType(v.Type()),
		})
	}

	return out
}

// IsIdentifier reports whether name is a valid exported or unexported Go identifier.
func IsIdentifier(name string) bool {
	return token.IsIdentifier(name)
}
