package descriptor

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePkg = "proxy-generator/examples/payment"

func loadFixture(t *testing.T) *Graph {
	t.Helper()

	graph, err := NewLoader().Load(fixturePkg)
	require.NoError(t, err)

	return graph
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	graph := loadFixture(t)

	info, ok := graph.Packages[fixturePkg]
	require.True(t, ok)
	assert.Equal(t, "payment", info.Name)

	for _, name := range []string{"Processor", "Auditor", "Meter", "Gateway"} {
		assert.NotNil(t, graph.Get(TypeID{PkgPath: fixturePkg, Name: name}), name)
	}
}

func TestLoader_InterfaceMethods(t *testing.T) {
	t.Parallel()

	graph := loadFixture(t)

	processor := graph.Get(TypeID{PkgPath: fixturePkg, Name: "Processor"})
	require.NotNil(t, processor)

	assert.True(t, processor.IsInterface())
	assert.True(t, processor.Modifiers.Has(ModifierExported|ModifierAbstract))
	require.Len(t, processor.Methods, 2)

	charge := processor.Method("Charge")
	require.NotNil(t, charge)
	assert.True(t, charge.IsAbstract())
	assert.False(t, charge.IsSynthetic())
	assert.Same(t, processor, charge.DeclaredBy)
	require.Len(t, charge.Params, 1)
	assert.Equal(t, "amount", charge.Params[0].Name)
}

func TestLoader_StructMethods(t *testing.T) {
	t.Parallel()

	graph := loadFixture(t)

	gateway := graph.Get(TypeID{PkgPath: fixturePkg, Name: "Gateway"})
	require.NotNil(t, gateway)

	t.Log(spew.Sdump(gateway.ID, gateway.Kind, gateway.Modifiers))

	assert.Equal(t, TypeKindStruct, gateway.Kind)
	assert.True(t, gateway.Implementable())

	for _, name := range []string{"Charge", "Refund", "Finalize"} {
		m := gateway.Method(name)
		require.NotNil(t, m, name)
		assert.False(t, m.IsSynthetic(), name)
		assert.Same(t, gateway, m.DeclaredBy, name)
	}
}

func TestLoader_PromotedMethodsAreSynthetic(t *testing.T) {
	t.Parallel()

	graph := loadFixture(t)

	gateway := graph.Get(TypeID{PkgPath: fixturePkg, Name: "Gateway"})
	require.NotNil(t, gateway)

	observe := gateway.Method("Observe")
	require.NotNil(t, observe)

	// Observe is promoted from the embedded Meter.
	assert.True(t, observe.IsSynthetic())
	require.NotNil(t, observe.DeclaredBy)
	assert.Equal(t, "Meter", observe.DeclaredBy.ID.Name)
}

func TestLoader_Constructors(t *testing.T) {
	t.Parallel()

	graph := loadFixture(t)

	gateway := graph.Get(TypeID{PkgPath: fixturePkg, Name: "Gateway"})
	require.NotNil(t, gateway)

	ctor := gateway.Method("NewGateway")
	require.NotNil(t, ctor)

	assert.True(t, ctor.IsConstructor())
	require.Len(t, ctor.Params, 1)
	assert.Equal(t, "endpoint", ctor.Params[0].Name)
	require.Len(t, ctor.Results, 1)
	assert.Equal(t, TypeKindPointer, ctor.Results[0].Type.Kind)

	// The plain Meter has no New* factory.
	meter := graph.Get(TypeID{PkgPath: fixturePkg, Name: "Meter"})
	require.NotNil(t, meter)
	assert.Nil(t, meter.Method("NewMeter"))
}

func TestGraph_Resolve(t *testing.T) {
	t.Parallel()

	graph := loadFixture(t)

	assert.NotNil(t, graph.Resolve(fixturePkg+".Gateway"))
	assert.NotNil(t, graph.Resolve("payment.Gateway"))
	assert.Nil(t, graph.Resolve("payment.Missing"))
	assert.Nil(t, graph.Resolve("NoDotAtAll"))
}
