package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proxy-generator/descriptor"
)

func method(name string, mods descriptor.Modifiers) *descriptor.Method {
	return &descriptor.Method{
		Name:      name,
		Kind:      descriptor.MethodKindMethod,
		Modifiers: mods,
	}
}

func constructor(name string) *descriptor.Method {
	return &descriptor.Method{
		Name:      name,
		Kind:      descriptor.MethodKindConstructor,
		Modifiers: descriptor.ModifierExported,
	}
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	charge := method("Charge", descriptor.ModifierExported)

	cases := []struct {
		name    string
		matcher Matcher
		want    bool
	}{
		{"any", Any(), true},
		{"none", None(), false},
		{"and all match", And(Any(), Named("Charge")), true},
		{"and one misses", And(Any(), Named("Refund")), false},
		{"and empty matches everything", And(), true},
		{"or one matches", Or(None(), Named("Charge")), true},
		{"or none match", Or(None(), Named("Refund")), false},
		{"or empty matches nothing", Or(), false},
		{"not inverts", Not(Named("Charge")), false},
		{"not of none", Not(None()), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.matcher.Matches(charge))
		})
	}
}

func TestKindMatchers(t *testing.T) {
	t.Parallel()

	charge := method("Charge", descriptor.ModifierExported)
	newGateway := constructor("NewGateway")

	assert.True(t, IsMethod().Matches(charge))
	assert.False(t, IsMethod().Matches(newGateway))

	assert.True(t, IsConstructor().Matches(newGateway))
	assert.False(t, IsConstructor().Matches(charge))

	assert.False(t, IsMethod().Matches(nil))
	assert.False(t, IsConstructor().Matches(nil))
}

func TestIsSynthetic(t *testing.T) {
	t.Parallel()

	promoted := method("Observe", descriptor.ModifierExported|descriptor.ModifierSynthetic)

	assert.True(t, IsSynthetic().Matches(promoted))
	assert.False(t, IsSynthetic().Matches(method("Charge", descriptor.ModifierExported)))
	assert.False(t, IsSynthetic().Matches(nil))
}

func TestIsFinalizer(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFinalizer().Matches(method(FinalizerName, descriptor.ModifierExported)))

	withArgs := method(FinalizerName, descriptor.ModifierExported)
	withArgs.Params = []descriptor.Param{{Name: "force"}}
	assert.False(t, IsFinalizer().Matches(withArgs))

	assert.False(t, IsFinalizer().Matches(method("Close", descriptor.ModifierExported)))
	assert.False(t, IsFinalizer().Matches(constructor(FinalizerName)))
	assert.False(t, IsFinalizer().Matches(nil))
}

func TestDeclaredBy(t *testing.T) {
	t.Parallel()

	processor := &descriptor.Type{
		ID:   descriptor.TypeID{PkgPath: "proxy-generator/examples/payment", Name: "Processor"},
		Kind: descriptor.TypeKindInterface,
	}
	auditor := &descriptor.Type{
		ID:   descriptor.TypeID{PkgPath: "proxy-generator/examples/payment", Name: "Auditor"},
		Kind: descriptor.TypeKindInterface,
	}

	charge := method("Charge", descriptor.ModifierExported)
	charge.DeclaredBy = processor

	assert.True(t, DeclaredBy(processor).Matches(charge))
	assert.False(t, DeclaredBy(auditor).Matches(charge))
	assert.False(t, DeclaredBy(processor).Matches(method("Orphan", 0)))
	assert.False(t, DeclaredBy(nil).Matches(charge))
}

func TestNameMatchers(t *testing.T) {
	t.Parallel()

	charge := method("Charge", descriptor.ModifierExported)

	assert.True(t, Named("Charge").Matches(charge))
	assert.False(t, Named("charge").Matches(charge))
	assert.False(t, Named("Charge").Matches(nil))

	assert.True(t, NameMatches("Ch*").Matches(charge))
	assert.True(t, NameMatches("*").Matches(charge))
	assert.False(t, NameMatches("Get*").Matches(charge))

	// A malformed pattern never matches.
	assert.False(t, NameMatches("[").Matches(charge))
}

func TestModifierMatchers(t *testing.T) {
	t.Parallel()

	exported := method("Charge", descriptor.ModifierExported)
	hidden := method("reconcile", 0)
	abstract := method("Audit", descriptor.ModifierExported|descriptor.ModifierAbstract)

	assert.True(t, IsExported().Matches(exported))
	assert.False(t, IsExported().Matches(hidden))

	assert.True(t, IsAbstract().Matches(abstract))
	assert.False(t, IsAbstract().Matches(exported))
}
