package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/core/domain"
)

func heroSelection() *domain.Selection {
	return domain.NewSelection(
		domain.TypenameLeaf(),
		domain.IDLeaf(),
		domain.Leaf("name"),
	).On("Droid", domain.Leaf("primaryFunction")).On("Human", domain.Leaf("height"))
}

func TestSelection_FieldsFor(t *testing.T) {
	sel := heroSelection()

	assert.ElementsMatch(t, []string{"__typename", "id", "name"}, keys(sel.FieldsFor("")))
	assert.ElementsMatch(t, []string{"__typename", "id", "name", "primaryFunction"}, keys(sel.FieldsFor("Droid")))
	assert.ElementsMatch(t, []string{"__typename", "id", "name", "height"}, keys(sel.FieldsFor("Human")))
	assert.ElementsMatch(t, []string{"__typename", "id", "name"}, keys(sel.FieldsFor("Starship")))

	assert.True(t, sel.HasConditional())
	assert.Equal(t, []string{"Droid", "Human"}, sel.Typenames())
	assert.Contains(t, sel.Conditional("Droid"), "primaryFunction")
	assert.Nil(t, sel.Conditional("Starship"))
	assert.False(t, domain.NewSelection(domain.Leaf("a")).HasConditional())
}

func TestSelection_ConditionalWinsSharedKey(t *testing.T) {
	sel := domain.NewSelection(domain.Leaf("value")).
		On("Price", domain.Leaf("value").With(domain.Arguments{"currency": domain.Enum("EUR")}))

	f := sel.FieldsFor("Price")["value"]
	assert.Equal(t, domain.NewFieldKey("value", domain.Arguments{"currency": domain.Enum("EUR")}), f.Key)
	assert.Equal(t, domain.NewFieldKey("value", nil), sel.FieldsFor("Other")["value"].Key)
}

func TestSelection_AliasesAndArguments(t *testing.T) {
	sel := domain.NewSelection(
		domain.Leaf("bar").As("yes").With(domain.Arguments{"a": domain.Bool(true)}),
		domain.Leaf("bar").As("no").With(domain.Arguments{"a": domain.Bool(false)}),
	)

	fields := sel.Base()
	require.Len(t, fields, 2)
	assert.Equal(t, "bar", fields["yes"].Name)
	assert.NotEqual(t, fields["yes"].Key, fields["no"].Key)
}

func TestSelection_Equal(t *testing.T) {
	a := heroSelection()
	b := heroSelection()

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	tests := []struct {
		name  string
		other *domain.Selection
	}{
		{name: "missing field", other: domain.NewSelection(domain.TypenameLeaf(), domain.IDLeaf())},
		{name: "different alias", other: domain.NewSelection(domain.TypenameLeaf(), domain.IDLeaf(), domain.Leaf("name").As("n"))},
		{name: "different arguments", other: domain.NewSelection(
			domain.TypenameLeaf(), domain.IDLeaf(), domain.Leaf("name").With(domain.Arguments{"x": domain.Int(1)}),
		)},
		{name: "id not ID-typed", other: domain.NewSelection(domain.TypenameLeaf(), domain.Leaf("id"), domain.Leaf("name"))},
		{name: "different conditional", other: domain.NewSelection(
			domain.TypenameLeaf(), domain.IDLeaf(), domain.Leaf("name"),
		).On("Droid", domain.Leaf("primaryFunction"))},
		{name: "nil", other: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, a.Equal(tt.other))
		})
	}
}

func TestSelection_NestedFingerprint(t *testing.T) {
	outer := func(inner ...domain.Field) *domain.Selection {
		return domain.NewSelection(domain.Nested("hero", domain.NewSelection(inner...)))
	}

	assert.Equal(t, outer(domain.Leaf("name")).Fingerprint(), outer(domain.Leaf("name")).Fingerprint())
	assert.NotEqual(t, outer(domain.Leaf("name")).Fingerprint(), outer(domain.Leaf("height")).Fingerprint())
	assert.False(t, outer(domain.Leaf("name")).Equal(outer(domain.Leaf("height"))))
}

func TestSelection_OnDoesNotModifyReceiver(t *testing.T) {
	base := domain.NewSelection(domain.Leaf("name"))
	_ = base.On("Droid", domain.Leaf("primaryFunction"))

	assert.False(t, base.HasConditional())
}

func keys(fs domain.FieldSet) []string {
	out := make([]string, 0, len(fs))
	for k := range fs {
		out = append(out, k)
	}
	return out
}
