package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/adapters/selection"
	"go.trai.ch/graphcache/internal/core/domain"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *domain.Selection
	}{
		{
			name: "flat leaves",
			text: `{ foo bar }`,
			want: domain.NewSelection(domain.Leaf("foo"), domain.Leaf("bar")),
		},
		{
			name: "id field is the ID scalar",
			text: `{ node { __typename id } }`,
			want: domain.NewSelection(
				domain.Nested("node", domain.NewSelection(domain.TypenameLeaf(), domain.IDLeaf())),
			),
		},
		{
			name: "aliases and arguments",
			text: `{ yes: bar(a: true) no: bar(a: false), first: items(limit: 10, order: DESC, after: "x", ratio: 0.5, tags: [A, B], where: {k: null}) { id } }`,
			want: domain.NewSelection(
				domain.Leaf("bar").As("yes").With(domain.Arguments{"a": domain.Bool(true)}),
				domain.Leaf("bar").As("no").With(domain.Arguments{"a": domain.Bool(false)}),
				domain.Nested("items", domain.NewSelection(domain.IDLeaf())).As("first").With(domain.Arguments{
					"limit": domain.Int(10),
					"order": domain.Enum("DESC"),
					"after": domain.String("x"),
					"ratio": domain.Float(0.5),
					"tags":  domain.List{domain.Enum("A"), domain.Enum("B")},
					"where": domain.Object{"k": domain.Null{}},
				}),
			),
		},
		{
			name: "inline fragments",
			text: `{ hero { __typename id name ... on Droid { primaryFunction } ... on Human { height } } }`,
			want: domain.NewSelection(
				domain.Nested("hero", domain.NewSelection(
					domain.TypenameLeaf(), domain.IDLeaf(), domain.Leaf("name"),
				).On("Droid", domain.Leaf("primaryFunction")).On("Human", domain.Leaf("height"))),
			),
		},
		{
			name: "duplicate response keys merge",
			text: `{ hero { name } hero { id } }`,
			want: domain.NewSelection(
				domain.Nested("hero", domain.NewSelection(domain.Leaf("name"), domain.IDLeaf())),
			),
		},
		{
			name: "conditional field keeps base sub-selection",
			text: `{ friends { id } ... on Droid { friends { name } } }`,
			want: domain.NewSelection(
				domain.Nested("friends", domain.NewSelection(domain.IDLeaf())),
			).On("Droid", domain.Nested("friends", domain.NewSelection(domain.IDLeaf(), domain.Leaf("name")))),
		},
		{
			name: "nested condition on another type never applies",
			text: `{ ... on Droid { a ... on Human { b } ... on Droid { c } } }`,
			want: domain.NewSelection().On("Droid", domain.Leaf("a"), domain.Leaf("c")),
		},
		{
			name: "comments are ignored",
			text: "{\n  # the answer\n  answer\n}",
			want: domain.NewSelection(domain.Leaf("answer")),
		},
	}

	c := selection.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Compile(tt.text)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "compiled selection differs")
			assert.Equal(t, tt.want.Fingerprint(), got.Fingerprint())
		})
	}
}

func TestCompile_ArgumentKeys(t *testing.T) {
	c := selection.New()
	sel, err := c.Compile(`{ bar(b: 1, a: "x") }`)
	require.NoError(t, err)

	f := sel.Base()["bar"]
	assert.Equal(t, `bar(a:"x",b:1)`, f.Key.String())
	assert.False(t, f.ID)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "unbalanced", text: `{ hero { id }`},
		{name: "not a selection set", text: `hero`},
		{name: "variables unsupported", text: `{ hero(episode: $ep) { id } }`},
		{name: "conflicting response key", text: `{ a: foo a: bar }`},
		{name: "conflicting arguments", text: `{ foo(x: 1) foo(x: 2) }`},
		{name: "duplicate argument", text: `{ foo(x: 1, x: 2) }`},
	}

	c := selection.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compile(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrSelectionSyntax)
		})
	}
}
