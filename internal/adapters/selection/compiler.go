// Package selection compiles GraphQL selection-set text into domain selections.
package selection

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SelectionCompiler = (*Compiler)(nil)

// Compiler turns selection-set text such as `{ hero(episode: JEDI) { __typename id name } }`
// into a domain.Selection.
//
// A field named id is taken to be the ID scalar. `... on T { }` adds fields that only apply to
// objects whose __typename is T. Fields sharing a response key are merged.
type Compiler struct {
	parser *participle.Parser[document]
}

// New creates a Compiler.
func New() *Compiler {
	p, err := buildParser()
	if err != nil {
		panic(zerr.Wrap(err, "failed to build selection grammar"))
	}
	return &Compiler{parser: p}
}

// Compile parses text into a selection.
func (c *Compiler) Compile(text string) (*domain.Selection, error) {
	doc, err := c.parser.ParseString("", text)
	if err != nil {
		return nil, errors.Join(domain.ErrSelectionSyntax, err)
	}

	b := newSetBuilder()
	if err := b.add(doc.Set, ""); err != nil {
		return nil, err
	}
	return b.build(), nil
}

// setBuilder accumulates the fields of one selection set in declaration order.
type setBuilder struct {
	base        *fieldList
	typenames   []string
	conditional map[string]*fieldList
}

type fieldList struct {
	order  []string
	fields map[string]*fieldBuilder
}

type fieldBuilder struct {
	alias string
	name  string
	args  domain.Arguments
	sub   *setBuilder
}

func newSetBuilder() *setBuilder {
	return &setBuilder{
		base:        newFieldList(),
		conditional: make(map[string]*fieldList),
	}
}

func newFieldList() *fieldList {
	return &fieldList{fields: make(map[string]*fieldBuilder)}
}

// add folds set into the builder. within is the type condition the set appears under, empty
// at the top of a selection.
func (b *setBuilder) add(set *selectionSet, within string) error {
	for _, node := range set.Selections {
		if node.Fragment != nil {
			tn := node.Fragment.TypeName
			if within != "" && within != tn {
				// Nested conditions on distinct types can never both hold.
				continue
			}
			if err := b.add(node.Fragment.Set, tn); err != nil {
				return err
			}
			continue
		}

		if err := b.list(within).addField(node.Field); err != nil {
			return err
		}
	}
	return nil
}

func (b *setBuilder) list(typename string) *fieldList {
	if typename == "" {
		return b.base
	}
	l, ok := b.conditional[typename]
	if !ok {
		l = newFieldList()
		b.conditional[typename] = l
		b.typenames = append(b.typenames, typename)
	}
	return l
}

func (l *fieldList) addField(f *fieldNode) error {
	args, err := convertArguments(f.Arguments)
	if err != nil {
		return zerr.With(err, "field", f.name())
	}

	key := f.First
	existing, ok := l.fields[key]
	if !ok {
		existing = &fieldBuilder{alias: f.alias(), name: f.name(), args: args}
		l.fields[key] = existing
		l.order = append(l.order, key)
	} else if existing.name != f.name() || !domain.EqualValues(domain.Object(existing.args), domain.Object(args)) {
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrSelectionSyntax, "conflicting fields share a response key"), "key", key),
			"line", f.Pos.Line,
		)
	}

	if f.Set == nil {
		return nil
	}
	if existing.sub == nil {
		existing.sub = newSetBuilder()
	}
	return existing.sub.add(f.Set, "")
}

func (b *setBuilder) build() *domain.Selection {
	sel := domain.NewSelection(b.base.build(nil)...)
	for _, tn := range b.typenames {
		sel = sel.On(tn, b.conditional[tn].build(b.base)...)
	}
	return sel
}

// build converts the list into fields. A conditional field sharing a response key with a base
// field also selects the base field's sub-selection, because the conditional field replaces
// the base one for that type.
func (l *fieldList) build(base *fieldList) []domain.Field {
	out := make([]domain.Field, 0, len(l.order))
	for _, key := range l.order {
		fb := l.fields[key]
		if base != nil {
			if bf, ok := base.fields[key]; ok && bf.sub != nil && fb.sub != nil {
				fb = fb.withBase(bf)
			}
		}
		out = append(out, fb.field())
	}
	return out
}

func (fb *fieldBuilder) withBase(base *fieldBuilder) *fieldBuilder {
	merged := newSetBuilder()
	merged.absorb(base.sub)
	merged.absorb(fb.sub)
	return &fieldBuilder{alias: fb.alias, name: fb.name, args: fb.args, sub: merged}
}

// absorb merges other into b. Conflicts were already rejected while parsing each side.
func (b *setBuilder) absorb(other *setBuilder) {
	b.base.absorb(other.base)
	for _, tn := range other.typenames {
		b.list(tn).absorb(other.conditional[tn])
	}
}

func (l *fieldList) absorb(other *fieldList) {
	for _, key := range other.order {
		of := other.fields[key]
		existing, ok := l.fields[key]
		if !ok {
			l.fields[key] = of
			l.order = append(l.order, key)
			continue
		}
		if existing.sub != nil && of.sub != nil {
			merged := newSetBuilder()
			merged.absorb(existing.sub)
			merged.absorb(of.sub)
			l.fields[key] = &fieldBuilder{alias: existing.alias, name: existing.name, args: existing.args, sub: merged}
		}
	}
}

func (fb *fieldBuilder) field() domain.Field {
	f := domain.Field{
		Alias:     fb.alias,
		Name:      fb.name,
		Arguments: fb.args,
		ID:        fb.name == domain.IDField,
	}
	if fb.sub != nil {
		f.Selection = fb.sub.build()
	}
	return f
}

func convertArguments(nodes []*argumentNode) (domain.Arguments, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	args := make(domain.Arguments, len(nodes))
	for _, n := range nodes {
		if _, dup := args[n.Name]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrSelectionSyntax, "duplicate argument"), "argument", n.Name)
		}
		args[n.Name] = convertValue(n.Value)
	}
	return args, nil
}

func convertValue(v *valueNode) domain.Value {
	switch {
	case v.String != nil:
		return domain.String(*v.String)
	case v.Float != nil:
		return domain.Float(*v.Float)
	case v.Int != nil:
		return domain.Int(*v.Int)
	case v.Bool != nil:
		return domain.Bool(*v.Bool == "true")
	case v.Null:
		return domain.Null{}
	case v.Enum != nil:
		return domain.Enum(*v.Enum)
	case v.List != nil:
		out := make(domain.List, len(v.List.Items))
		for i, item := range v.List.Items {
			out[i] = convertValue(item)
		}
		return out
	case v.Object != nil:
		out := make(domain.Object, len(v.Object.Fields))
		for _, f := range v.Object.Fields {
			out[f.Name] = convertValue(f.Value)
		}
		return out
	default:
		return domain.Null{}
	}
}
