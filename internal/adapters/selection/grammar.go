package selection

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

//nolint:govet // participle struct tags are DSL, not reflect tags
type document struct {
	Set *selectionSet `@@`
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type selectionSet struct {
	Selections []*selectionNode `"{" @@* "}"`
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type selectionNode struct {
	Fragment *fragmentNode `  @@`
	Field    *fieldNode    `| @@`
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type fragmentNode struct {
	TypeName string        `"..." "on" @Ident`
	Set      *selectionSet `@@`
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type fieldNode struct {
	Pos       lexer.Position
	First     string          `@Ident`
	Second    string          `(":" @Ident)?`
	Arguments []*argumentNode `("(" @@* ")")?`
	Set       *selectionSet   `@@?`
}

// alias returns the response alias, empty when the field is not aliased.
func (f *fieldNode) alias() string {
	if f.Second == "" {
		return ""
	}
	return f.First
}

func (f *fieldNode) name() string {
	if f.Second == "" {
		return f.First
	}
	return f.Second
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type argumentNode struct {
	Name  string     `@Ident ":"`
	Value *valueNode `@@`
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type valueNode struct {
	String *string     `  @String`
	Float  *float64    `| @Float`
	Int    *int64      `| @Int`
	Bool   *string     `| @("true" | "false")`
	Null   bool        `| @"null"`
	Enum   *string     `| @Ident`
	List   *listNode   `| @@`
	Object *objectNode `| @@`
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type listNode struct {
	Items []*valueNode `"[" @@* "]"`
}

//nolint:govet // participle struct tags are DSL, not reflect tags
type objectNode struct {
	Fields []*argumentNode `"{" @@* "}"`
}

var selectionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Float", Pattern: `-?\d+(\.\d+([eE][-+]?\d+)?|[eE][-+]?\d+)`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[_A-Za-z][_A-Za-z0-9]*`},
	{Name: "Punct", Pattern: `[{}()\[\]:]`},
})

func buildParser() (*participle.Parser[document], error) {
	return participle.Build[document](
		participle.Lexer(selectionLexer),
		participle.Elide("Comment", "Whitespace", "Comma"),
		participle.Unquote("String"),
	)
}
