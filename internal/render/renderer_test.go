package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vschwaberow/rustalize/internal/ast"
	"github.com/vschwaberow/rustalize/internal/parser"
)

func parse(t *testing.T, source string) ast.Declaration {
	t.Helper()
	decl, err := parser.ParseDeclaration(source)
	assert.NoError(t, err)
	if err != nil {
		t.FailNow()
	}
	return decl
}

func TestRenderStruct(t *testing.T) {
	decl := parse(t, `struct Container<T> {
    data: Vec<T>,
    label: Option<String>,
}`)

	expected := "Struct: Container<T>\n" +
		"  field: data -> Vec<T>\n" +
		"  field: label -> Option<String>"
	assert.Equal(t, expected, Render(decl))
}

func TestRenderEmptyStruct(t *testing.T) {
	decl := parse(t, "struct Empty {}")
	assert.Equal(t, "Struct: Empty", Render(decl), "Empty struct should render as header only")
}

func TestRenderTrait(t *testing.T) {
	decl := parse(t, `pub trait Visualizer {
    fn visualize(&self, data: &Bytes);
    fn process(&self, input: Str) -> String;
}`)

	expected := "Trait: Visualizer\n" +
		"  method: visualize(&self, data: &Bytes)\n" +
		"  method: process(&self, input: Str) -> String"
	assert.Equal(t, expected, Render(decl))
}

func TestRenderEnum(t *testing.T) {
	decl := parse(t, `enum Shape {
    Circle(f64),
    Rectangle { width: f64, height: f64 },
    Point,
}`)

	expected := "Enum: Shape\n" +
		"  variant: Circle(f64)\n" +
		"  variant: Rectangle { width: f64, height: f64 }\n" +
		"  variant: Point"
	assert.Equal(t, expected, Render(decl))
}

func TestRenderGenericsWithBounds(t *testing.T) {
	decl := parse(t, `struct Registry<K: Hash + Eq, V> { entries: Vec<V> }`)
	assert.Equal(t, "Struct: Registry<K: Hash + Eq, V>\n  field: entries -> Vec<V>", Render(decl))
}

func TestRenderBoxedDyn(t *testing.T) {
	decl := parse(t, `struct Handler { callback: Box<dyn Fn(Event) -> Response> }`)
	assert.Equal(t, "Struct: Handler\n  field: callback -> Box<dyn Fn(Event) -> Response>", Render(decl))
}

func TestRenderIsDeterministic(t *testing.T) {
	decl := parse(t, `enum Order { C, A, B }`)
	first := Render(decl)
	second := Render(decl)
	assert.Equal(t, first, second)
	assert.Equal(t, "Enum: Order\n  variant: C\n  variant: A\n  variant: B", first,
		"Variants should render in source order")
}

func TestRenderIndentUnit(t *testing.T) {
	decl := parse(t, `struct One { x: T }`)
	assert.Equal(t, "Struct: One\n\tfield: x -> T", RenderIndent(decl, "\t"))
}

func TestRenderNoTrailingNewline(t *testing.T) {
	decl := parse(t, `struct One { x: T }`)
	out := Render(decl)
	assert.NotEmpty(t, out)
	assert.NotEqual(t, byte('\n'), out[len(out)-1])
}
