package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStruct(t *testing.T) {
	decl, err := ParseSource("test.rs", `pub struct Pair<T> { left: T, right: T }`)
	assert.NoError(t, err)
	assert.NotNil(t, decl.Struct)
	assert.True(t, decl.Pub)
	assert.Equal(t, "Pair", decl.Struct.Name)
	assert.Len(t, decl.Struct.Generics, 1)
	assert.Len(t, decl.Struct.Fields, 2)
}

func TestParseTraitWithReceivers(t *testing.T) {
	decl, err := ParseSource("test.rs", `trait Visualizer {
    fn visualize(&self);
    fn process(&mut self, input: Str) -> String;
    fn finish(self);
}`)
	assert.NoError(t, err)
	assert.NotNil(t, decl.Trait)
	assert.Len(t, decl.Trait.Methods, 3)

	visualize := decl.Trait.Methods[0]
	assert.Len(t, visualize.Params, 1)
	assert.True(t, visualize.Params[0].Ref)
	assert.False(t, visualize.Params[0].Mut)
	assert.Equal(t, "self", visualize.Params[0].Name)
	assert.Nil(t, visualize.Params[0].Type)

	process := decl.Trait.Methods[1]
	assert.True(t, process.Params[0].Mut)
	assert.NotNil(t, process.Return)
	assert.Equal(t, "input", process.Params[1].Name)
	assert.NotNil(t, process.Params[1].Type)
}

func TestParseEnumVariants(t *testing.T) {
	decl, err := ParseSource("test.rs", `enum Shape {
    Circle(f64),
    Rectangle { width: f64, height: f64 },
    Point,
}`)
	assert.NoError(t, err)
	assert.NotNil(t, decl.Enum)
	assert.Len(t, decl.Enum.Variants, 3)
	assert.Len(t, decl.Enum.Variants[0].Tuple, 1)
	assert.Len(t, decl.Enum.Variants[1].Fields, 2)
	assert.Empty(t, decl.Enum.Variants[2].Tuple)
	assert.Empty(t, decl.Enum.Variants[2].Fields)
}

func TestParseQualifiedPath(t *testing.T) {
	decl, err := ParseSource("test.rs", `struct Wrap { map: std::collections::HashMap<K, V> }`)
	assert.NoError(t, err)

	typ := decl.Struct.Fields[0].Type
	assert.NotNil(t, typ.Named)
	assert.Equal(t, []string{"std", "collections", "HashMap"}, typ.Named.Path)
	assert.Len(t, typ.Named.Generics, 2)
}

func TestCanonicalFormatting(t *testing.T) {
	decl, err := ParseSource("test.rs", "struct   Pair<T>{left:T,right:T}")
	assert.NoError(t, err)

	expected := "struct Pair<T> {\n" +
		"    left: T,\n" +
		"    right: T,\n" +
		"}"
	assert.Equal(t, expected, decl.String())
}

func TestCanonicalFormattingIsStable(t *testing.T) {
	source := `pub trait Visualizer {
    fn visualize(&self);
    fn process(&mut self, input: Str) -> String;
}`

	decl, err := ParseSource("test.rs", source)
	assert.NoError(t, err)
	once := decl.String()

	again, err := ParseSource("test.rs", once)
	assert.NoError(t, err)
	assert.Equal(t, once, again.String(), "Formatting its own output should be a fixed point")
}

func TestCommentsAreElided(t *testing.T) {
	decl, err := ParseSource("test.rs", `// leading comment
struct A { /* inline */ x: T }`)
	assert.NoError(t, err)
	assert.Equal(t, "A", decl.Struct.Name)
	assert.Len(t, decl.Struct.Fields, 1)
}

func TestParseErrorHasPosition(t *testing.T) {
	_, err := ParseSource("test.rs", `struct Broken { x: }`)
	assert.Error(t, err)
}

func TestBoxDynFunctionType(t *testing.T) {
	decl, err := ParseSource("test.rs", `struct H { cb: Box<dyn Fn(Event) -> Response> }`)
	assert.NoError(t, err)

	typ := decl.Struct.Fields[0].Type
	assert.NotNil(t, typ.Named, "Box parses as a named type with generics")
	assert.Equal(t, []string{"Box"}, typ.Named.Path)

	inner := typ.Named.Generics[0]
	assert.NotNil(t, inner.Dyn)
	assert.Equal(t, "Box<dyn Fn(Event) -> Response>", typ.String())
}
