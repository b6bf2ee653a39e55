package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vschwaberow/rustalize/internal/ast"
)

func TestParseStruct(t *testing.T) {
	source := `struct Pair<T> { left: T, right: T }`

	decl, err := ParseDeclaration(source)
	assert.NoError(t, err, "Should have no parse errors")
	assert.NotNil(t, decl, "Declaration should be parsed")

	s, ok := decl.(*ast.Struct)
	assert.True(t, ok, "Declaration should be a struct")
	assert.Equal(t, "Pair", s.Name.Value)
	assert.False(t, s.Pub)
	assert.Len(t, s.Generics, 1, "Should have 1 generic parameter")
	assert.Equal(t, "T", s.Generics[0].Name.Value)
	assert.Empty(t, s.Generics[0].Bounds)

	assert.Len(t, s.Fields, 2, "Should have 2 fields")
	assert.Equal(t, "left", s.Fields[0].Name.Value)
	assert.Equal(t, "right", s.Fields[1].Name.Value)

	left, ok := s.Fields[0].Type.(*ast.Named)
	assert.True(t, ok, "Field type should be a named type")
	assert.Equal(t, "T", left.Name)
}

func TestParseEmptyStruct(t *testing.T) {
	decl, err := ParseDeclaration("struct Empty {}")
	assert.NoError(t, err)

	s := decl.(*ast.Struct)
	assert.Equal(t, "Empty", s.Name.Value)
	assert.Empty(t, s.Fields, "Empty struct should have no fields")
	assert.Empty(t, s.Generics)
}

func TestParsePubStructWithTrailingComma(t *testing.T) {
	source := `pub struct Point {
    x: f64,
    y: f64,
}`

	decl, err := ParseDeclaration(source)
	assert.NoError(t, err)

	s := decl.(*ast.Struct)
	assert.True(t, s.Pub)
	assert.Len(t, s.Fields, 2)
}

func TestParseGenericBounds(t *testing.T) {
	source := `struct Registry<K: Hash + Eq, V> { entries: Vec<V> }`

	decl, err := ParseDeclaration(source)
	assert.NoError(t, err)

	s := decl.(*ast.Struct)
	assert.Len(t, s.Generics, 2)

	k := s.Generics[0]
	assert.Equal(t, "K", k.Name.Value)
	assert.Len(t, k.Bounds, 2, "K should have 2 bounds")
	assert.Equal(t, "Hash", k.Bounds[0].Value)
	assert.Equal(t, "Eq", k.Bounds[1].Value)

	v := s.Generics[1]
	assert.Equal(t, "V", v.Name.Value)
	assert.Empty(t, v.Bounds)
}

func TestParseEnum(t *testing.T) {
	source := `enum Shape {
    Circle(f64),
    Rectangle { width: f64, height: f64 },
    Point,
}`

	decl, err := ParseDeclaration(source)
	assert.NoError(t, err)

	e, ok := decl.(*ast.Enum)
	assert.True(t, ok, "Declaration should be an enum")
	assert.Equal(t, "Shape", e.Name.Value)
	assert.Len(t, e.Variants, 3, "Should have 3 variants")

	circle, ok := e.Variants[0].(*ast.TupleVariant)
	assert.True(t, ok, "Circle should be a tuple variant")
	assert.Equal(t, "Circle", circle.Name.Value)
	assert.Len(t, circle.Elems, 1)

	rect, ok := e.Variants[1].(*ast.StructVariant)
	assert.True(t, ok, "Rectangle should be a struct variant")
	assert.Len(t, rect.Fields, 2)
	assert.Equal(t, "width", rect.Fields[0].Name.Value)

	point, ok := e.Variants[2].(*ast.UnitVariant)
	assert.True(t, ok, "Point should be a unit variant")
	assert.Equal(t, "Point", point.Name.Value)
}

func TestVariantOrderPreserved(t *testing.T) {
	source := `enum Order { C, A, B }`

	decl, err := ParseDeclaration(source)
	assert.NoError(t, err)

	e := decl.(*ast.Enum)
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = v.VariantName().Value
	}
	assert.Equal(t, []string{"C", "A", "B"}, names, "Variants should keep source order")
}

func TestParseTrait(t *testing.T) {
	source := `pub trait Visualizer {
    fn visualize(&self, data: &Bytes);
    fn process(&mut self, input: Str) -> String;
    fn finish(self);
}`

	decl, err := ParseDeclaration(source)
	assert.NoError(t, err)

	tr, ok := decl.(*ast.Trait)
	assert.True(t, ok, "Declaration should be a trait")
	assert.True(t, tr.Pub)
	assert.Len(t, tr.Methods, 3)

	visualize := tr.Methods[0]
	assert.Equal(t, "visualize", visualize.Name.Value)
	assert.Len(t, visualize.Params, 2)
	assert.Nil(t, visualize.Return, "visualize should have no return type")

	// &self receiver becomes a reference to Self
	recv := visualize.Params[0]
	assert.Equal(t, "self", recv.Name.Value)
	ref, ok := recv.Type.(*ast.Reference)
	assert.True(t, ok, "Receiver should be a reference")
	assert.False(t, ref.Mut)
	inner, ok := ref.Inner.(*ast.Named)
	assert.True(t, ok)
	assert.Equal(t, "Self", inner.Name)

	process := tr.Methods[1]
	assert.NotNil(t, process.Return, "process should have a return type")
	mutRecv := process.Params[0].Type.(*ast.Reference)
	assert.True(t, mutRecv.Mut, "Receiver should be &mut self")

	finish := tr.Methods[2]
	byValue, ok := finish.Params[0].Type.(*ast.Named)
	assert.True(t, ok, "Bare self should be a named Self type")
	assert.Equal(t, "Self", byValue.Name)
}

func TestParseEmptyTrait(t *testing.T) {
	decl, err := ParseDeclaration("trait Marker {}")
	assert.NoError(t, err)

	tr := decl.(*ast.Trait)
	assert.Equal(t, "Marker", tr.Name.Value)
	assert.Empty(t, tr.Methods)
}

func TestMissingFieldType(t *testing.T) {
	_, err := ParseDeclaration(`struct Broken { x: }`)
	assert.Error(t, err)

	parseErr, ok := err.(*ParseError)
	assert.True(t, ok, "Error should be a ParseError")
	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.Equal(t, "a type expression", parseErr.Expected)
	assert.Equal(t, 1, parseErr.Position.Line)
	assert.Equal(t, 20, parseErr.Position.Column)
}

func TestUnknownDeclarationKind(t *testing.T) {
	_, err := ParseDeclaration(`impl Foo {}`)
	assert.Error(t, err)

	parseErr := err.(*ParseError)
	assert.Equal(t, UnknownDeclarationKind, parseErr.Kind)
	assert.Contains(t, parseErr.Error(), "impl")
}

func TestEmptyInput(t *testing.T) {
	_, err := ParseDeclaration("   \n  ")
	assert.Error(t, err)

	parseErr := err.(*ParseError)
	assert.Equal(t, UnexpectedEndOfInput, parseErr.Kind)
}

func TestTrailingTokens(t *testing.T) {
	_, err := ParseDeclaration(`struct A {} struct B {}`)
	assert.Error(t, err)

	parseErr := err.(*ParseError)
	assert.Equal(t, TrailingTokens, parseErr.Kind)
	assert.Equal(t, 13, parseErr.Position.Column, "Error should point at the second declaration")
}

func TestUnclosedBody(t *testing.T) {
	_, err := ParseDeclaration(`struct Open { x: T,`)
	assert.Error(t, err)

	parseErr := err.(*ParseError)
	assert.Equal(t, UnexpectedEndOfInput, parseErr.Kind)
}

func TestLexErrorAbortsParse(t *testing.T) {
	_, err := ParseDeclaration("struct Bad { x: $ }")
	assert.Error(t, err)

	lexErr, ok := err.(*LexError)
	assert.True(t, ok, "Error should be a LexError")
	assert.Equal(t, byte('$'), lexErr.Char)
}

func TestParseSourceCarriesFilename(t *testing.T) {
	decl, err := ParseSource("pair.rs", "struct Pair { a: T }")
	assert.NoError(t, err)
	assert.Equal(t, "pair.rs", decl.NodePos().Filename)
}
