package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vschwaberow/rustalize/internal/ast"
)

// fieldType parses a struct with a single field and returns the field's type.
func fieldType(t *testing.T, typeSrc string) ast.TypeExpr {
	t.Helper()
	decl, err := ParseDeclaration("struct W { f: " + typeSrc + " }")
	assert.NoError(t, err, "type %q should parse", typeSrc)
	if err != nil {
		t.FailNow()
	}
	return decl.(*ast.Struct).Fields[0].Type
}

func TestNamedType(t *testing.T) {
	named, ok := fieldType(t, "String").(*ast.Named)
	assert.True(t, ok)
	assert.Equal(t, "String", named.Name)
	assert.Empty(t, named.Args)
}

func TestNamedTypeWithArgs(t *testing.T) {
	named, ok := fieldType(t, "HashMap<K, V>").(*ast.Named)
	assert.True(t, ok)
	assert.Equal(t, "HashMap", named.Name)
	assert.Len(t, named.Args, 2)
}

func TestQualifiedPath(t *testing.T) {
	named, ok := fieldType(t, "std::collections::HashMap<K, V>").(*ast.Named)
	assert.True(t, ok)
	assert.Equal(t, "std::collections::HashMap", named.Name)
	assert.Len(t, named.Args, 2)
}

func TestReference(t *testing.T) {
	ref, ok := fieldType(t, "&Buffer").(*ast.Reference)
	assert.True(t, ok)
	assert.False(t, ref.Mut)

	inner := ref.Inner.(*ast.Named)
	assert.Equal(t, "Buffer", inner.Name)
}

func TestMutableReference(t *testing.T) {
	ref, ok := fieldType(t, "&mut Buffer").(*ast.Reference)
	assert.True(t, ok)
	assert.True(t, ref.Mut)
}

func TestVecAndOption(t *testing.T) {
	seq, ok := fieldType(t, "Vec<u8>").(*ast.Sequence)
	assert.True(t, ok)
	elem := seq.Element.(*ast.Named)
	assert.Equal(t, "u8", elem.Name)

	opt, ok := fieldType(t, "Option<String>").(*ast.Optional)
	assert.True(t, ok)
	inner := opt.Inner.(*ast.Named)
	assert.Equal(t, "String", inner.Name)
}

func TestBoxedDynFunction(t *testing.T) {
	boxed, ok := fieldType(t, "Box<dyn Fn(T) -> U>").(*ast.Boxed)
	assert.True(t, ok, "Box<dyn ...> should collapse into one boxed node")
	assert.True(t, boxed.Heap)
	assert.True(t, boxed.Dynamic)

	fn, ok := boxed.Inner.(*ast.FunctionType)
	assert.True(t, ok)
	assert.Len(t, fn.Params, 1)
	assert.NotNil(t, fn.Return)

	param := fn.Params[0].(*ast.Named)
	assert.Equal(t, "T", param.Name)
	ret := fn.Return.(*ast.Named)
	assert.Equal(t, "U", ret.Name)
}

func TestBoxWithoutDyn(t *testing.T) {
	boxed, ok := fieldType(t, "Box<Payload>").(*ast.Boxed)
	assert.True(t, ok)
	assert.True(t, boxed.Heap)
	assert.False(t, boxed.Dynamic)
}

func TestBareDyn(t *testing.T) {
	boxed, ok := fieldType(t, "dyn Handler").(*ast.Boxed)
	assert.True(t, ok)
	assert.False(t, boxed.Heap)
	assert.True(t, boxed.Dynamic)
}

func TestFunctionTypeWithoutReturn(t *testing.T) {
	fn, ok := fieldType(t, "Fn(A, B)").(*ast.FunctionType)
	assert.True(t, ok)
	assert.Len(t, fn.Params, 2)
	assert.Nil(t, fn.Return)
}

func TestNullaryFunctionType(t *testing.T) {
	fn, ok := fieldType(t, "Fn()").(*ast.FunctionType)
	assert.True(t, ok)
	assert.Empty(t, fn.Params)
	assert.Nil(t, fn.Return)
}

func TestDeeplyNestedTypes(t *testing.T) {
	typ := fieldType(t, "Vec<Option<Box<dyn Fn(&mut State) -> Option<Vec<u8>>>>>")

	seq, ok := typ.(*ast.Sequence)
	assert.True(t, ok)
	opt := seq.Element.(*ast.Optional)
	boxed := opt.Inner.(*ast.Boxed)
	assert.True(t, boxed.Dynamic)

	fn := boxed.Inner.(*ast.FunctionType)
	ref := fn.Params[0].(*ast.Reference)
	assert.True(t, ref.Mut)
}

func TestNestingDepthLimit(t *testing.T) {
	depth := 40
	src := "struct Deep { f: " + strings.Repeat("Vec<", depth) + "u8" + strings.Repeat(">", depth) + " }"

	_, err := ParseDeclarationMaxDepth(src, 8)
	assert.Error(t, err)
	parseErr := err.(*ParseError)
	assert.Equal(t, NestingTooDeep, parseErr.Kind)

	// A generous limit accepts the same input.
	_, err = ParseDeclarationMaxDepth(src, 64)
	assert.NoError(t, err)
}

func TestMissingGenericClose(t *testing.T) {
	_, err := ParseDeclaration("struct Bad { f: Vec<u8 }")
	assert.Error(t, err)

	parseErr := err.(*ParseError)
	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.Contains(t, parseErr.Expected, "'>'")
}
