// Package render turns a parsed declaration into human-readable text. Both
// renderers are pure functions of the AST: rendering the same tree twice
// yields byte-identical output, and the tree is never mutated.
package render

import (
	"fmt"
	"strings"

	"github.com/vschwaberow/rustalize/internal/ast"
)

const defaultIndent = "  "

// Render produces the indented hierarchy form: a header line naming the
// declaration kind, name and generics, then one line per member. Nested type
// structure stays inline on the member's line, so depth is bounded by
// declaration -> member regardless of type nesting.
//
//	Struct: Container<T>
//	  field: data -> Vec<T>
//	  field: label -> Option<String>
func Render(decl ast.Declaration) string {
	return RenderIndent(decl, defaultIndent)
}

// RenderIndent is Render with a caller-chosen indent unit.
func RenderIndent(decl ast.Declaration, indent string) string {
	lines := []string{headerLine(decl)}

	switch d := decl.(type) {
	case *ast.Struct:
		for _, f := range d.Fields {
			lines = append(lines, fmt.Sprintf("%sfield: %s -> %s", indent, f.Name.Value, f.Type.String()))
		}
	case *ast.Trait:
		for _, m := range d.Methods {
			lines = append(lines, indent+"method: "+methodLine(m))
		}
	case *ast.Enum:
		for _, v := range d.Variants {
			lines = append(lines, indent+"variant: "+v.String())
		}
	}

	return strings.Join(lines, "\n")
}

func headerLine(decl ast.Declaration) string {
	var kind string
	switch decl.(type) {
	case *ast.Struct:
		kind = "Struct"
	case *ast.Trait:
		kind = "Trait"
	case *ast.Enum:
		kind = "Enum"
	}
	return fmt.Sprintf("%s: %s%s", kind, decl.DeclName().Value, ast.FormatGenerics(decl.GenericParams()))
}

func methodLine(m ast.MethodSignature) string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.String()
	}
	s := fmt.Sprintf("%s(%s)", m.Name.Value, strings.Join(params, ", "))
	if m.Return != nil {
		s += " -> " + m.Return.String()
	}
	return s
}
