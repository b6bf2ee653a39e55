package render

import (
	"fmt"
	"strings"

	"github.com/vschwaberow/rustalize/internal/ast"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	rungMid    = "│   "
	rungLast   = "    "
)

// RenderTree produces the branch-glyph tree layout: one header line, then
// members connected with box-drawing branches. Method parameters, return
// types and struct-variant fields nest one level deeper.
//
//	- Trait: Visualizer
//	├── Method: visualize
//	│   └── Param: &self
//	└── Method: process
//	    ├── Param: input: &str
//	    └── Return: String
func RenderTree(decl ast.Declaration) string {
	var b strings.Builder

	switch d := decl.(type) {
	case *ast.Struct:
		fmt.Fprintf(&b, "- Struct: %s%s\n", d.Name.Value, ast.FormatGenerics(d.Generics))
		for i, f := range d.Fields {
			fmt.Fprintf(&b, "%sField: %s\n", branch(i == len(d.Fields)-1), f.String())
		}
	case *ast.Trait:
		fmt.Fprintf(&b, "- Trait: %s%s\n", d.Name.Value, ast.FormatGenerics(d.Generics))
		for i, m := range d.Methods {
			writeMethodTree(&b, m, i == len(d.Methods)-1)
		}
	case *ast.Enum:
		fmt.Fprintf(&b, "- Enum: %s%s\n", d.Name.Value, ast.FormatGenerics(d.Generics))
		for i, v := range d.Variants {
			writeVariantTree(&b, v, i == len(d.Variants)-1)
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func writeMethodTree(b *strings.Builder, m ast.MethodSignature, last bool) {
	fmt.Fprintf(b, "%sMethod: %s\n", branch(last), m.Name.Value)

	childCount := len(m.Params)
	if m.Return != nil {
		childCount++
	}
	child := 0
	for _, p := range m.Params {
		child++
		fmt.Fprintf(b, "%s%sParam: %s\n", rung(last), branch(child == childCount), p.String())
	}
	if m.Return != nil {
		fmt.Fprintf(b, "%s%sReturn: %s\n", rung(last), branchLast, m.Return.String())
	}
}

func writeVariantTree(b *strings.Builder, v ast.Variant, last bool) {
	switch variant := v.(type) {
	case *ast.StructVariant:
		fmt.Fprintf(b, "%sVariant: %s\n", branch(last), variant.Name.Value)
		for i, f := range variant.Fields {
			fmt.Fprintf(b, "%s%sField: %s\n", rung(last), branch(i == len(variant.Fields)-1), f.String())
		}
	default:
		fmt.Fprintf(b, "%sVariant: %s\n", branch(last), v.String())
	}
}

func branch(last bool) string {
	if last {
		return branchLast
	}
	return branchMid
}

func rung(last bool) string {
	if last {
		return rungLast
	}
	return rungMid
}
