package grammar

import (
	"fmt"
	"strings"
)

const indent = "    "

// String renders the declaration back to canonical source text: four-space
// indentation, one member per line, trailing commas on fields and variants.
func (d *Declaration) String() string {
	var b strings.Builder
	if d.Pub {
		b.WriteString("pub ")
	}
	switch {
	case d.Struct != nil:
		b.WriteString(d.Struct.String())
	case d.Trait != nil:
		b.WriteString(d.Trait.String())
	case d.Enum != nil:
		b.WriteString(d.Enum.String())
	}
	return b.String()
}

func (s *StructDecl) String() string {
	if len(s.Fields) == 0 {
		return fmt.Sprintf("struct %s%s {}", s.Name, formatGenerics(s.Generics))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "struct %s%s {\n", s.Name, formatGenerics(s.Generics))
	for _, f := range s.Fields {
		b.WriteString(indent + f.String() + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

func (t *TraitDecl) String() string {
	if len(t.Methods) == 0 {
		return fmt.Sprintf("trait %s%s {}", t.Name, formatGenerics(t.Generics))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "trait %s%s {\n", t.Name, formatGenerics(t.Generics))
	for _, m := range t.Methods {
		b.WriteString(indent + m.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (e *EnumDecl) String() string {
	if len(e.Variants) == 0 {
		return fmt.Sprintf("enum %s%s {}", e.Name, formatGenerics(e.Generics))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "enum %s%s {\n", e.Name, formatGenerics(e.Generics))
	for _, v := range e.Variants {
		b.WriteString(indent + v.String() + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

func formatGenerics(params []*GenericParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func (g *GenericParam) String() string {
	if len(g.Bounds) == 0 {
		return g.Name
	}
	return g.Name + ": " + strings.Join(g.Bounds, " + ")
}

func (f *FieldDef) String() string {
	return f.Name + ": " + f.Type.String()
}

func (m *MethodDef) String() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.String()
	}
	s := fmt.Sprintf("fn %s(%s)", m.Name, strings.Join(params, ", "))
	if m.Return != nil {
		s += " -> " + m.Return.String()
	}
	return s + ";"
}

func (p *ParamDef) String() string {
	var b strings.Builder
	if p.Ref {
		b.WriteString("&")
	}
	if p.Mut {
		b.WriteString("mut ")
	}
	b.WriteString(p.Name)
	if p.Type != nil {
		b.WriteString(": " + p.Type.String())
	}
	return b.String()
}

func (v *VariantDef) String() string {
	switch {
	case len(v.Tuple) > 0:
		elems := make([]string, len(v.Tuple))
		for i, t := range v.Tuple {
			elems[i] = t.String()
		}
		return fmt.Sprintf("%s(%s)", v.Name, strings.Join(elems, ", "))
	case len(v.Fields) > 0:
		fields := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = f.String()
		}
		return fmt.Sprintf("%s { %s }", v.Name, strings.Join(fields, ", "))
	default:
		return v.Name
	}
}

func (t *Type) String() string {
	switch {
	case t.Ref != nil:
		return t.Ref.String()
	case t.Fn != nil:
		return t.Fn.String()
	case t.Dyn != nil:
		return t.Dyn.String()
	case t.Named != nil:
		return t.Named.String()
	}
	return ""
}

func (r *RefType) String() string {
	if r.Mut {
		return "&mut " + r.Target.String()
	}
	return "&" + r.Target.String()
}

func (f *FnType) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	s := fmt.Sprintf("Fn(%s)", strings.Join(params, ", "))
	if f.Return != nil {
		s += " -> " + f.Return.String()
	}
	return s
}

func (d *DynType) String() string {
	return "dyn " + d.Target.String()
}

func (n *NamedType) String() string {
	s := strings.Join(n.Path, "::")
	if len(n.Generics) > 0 {
		args := make([]string, len(n.Generics))
		for i, g := range n.Generics {
			args[i] = g.String()
		}
		s += "<" + strings.Join(args, ", ") + ">"
	}
	return s
}
