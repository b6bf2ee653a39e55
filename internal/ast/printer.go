package ast

import (
	"fmt"
	"strings"
)

func (i *Ident) String() string {
	return i.Value
}

func (s *Struct) String() string {
	var b strings.Builder
	writeDeclHeader(&b, s.Pub, "struct", s.Name, s.Generics)
	b.WriteString(" {")
	for i, field := range s.Fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(field.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (t *Trait) String() string {
	var b strings.Builder
	writeDeclHeader(&b, t.Pub, "trait", t.Name, t.Generics)
	b.WriteString(" {")
	for _, m := range t.Methods {
		b.WriteString(" ")
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (e *Enum) String() string {
	var b strings.Builder
	writeDeclHeader(&b, e.Pub, "enum", e.Name, e.Generics)
	b.WriteString(" {")
	for i, v := range e.Variants {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(v.String())
	}
	b.WriteString(" }")
	return b.String()
}

func writeDeclHeader(b *strings.Builder, pub bool, keyword string, name Ident, generics []GenericParam) {
	if pub {
		b.WriteString("pub ")
	}
	b.WriteString(keyword)
	b.WriteString(" ")
	b.WriteString(name.Value)
	b.WriteString(FormatGenerics(generics))
}

// FormatGenerics renders a generic parameter list including bounds, or ""
// when the list is empty.
// Example: "<T>", "<K: Hash + Eq, V>"
func FormatGenerics(generics []GenericParam) string {
	if len(generics) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<")
	for i, g := range generics {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.String())
	}
	b.WriteString(">")
	return b.String()
}

func (g *GenericParam) String() string {
	if len(g.Bounds) == 0 {
		return g.Name.Value
	}
	bounds := make([]string, len(g.Bounds))
	for i, bound := range g.Bounds {
		bounds[i] = bound.Value
	}
	return fmt.Sprintf("%s: %s", g.Name.Value, strings.Join(bounds, " + "))
}

func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name.Value, f.Type.String())
}

func (m *MethodSignature) String() string {
	var b strings.Builder
	b.WriteString("fn ")
	b.WriteString(m.Name.Value)
	b.WriteString("(")
	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if m.Return != nil {
		b.WriteString(" -> ")
		b.WriteString(m.Return.String())
	}
	b.WriteString(";")
	return b.String()
}

func (p *MethodParam) String() string {
	// Receivers print in source form: self, &self, &mut self.
	if p.Name.Value == "self" {
		if ref, ok := p.Type.(*Reference); ok {
			if ref.Mut {
				return "&mut self"
			}
			return "&self"
		}
		return "self"
	}
	return fmt.Sprintf("%s: %s", p.Name.Value, p.Type.String())
}

func (v *UnitVariant) String() string {
	return v.Name.Value
}

func (v *TupleVariant) String() string {
	elems := make([]string, len(v.Elems))
	for i, e := range v.Elems {
		elems[i] = e.String()
	}
	return fmt.Sprintf("%s(%s)", v.Name.Value, strings.Join(elems, ", "))
}

func (v *StructVariant) String() string {
	fields := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		fields[i] = f.String()
	}
	return fmt.Sprintf("%s { %s }", v.Name.Value, strings.Join(fields, ", "))
}

func (n *Named) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", n.Name, strings.Join(args, ", "))
}

func (r *Reference) String() string {
	if r.Mut {
		return fmt.Sprintf("&mut %s", r.Inner.String())
	}
	return fmt.Sprintf("&%s", r.Inner.String())
}

func (b *Boxed) String() string {
	inner := b.Inner.String()
	if b.Dynamic {
		inner = "dyn " + inner
	}
	if b.Heap {
		return fmt.Sprintf("Box<%s>", inner)
	}
	return inner
}

func (s *Sequence) String() string {
	return fmt.Sprintf("Vec<%s>", s.Element.String())
}

func (o *Optional) String() string {
	return fmt.Sprintf("Option<%s>", o.Inner.String())
}

func (f *FunctionType) String() string {
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
