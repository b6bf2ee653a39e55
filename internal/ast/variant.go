package ast

// Variant is one case of an enum declaration, with zero, positional, or
// named associated data.
type Variant interface {
	Node
	VariantName() Ident
	isVariant()
}

// UnitVariant is a bare variant with no payload
// Example: "Point" in "enum Shape { ..., Point }"
type UnitVariant struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// TupleVariant carries positional associated data
// Example: "Circle(f64)"
type TupleVariant struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Elems  []TypeExpr
}

// StructVariant carries named-field associated data
// Example: "Square { side: f64 }"
type StructVariant struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []Field
}

func (v *UnitVariant) VariantName() Ident   { return v.Name }
func (v *TupleVariant) VariantName() Ident  { return v.Name }
func (v *StructVariant) VariantName() Ident { return v.Name }

func (*UnitVariant) isVariant()   {}
func (*TupleVariant) isVariant()  {}
func (*StructVariant) isVariant() {}
