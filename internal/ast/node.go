package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	String() string
}

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }

func (s *Struct) NodePos() Position    { return s.Pos }
func (s *Struct) NodeEndPos() Position { return s.EndPos }

func (t *Trait) NodePos() Position    { return t.Pos }
func (t *Trait) NodeEndPos() Position { return t.EndPos }

func (e *Enum) NodePos() Position    { return e.Pos }
func (e *Enum) NodeEndPos() Position { return e.EndPos }

func (f *Field) NodePos() Position    { return f.Pos }
func (f *Field) NodeEndPos() Position { return f.EndPos }

func (m *MethodSignature) NodePos() Position    { return m.Pos }
func (m *MethodSignature) NodeEndPos() Position { return m.EndPos }

func (p *MethodParam) NodePos() Position    { return p.Pos }
func (p *MethodParam) NodeEndPos() Position { return p.EndPos }

func (g *GenericParam) NodePos() Position    { return g.Pos }
func (g *GenericParam) NodeEndPos() Position { return g.EndPos }

func (v *UnitVariant) NodePos() Position    { return v.Pos }
func (v *UnitVariant) NodeEndPos() Position { return v.EndPos }

func (v *TupleVariant) NodePos() Position    { return v.Pos }
func (v *TupleVariant) NodeEndPos() Position { return v.EndPos }

func (v *StructVariant) NodePos() Position    { return v.Pos }
func (v *StructVariant) NodeEndPos() Position { return v.EndPos }

func (n *Named) NodePos() Position    { return n.Pos }
func (n *Named) NodeEndPos() Position { return n.EndPos }

func (r *Reference) NodePos() Position    { return r.Pos }
func (r *Reference) NodeEndPos() Position { return r.EndPos }

func (b *Boxed) NodePos() Position    { return b.Pos }
func (b *Boxed) NodeEndPos() Position { return b.EndPos }

func (s *Sequence) NodePos() Position    { return s.Pos }
func (s *Sequence) NodeEndPos() Position { return s.EndPos }

func (o *Optional) NodePos() Position    { return o.Pos }
func (o *Optional) NodeEndPos() Position { return o.EndPos }

func (f *FunctionType) NodePos() Position    { return f.Pos }
func (f *FunctionType) NodeEndPos() Position { return f.EndPos }
