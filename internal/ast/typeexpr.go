package ast

// TypeExpr is the parsed structural form of a single type reference. Every
// implementation owns its nested TypeExpr values exclusively: the tree is
// finite and acyclic by construction.
type TypeExpr interface {
	Node
	isTypeExpr()
}

// Named represents a plain or generic type reference
// Example: "String", "HashMap<K, V>", "std::sync::Arc<T>"
type Named struct {
	Pos    Position
	EndPos Position
	Name   string // "::"-qualified path joined into one name
	Args   []TypeExpr
}

// Reference represents a borrow
// Example: "&str", "&mut State"
type Reference struct {
	Pos    Position
	EndPos Position
	Mut    bool
	Inner  TypeExpr
}

// Boxed represents a heap or dynamic-capability wrapper. Heap is set for an
// explicit Box<...>; Dynamic for a dyn marker. "Box<dyn T>" collapses into a
// single node with both set.
type Boxed struct {
	Pos     Position
	EndPos  Position
	Heap    bool
	Dynamic bool
	Inner   TypeExpr
}

// Sequence represents the growable-sequence container
// Example: "Vec<T>"
type Sequence struct {
	Pos     Position
	EndPos  Position
	Element TypeExpr
}

// Optional represents the optional container
// Example: "Option<String>"
type Optional struct {
	Pos    Position
	EndPos Position
	Inner  TypeExpr
}

// FunctionType represents a function-type field or argument
// Example: "Fn(T) -> U", "Fn()"
type FunctionType struct {
	Pos    Position
	EndPos Position
	Params []TypeExpr
	Return TypeExpr // nil when no "->" clause is present
}

func (*Named) isTypeExpr()        {}
func (*Reference) isTypeExpr()    {}
func (*Boxed) isTypeExpr()        {}
func (*Sequence) isTypeExpr()     {}
func (*Optional) isTypeExpr()     {}
func (*FunctionType) isTypeExpr() {}
