package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like declaration names, field names, etc.
// Example: "Pair", "left", "Visualizer"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Declaration is the AST root for a single parsed top-level declaration.
// The set is closed: Struct, Trait, and Enum are the only implementations.
type Declaration interface {
	Node
	DeclName() Ident
	GenericParams() []GenericParam
	isDeclaration()
}

// Struct represents a struct declaration
// Example: "pub struct Pair<T> { left: T, right: T }"
type Struct struct {
	Pos      Position
	EndPos   Position
	Pub      bool
	Name     Ident
	Generics []GenericParam
	Fields   []Field
}

// Trait represents a trait declaration with its required method signatures
// Example: "pub trait Visualizer { fn process(&self, input: &str) -> String; }"
type Trait struct {
	Pos      Position
	EndPos   Position
	Pub      bool
	Name     Ident
	Generics []GenericParam
	Methods  []MethodSignature
}

// Enum represents a tagged-union declaration
// Example: "enum Shape { Circle(f64), Square { side: f64 }, Point }"
type Enum struct {
	Pos      Position
	EndPos   Position
	Pub      bool
	Name     Ident
	Generics []GenericParam
	Variants []Variant
}

// Field is a named field with a type, used by structs and struct-style
// enum variants. Declaration order is preserved; names are not deduplicated.
type Field struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
}

// MethodSignature represents a required trait method: name, parameters and
// an optional return type. No body is ever parsed.
type MethodSignature struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []MethodParam
	Return TypeExpr // nil when the method returns nothing
}

// MethodParam is one named parameter of a trait method. Receivers (`self`,
// `&self`, `&mut self`) are modeled as a param named "self" typed Self.
type MethodParam struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
}

// GenericParam is a type placeholder declared on a struct/trait/enum,
// optionally constrained by named bounds. Bounds are recorded as opaque
// names, never resolved.
// Example: "T", "K: Hash + Eq"
type GenericParam struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Bounds []Ident
}

func (s *Struct) DeclName() Ident { return s.Name }
func (t *Trait) DeclName() Ident  { return t.Name }
func (e *Enum) DeclName() Ident   { return e.Name }

func (s *Struct) GenericParams() []GenericParam { return s.Generics }
func (t *Trait) GenericParams() []GenericParam  { return t.Generics }
func (e *Enum) GenericParams() []GenericParam   { return e.Generics }

func (*Struct) isDeclaration() {}
func (*Trait) isDeclaration()  {}
func (*Enum) isDeclaration()   {}
