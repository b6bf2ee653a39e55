// Package grammar is a participle front-end for the same declaration subset
// the hand-written parser accepts. It keeps no positions and exists to
// round-trip a declaration back to canonical source text.
package grammar

type Declaration struct {
	Pub    bool        `[ @"pub" ]`
	Struct *StructDecl `( @@`
	Trait  *TraitDecl  `| @@`
	Enum   *EnumDecl   `| @@ )`
}

type StructDecl struct {
	Name     string          `"struct" @Ident`
	Generics []*GenericParam `[ "<" @@ { "," @@ } ">" ]`
	Fields   []*FieldDef     `"{" [ @@ { "," @@ } [ "," ] ] "}"`
}

type TraitDecl struct {
	Name     string          `"trait" @Ident`
	Generics []*GenericParam `[ "<" @@ { "," @@ } ">" ]`
	Methods  []*MethodDef    `"{" @@* "}"`
}

type EnumDecl struct {
	Name     string          `"enum" @Ident`
	Generics []*GenericParam `[ "<" @@ { "," @@ } ">" ]`
	Variants []*VariantDef   `"{" [ @@ { "," @@ } [ "," ] ] "}"`
}

type GenericParam struct {
	Name   string   `@Ident`
	Bounds []string `[ ":" @Ident { "+" @Ident } ]`
}

type FieldDef struct {
	Name string `@Ident ":"`
	Type *Type  `@@`
}

type MethodDef struct {
	Name   string      `"fn" @Ident "("`
	Params []*ParamDef `[ @@ { "," @@ } ] ")"`
	Return *Type       `[ "->" @@ ] ";"`
}

// ParamDef covers both receivers (self, &self, &mut self) and ordinary
// name: Type parameters. Receivers leave Type nil.
type ParamDef struct {
	Ref  bool   `[ @"&" ]`
	Mut  bool   `[ @"mut" ]`
	Name string `@Ident`
	Type *Type  `[ ":" @@ ]`
}

type VariantDef struct {
	Name   string      `@Ident`
	Tuple  []*Type     `[ "(" [ @@ { "," @@ } [ "," ] ] ")"`
	Fields []*FieldDef `| "{" [ @@ { "," @@ } [ "," ] ] "}" ]`
}

type Type struct {
	Ref   *RefType   `  @@`
	Fn    *FnType    `| @@`
	Dyn   *DynType   `| @@`
	Named *NamedType `| @@`
}

type RefType struct {
	Mut    bool  `"&" [ @"mut" ]`
	Target *Type `@@`
}

type FnType struct {
	Params []*Type `"Fn" "(" [ @@ { "," @@ } ] ")"`
	Return *Type   `[ "->" @@ ]`
}

type DynType struct {
	Target *Type `"dyn" @@`
}

type NamedType struct {
	Path     []string `@Ident { "::" @Ident }`
	Generics []*Type  `[ "<" @@ { "," @@ } ">" ]`
}
