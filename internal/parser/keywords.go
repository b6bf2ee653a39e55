package parser

var KEYWORDS = map[string]TokenType{
	"struct": STRUCT,
	"trait":  TRAIT,
	"enum":   ENUM,
	"pub":    PUB,
	"fn":     FN,
	"mut":    MUT,
	"dyn":    DYN,
	"Box":    BOX,
	"Option": OPTION,
	"Vec":    VEC,
	"Fn":     FN_TYPE,
}
