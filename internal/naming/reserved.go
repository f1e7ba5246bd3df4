package naming

// reservedWords contains identifiers that cannot be used as a generated
// variable name: TypeScript keywords, strict-mode reserved words, primitive
// type names, and the literals the generated prelude already declares.
var reservedWords = map[string]struct{}{
	// Keywords
	"break":      {},
	"case":       {},
	"catch":      {},
	"class":      {},
	"const":      {},
	"continue":   {},
	"debugger":   {},
	"default":    {},
	"delete":     {},
	"do":         {},
	"else":       {},
	"enum":       {},
	"export":     {},
	"extends":    {},
	"false":      {},
	"finally":    {},
	"for":        {},
	"function":   {},
	"if":         {},
	"import":     {},
	"in":         {},
	"instanceof": {},
	"new":        {},
	"null":       {},
	"return":     {},
	"super":      {},
	"switch":     {},
	"this":       {},
	"throw":      {},
	"true":       {},
	"try":        {},
	"typeof":     {},
	"var":        {},
	"void":       {},
	"while":      {},
	"with":       {},

	// Strict mode
	"as":         {},
	"implements": {},
	"interface":  {},
	"let":        {},
	"package":    {},
	"private":    {},
	"protected":  {},
	"public":     {},
	"static":     {},
	"yield":      {},
	"await":      {},
	"arguments":  {},
	"eval":       {},

	// Primitive and contextual type names
	"any":       {},
	"boolean":   {},
	"never":     {},
	"number":    {},
	"object":    {},
	"string":    {},
	"symbol":    {},
	"type":      {},
	"undefined": {},
	"unknown":   {},

	// Declared by the generated prelude and index
	"tables": {},
	"Json":   {},

	// Global types referenced by mapped column types
	"Date":   {},
	"Buffer": {},
}

// IsReserved reports whether name cannot be used verbatim as a variable name.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}
