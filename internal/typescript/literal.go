package typescript

import (
	"strings"

	"github.com/tordrt/schemats/internal/naming"
)

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// StringLiteral quotes s as a single-quoted string literal.
func StringLiteral(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}

// propertyKey writes key unquoted when it is a legal identifier.
func propertyKey(key string) string {
	if naming.IsIdentifier(key) {
		return key
	}
	return StringLiteral(key)
}

// commentText makes s safe inside a block comment.
func commentText(s string) string {
	return strings.ReplaceAll(s, "*/", `*\/`)
}

// uncommentText reverses commentText.
func uncommentText(s string) string {
	return strings.ReplaceAll(s, `*\/`, "*/")
}

func stringList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = StringLiteral(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
