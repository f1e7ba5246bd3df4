package typemap

import (
	"fmt"
	"strings"
)

// ParseEnumValues interprets a MySQL COLUMN_TYPE such as enum('a','b''c')
// without a database round-trip.
func ParseEnumValues(columnType string) ([]string, error) {
	trimmed := strings.TrimSpace(columnType)
	if len(trimmed) < len("enum()") {
		return nil, fmt.Errorf("invalid enum definition")
	}
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "enum(") || !strings.HasSuffix(lower, ")") {
		return nil, fmt.Errorf("invalid enum prefix or suffix")
	}

	definition := trimmed[len("enum(") : len(trimmed)-1]
	values := []string{}
	i := 0
	for i < len(definition) {
		for i < len(definition) && (definition[i] == ' ' || definition[i] == ',') {
			i++
		}
		if i >= len(definition) {
			break
		}
		if definition[i] != '\'' {
			return nil, fmt.Errorf("expected quote at position %d", i)
		}
		i++
		var sb strings.Builder
		closed := false
		for i < len(definition) {
			ch := definition[i]
			if ch == '\\' {
				if i+1 >= len(definition) {
					return nil, fmt.Errorf("unterminated escape")
				}
				sb.WriteByte(definition[i+1])
				i += 2
				continue
			}
			if ch == '\'' {
				if i+1 < len(definition) && definition[i+1] == '\'' {
					sb.WriteByte('\'')
					i += 2
					continue
				}
				i++
				closed = true
				break
			}
			sb.WriteByte(ch)
			i++
		}
		if !closed {
			return nil, fmt.Errorf("unterminated value")
		}
		values = append(values, sb.String())
		for i < len(definition) && definition[i] == ' ' {
			i++
		}
		if i < len(definition) {
			if definition[i] != ',' {
				return nil, fmt.Errorf("expected comma at position %d", i)
			}
			i++
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no enum values parsed")
	}
	return values, nil
}
