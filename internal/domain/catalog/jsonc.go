// internal/domain/catalog/jsonc.go
package catalog

// StripComments removes // line comments and /* */ block comments from a
// JSON document so operators can annotate menu.json. String literals are
// honored, so URLs like "https://..." survive intact. Comment bytes are
// replaced with spaces (newlines kept) to preserve offsets for JSON error
// positions.
func StripComments(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	const (
		stateCode = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateCode
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch state {
		case stateCode:
			switch {
			case c == '"':
				state = stateString
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				state = stateLineComment
				out[i] = ' '
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				state = stateBlockComment
				out[i] = ' '
			}
		case stateString:
			if c == '\\' {
				i++ // skip the escaped byte
			} else if c == '"' {
				state = stateCode
			}
		case stateLineComment:
			if c == '\n' {
				state = stateCode
			} else {
				out[i] = ' '
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i] = ' '
				out[i+1] = ' '
				i++
				state = stateCode
			} else if c != '\n' {
				out[i] = ' '
			}
		}
	}

	return out
}
