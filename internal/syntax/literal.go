package syntax

import "strings"

// Unquote returns the value of a string or char literal lexeme: the
// surrounding quotes are removed and escape sequences are replaced.
// \n, \t, \r and \0 denote control characters; a backslash before any
// other character yields that character.
func Unquote(lit string) string {
	if len(lit) >= 2 && (lit[0] == '"' || lit[0] == '\'') && lit[len(lit)-1] == lit[0] {
		lit = lit[1 : len(lit)-1]
	}
	if !strings.Contains(lit, `\`) {
		return lit
	}

	var b strings.Builder
	b.Grow(len(lit))
	for i := 0; i < len(lit); i++ {
		ch := lit[i]
		if ch != '\\' || i+1 == len(lit) {
			b.WriteByte(ch)
			continue
		}
		i++
		switch lit[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte(lit[i])
		}
	}
	return b.String()
}
