package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character reader with position tracking.
type source struct {
	buf []byte // entire input

	filename string
	line     uint32 // line of ch (1-based)
	col      uint32 // column of ch (1-based)

	ch   rune // current character, -1 at EOF
	offs int  // byte offset of the next character

	errh func(line, col uint32, msg string)
}

// newSource reads src fully and positions the reader on the first character.
// The errh function receives read errors; if nil, they are ignored.
func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		col:      0,  // incremented to 1 by the first nextch
		ch:       -1, // "before first char"
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		s.buf = nil
	}

	s.nextch()
	return s
}

// nextch advances to the next character.
//
// (line, col) always describes s.ch once nextch returns; a newline moves the
// following character to column 1 of the next line.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	// Undecodable bytes come through as utf8.RuneError; the scanner rejects
	// them outside string literals and comments like any other
	// non-printable character.
	r, width := utf8.DecodeRune(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// peek returns the character after s.ch without consuming it, or -1.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.offs:])
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// error reports a lexical error at the current position.
func (s *source) error(msg string) {
	s.errorAt(s.line, s.col, msg)
}

func (s *source) errorAt(line, col uint32, msg string) {
	if s.errh != nil {
		s.errh(line, col, msg)
	}
}

// isLetter reports whether r is an ASCII letter or underscore.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is skipped between tokens.
// Newlines are handled separately for position bookkeeping.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// isPrintable reports whether r is printable ASCII.
func isPrintable(r rune) bool {
	return 0x20 <= r && r <= 0x7e
}
