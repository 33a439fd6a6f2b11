package syntax

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestSourceBasic(t *testing.T) {
	src := newSource("test", strings.NewReader("abc"), nil)

	for i, want := range "abc" {
		be.Equal(t, src.ch, want)
		be.Equal(t, src.line, uint32(1))
		be.Equal(t, src.col, uint32(i+1))
		src.nextch()
	}
	be.Equal(t, src.ch, rune(-1))
}

func TestSourceNewline(t *testing.T) {
	src := newSource("test", strings.NewReader("a\nb\nc"), nil)

	tests := []struct {
		ch        rune
		line, col uint32
	}{
		{'a', 1, 1},
		{'\n', 1, 2},
		{'b', 2, 1},
		{'\n', 2, 2},
		{'c', 3, 1},
	}
	for _, tt := range tests {
		be.Equal(t, src.ch, tt.ch)
		be.Equal(t, src.line, tt.line)
		be.Equal(t, src.col, tt.col)
		src.nextch()
	}
	be.Equal(t, src.ch, rune(-1))
}

func TestSourcePeek(t *testing.T) {
	src := newSource("test", strings.NewReader("/*"), nil)
	be.Equal(t, src.ch, '/')
	be.Equal(t, src.peek(), '*')
	src.nextch()
	be.Equal(t, src.peek(), rune(-1))
}

func TestSourceEmpty(t *testing.T) {
	src := newSource("test", strings.NewReader(""), nil)
	be.Equal(t, src.ch, rune(-1))
	be.Equal(t, src.pos().String(), "test:1:1")
}

func TestSourcePos(t *testing.T) {
	src := newSource("f.splat", strings.NewReader("x\n  y"), nil)
	src.nextch()
	src.nextch()
	src.nextch()
	src.nextch()
	be.Equal(t, src.ch, 'y')
	be.Equal(t, src.pos(), NewPos("f.splat", 2, 3))
}

func TestCharClasses(t *testing.T) {
	be.True(t, isLetter('a'))
	be.True(t, isLetter('Z'))
	be.True(t, isLetter('_'))
	be.True(t, !isLetter('1'))
	be.True(t, isDigit('0'))
	be.True(t, !isDigit('a'))
	be.True(t, isWhitespace('\t'))
	be.True(t, isWhitespace('\r'))
	be.True(t, !isWhitespace('\n'))
	be.True(t, isPrintable('~'))
	be.True(t, !isPrintable(0x7f))
	be.True(t, !isPrintable('é'))
}
