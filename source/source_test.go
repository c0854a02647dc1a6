package source

import (
	"testing"

	"github.com/gigawhitlocks/i3-hacking/internal/test"
)

func TestLineCol(t *testing.T) {
	samples := []struct{ pos, line, col int }{
		{0, 1, 1},
		{3, 1, 4},
		{4, 2, 1},
		{6, 2, 3},
		{8, 3, 1},
		{13, 3, 6},
		{-1, 1, 1},
		{99, 3, 6},
	}
	for _, s := range samples {
		src := New("sample", []byte("one\ntwo\nthree"))
		line, col := src.LineCol(s.pos)
		test.Assert(t, line == s.line && col == s.col,
			"pos %d: expecting %d:%d, got %d:%d", s.pos, s.line, s.col, line, col)
	}
}

func TestStartOfLine(t *testing.T) {
	src := New("sample", []byte("a\nbb\r\nccc"))
	samples := []struct{ pos, start int }{
		{0, 0},
		{1, 0},
		{2, 2},
		{4, 2},
		{6, 6},
		{-5, 0},
		{100, 6},
	}
	for _, s := range samples {
		test.Assert(t, src.StartOfLine(s.pos) == s.start,
			"pos %d: expecting %d, got %d", s.pos, s.start, src.StartOfLine(s.pos))
	}
}

func TestLine(t *testing.T) {
	src := New("sample", []byte("a\nbb\r\nccc"))
	samples := []struct {
		start int
		line  string
	}{
		{0, "a"},
		{2, "bb"},
		{6, "ccc"},
	}
	for _, s := range samples {
		test.Expect(t, src.Line(s.start) == s.line, s.line, src.Line(s.start))
	}
}

func TestNextLineStart(t *testing.T) {
	src := New("sample", []byte("a\nbb\r\nccc"))
	test.ExpectInt(t, 2, src.NextLineStart(0))
	test.ExpectInt(t, 6, src.NextLineStart(2))
	test.ExpectInt(t, -1, src.NextLineStart(6))

	src = New("sample", []byte("x\n"))
	test.ExpectInt(t, -1, src.NextLineStart(0))
}

func TestPos(t *testing.T) {
	src := New("sample", []byte("ab\ncd"))
	p := NewPos(src, 4)
	test.Expect(t, p.SourceName() == "sample", "sample", p.SourceName())
	test.ExpectInt(t, 4, p.Pos())
	test.ExpectInt(t, 2, p.Line())
	test.ExpectInt(t, 2, p.Col())
}
