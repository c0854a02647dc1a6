// Package source defines the input buffer used by the lexer and by the
// parser's error reporting. A Source is a named, immutable byte buffer with
// position bookkeeping; it is borrowed from the caller and never copied.
package source

import (
	"bytes"
	"unicode/utf8"
)

type Source struct {
	name          string
	content       []byte
	lineStarts    []int
	prevLineIndex int
}

func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// StartOfLine returns the position of the first byte of the line containing
// pos, i.e. one byte after the previous CR or LF, or 0 for the first line.
func (s *Source) StartOfLine(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s.content) {
		pos = len(s.content)
	}
	walk := pos - 1
	for walk >= 0 && s.content[walk] != '\n' && s.content[walk] != '\r' {
		walk--
	}
	return walk + 1
}

// Line returns the line starting at start, terminated at the next CR, LF, or
// end of input (terminator excluded).
func (s *Source) Line(start int) string {
	if start < 0 {
		start = 0
	}
	end := start
	for end < len(s.content) && s.content[end] != '\n' && s.content[end] != '\r' {
		end++
	}
	return string(s.content[start:end])
}

// NextLineStart returns the start position of the line following the line
// that begins at start, or -1 if that line is the last one.
func (s *Source) NextLineStart(start int) int {
	i := start
	for i < len(s.content) && s.content[i] != '\n' {
		i++
	}
	if i >= len(s.content)-1 {
		return -1
	}
	return i + 1
}

func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	lineStart := 0
	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	index := 0
	if s.prevLineIndex >= 0 {
		lineStart = s.lineStarts[s.prevLineIndex]
		rightIndex = s.prevLineIndex
	}
	for leftIndex < rightIndex {
		index = (leftIndex + rightIndex + 1) >> 1
		lineStart = s.lineStarts[index]
		if lineStart == pos {
			return index
		}

		if lineStart < pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
			index = rightIndex
		}
	}
	s.prevLineIndex = index
	return index
}

// Pos is a resolved position within a Source.
type Pos struct {
	src            *Source
	pos, line, col int
}

func NewPos(src *Source, pos int) Pos {
	line, col := 0, 0
	if src != nil {
		line, col = src.LineCol(pos)
	}
	return Pos{src, pos, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
