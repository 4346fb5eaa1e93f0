package idl

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
)

// snippetWidth bounds how far past the error offset the source line
// snippet extends when looking for the end of the line.
const snippetWidth = 80

// Location identifies a point in IDL source text, or a synthetic point
// for constructs the parser creates itself.
//
// Line, column and snippet are computed the first time any of them is
// needed and never change afterwards.
type Location struct {
	file    string
	source  []byte
	offset  int
	builtin string

	once    sync.Once
	line    int
	column  int
	snippet string
}

// NewLocation returns a location at the given byte offset of source.
// An empty file name renders as "<unknown>".
func NewLocation(file string, source []byte, offset int) *Location {
	if file == "" {
		file = "<unknown>"
	}
	offset = max(0, min(offset, len(source)))
	return &Location{file: file, source: source, offset: offset}
}

// BuiltinLocation returns a synthetic location that renders as text.
func BuiltinLocation(text string) *Location {
	return &Location{builtin: text}
}

func (l *Location) resolve() {
	l.once.Do(func() {
		if l.builtin != "" {
			return
		}
		start := bytes.LastIndexByte(l.source[:l.offset], '\n') + 1
		limit := min(l.offset+snippetWidth, len(l.source))
		end := limit
		if i := bytes.IndexByte(l.source[l.offset:limit], '\n'); i >= 0 {
			end = l.offset + i
		}
		l.line = bytes.Count(l.source[:start], []byte{'\n'}) + 1
		l.column = l.offset - start
		l.snippet = string(l.source[start:end])
	})
}

// IsBuiltin reports whether the location is synthetic.
func (l *Location) IsBuiltin() bool { return l.builtin != "" }

// File returns the file name, or the builtin text for synthetic locations.
func (l *Location) File() string {
	if l.IsBuiltin() {
		return l.builtin
	}
	return l.file
}

// Offset returns the byte offset into the source.
func (l *Location) Offset() int { return l.offset }

// Line returns the 1-based line number, 0 for builtin locations.
func (l *Location) Line() int {
	l.resolve()
	return l.line
}

// Column returns the 0-based column.
func (l *Location) Column() int {
	l.resolve()
	return l.column
}

// Snippet returns the source line containing the location.
func (l *Location) Snippet() string {
	l.resolve()
	return l.snippet
}

// Position returns the "<file> line <N>:<col>" header without the snippet.
func (l *Location) Position() string {
	if l.IsBuiltin() {
		return l.builtin
	}
	return fmt.Sprintf("%s line %d:%d", l.file, l.Line(), l.Column())
}

// Equal reports whether two locations point at the same place.
func (l *Location) Equal(other *Location) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.IsBuiltin() || other.IsBuiltin() {
		return l.builtin == other.builtin
	}
	return l.file == other.file && l.offset == other.offset
}

// String renders the location with its source line and a caret under
// the column.
func (l *Location) String() string {
	if l.IsBuiltin() {
		return l.builtin
	}
	return fmt.Sprintf("%s\n%s\n%s^", l.Position(), l.Snippet(), strings.Repeat(" ", l.Column()))
}
