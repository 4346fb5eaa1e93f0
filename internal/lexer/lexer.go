package lexer

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/golangsnmp/goidl/internal/types"
)

// Lexer tokenizes WebIDL source text.
type Lexer struct {
	source      []byte
	pos         int
	diagnostics []types.Diagnostic
	types.Logger
}

// New returns a Lexer that tokenizes the given source bytes.
func New(source []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		pos:    0,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Diagnostics returns a copy of all collected diagnostics.
func (l *Lexer) Diagnostics() []types.Diagnostic {
	return slices.Clone(l.diagnostics)
}

func (l *Lexer) traceToken(tok Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
}

// Tokenize consumes all source text and returns the token stream
// along with any diagnostics generated during lexing.
func (l *Lexer) Tokenize() ([]Token, []types.Diagnostic) {
	estimatedTokens := max(len(l.source)/5, 64)
	tokens := make([]Token, 0, estimatedTokens)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("diagnostics", len(l.diagnostics)))
	return tokens, l.diagnostics
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed. Once a lexical error has
// been reported every further call returns TokEOF.
func (l *Lexer) NextToken() Token {
	if len(l.diagnostics) > 0 {
		l.pos = len(l.source)
		return l.token(TokEOF, l.pos)
	}
	for {
		tok, retry := l.nextNormalToken()
		if retry {
			continue
		}
		return tok
	}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			l.advance()
		} else {
			return
		}
	}
}

func (l *Lexer) error(code string, span types.Span, message string) Token {
	l.diagnostics = append(l.diagnostics, types.Diagnostic{
		Code:    code,
		Span:    span,
		Message: message,
	})
	l.Log(slog.LevelDebug, "lexical error",
		slog.String("code", code),
		slog.Int("offset", int(span.Start)))
	return Token{Kind: TokError, Span: span}
}

func (l *Lexer) spanFrom(start int) types.Span {
	return types.Span{
		Start: types.ByteOffset(start),
		End:   types.ByteOffset(l.pos),
	}
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	tok := Token{
		Kind: kind,
		Span: l.spanFrom(start),
	}
	l.traceToken(tok)
	return tok
}

// nextNormalToken scans the next token. Returns (token, retry) where
// retry=true means the caller should loop (after skipping a comment).
func (l *Lexer) nextNormalToken() (Token, bool) {
	l.skipWhitespace()

	start := l.pos

	b, ok := l.peek()
	if !ok {
		return l.token(TokEOF, start), false
	}

	if b == '/' {
		next, _ := l.peekAt(1)
		switch next {
		case '/':
			l.skipLineComment()
			return Token{}, true
		case '*':
			if !l.skipBlockComment() {
				return l.error(types.DiagUnterminatedComment, l.spanFrom(start),
					"unterminated block comment"), false
			}
			return Token{}, true
		}
	}

	if isDigit(b) || b == '-' || b == '.' {
		if l.startsNumber() {
			return l.scanNumber(), false
		}
	}

	if b == '"' {
		return l.scanString(), false
	}

	if isAlpha(b) || b == '_' {
		return l.scanIdentifierOrKeyword(), false
	}

	return l.scanPunctuation(), false
}

// startsNumber reports whether the input at pos begins a numeric literal:
// a digit, '-' followed by a digit or '.', or '.' followed by a digit.
func (l *Lexer) startsNumber() bool {
	b, _ := l.peek()
	off := 0
	if b == '-' {
		off = 1
		b, _ = l.peekAt(1)
	}
	if isDigit(b) {
		return true
	}
	if b == '.' {
		next, ok := l.peekAt(off + 1)
		return ok && isDigit(next)
	}
	return false
}

func (l *Lexer) skipLineComment() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() bool {
	l.advance()
	l.advance()
	for {
		b, ok := l.advance()
		if !ok {
			return false
		}
		if b == '*' {
			if next, ok := l.peek(); ok && next == '/' {
				l.advance()
				return true
			}
		}
	}
}

func (l *Lexer) scanIdentifierOrKeyword() Token {
	start := l.pos
	l.advance()
	for {
		b, ok := l.peek()
		if !ok || !(isAlphanumeric(b) || b == '_') {
			break
		}
		l.advance()
	}

	text := string(l.source[start:l.pos])
	if kind, ok := LookupKeyword(text); ok {
		return l.token(kind, start)
	}
	return l.token(TokIdentifier, start)
}

// scanNumber scans an integer or float literal. Integers follow
// -?(0([0-7]+|[Xx][0-9A-Fa-f]+)?|[1-9][0-9]*); anything with a fraction
// or exponent is a float.
func (l *Lexer) scanNumber() Token {
	start := l.pos
	if b, _ := l.peek(); b == '-' {
		l.advance()
	}

	if b, _ := l.peek(); b == '0' {
		if x, ok := l.peekAt(1); ok && (x == 'x' || x == 'X') {
			l.advance()
			l.advance()
			digits := l.pos
			for {
				h, ok := l.peek()
				if !ok || !isHexDigit(h) {
					break
				}
				l.advance()
			}
			if l.pos == digits {
				return l.error(types.DiagInvalidInteger, l.spanFrom(start),
					"Invalid integer literal")
			}
			return l.token(TokInteger, start)
		}
	}

	l.scanDigits()
	isFloat := false
	if b, ok := l.peek(); ok && b == '.' {
		if next, _ := l.peekAt(1); next != '.' {
			isFloat = true
			l.advance()
			l.scanDigits()
		}
	}
	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		off := 1
		if sign, _ := l.peekAt(1); sign == '+' || sign == '-' {
			off = 2
		}
		if d, ok := l.peekAt(off); ok && isDigit(d) {
			isFloat = true
			l.pos += off
			l.scanDigits()
		}
	}
	if isFloat {
		return l.token(TokFloat, start)
	}

	text := l.source[start:l.pos]
	if text[0] == '-' {
		text = text[1:]
	}
	if len(text) > 1 && text[0] == '0' {
		for _, d := range text[1:] {
			if d > '7' {
				return l.error(types.DiagInvalidInteger, l.spanFrom(start),
					"Invalid integer literal")
			}
		}
	}
	return l.token(TokInteger, start)
}

func (l *Lexer) scanDigits() {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanString() Token {
	start := l.pos
	l.advance() // consume opening quote

	for {
		b, ok := l.peek()
		if !ok {
			return l.error(types.DiagUnterminatedString, l.spanFrom(start),
				"unterminated string literal")
		}
		l.advance()
		if b == '"' {
			return l.token(TokString, start)
		}
	}
}

func (l *Lexer) scanPunctuation() Token {
	start := l.pos
	if l.pos+3 <= len(l.source) {
		if kind, ok := LookupKeyword(string(l.source[l.pos : l.pos+3])); ok {
			l.pos += 3
			return l.token(kind, start)
		}
	}
	if l.pos+2 <= len(l.source) {
		if kind, ok := LookupKeyword(string(l.source[l.pos : l.pos+2])); ok {
			l.pos += 2
			return l.token(kind, start)
		}
	}

	b, _ := l.advance()
	if kind, ok := LookupKeyword(string(b)); ok {
		return l.token(kind, start)
	}
	if b > ' ' && b < 0x7f {
		return l.token(TokOther, start)
	}
	return l.error(types.DiagUnrecognizedInput, l.spanFrom(start),
		fmt.Sprintf("Unrecognized Input (byte 0x%02x)", b))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphanumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}
