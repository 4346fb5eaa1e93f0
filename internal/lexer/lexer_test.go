package lexer

import (
	"sort"
	"testing"

	"github.com/golangsnmp/goidl/internal/testutil"
	"github.com/golangsnmp/goidl/internal/types"
)

func tokenKinds(source string) []TokenKind {
	lexer := New([]byte(source), nil)
	tokens, _ := lexer.Tokenize()
	kinds := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func tokenTexts(source string) []string {
	lexer := New([]byte(source), nil)
	tokens, _ := lexer.Tokenize()
	var texts []string
	for _, t := range tokens {
		if t.Kind != TokEOF {
			texts = append(texts, source[t.Span.Start:t.Span.End])
		}
	}
	return texts
}

func TestEmptyInput(t *testing.T) {
	kinds := tokenKinds("")
	testutil.SliceEqual(t, []TokenKind{TokEOF}, kinds, "empty input")
}

func TestPunctuation(t *testing.T) {
	kinds := tokenKinds("{ } ( ) [ ] ; , : = < > ?")
	expected := []TokenKind{
		TokLBrace, TokRBrace, TokLParen, TokRParen,
		TokLBracket, TokRBracket, TokSemicolon, TokComma,
		TokColon, TokEquals, TokLT, TokGT, TokQuestion, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestMultiBytePunctuation(t *testing.T) {
	kinds := tokenKinds(":: ... : ::Foo long... x")
	expected := []TokenKind{
		TokScope, TokEllipsis, TokColon, TokScope, TokIdentifier,
		TokKwLong, TokEllipsis, TokIdentifier, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestOtherPunctuation(t *testing.T) {
	kinds := tokenKinds("- * & .")
	expected := []TokenKind{TokOther, TokOther, TokOther, TokOther, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestIntegers(t *testing.T) {
	texts := tokenTexts("0 1 42 0777 0x1F 0XfF -1 -0x10 -017")
	expected := []string{"0", "1", "42", "0777", "0x1F", "0XfF", "-1", "-0x10", "-017"}
	testutil.SliceEqual(t, expected, texts, "token texts")
	for _, k := range tokenKinds("0 1 42 0777 0x1F -1")[:6] {
		testutil.Equal(t, TokInteger, k, "integer kind")
	}
}

func TestFloats(t *testing.T) {
	kinds := tokenKinds("1.5 .5 -2.0 1e10 3E-2 -.25 7.")
	expected := []TokenKind{
		TokFloat, TokFloat, TokFloat, TokFloat, TokFloat, TokFloat, TokFloat, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestInvalidIntegers(t *testing.T) {
	for _, src := range []string{"089", "0x", "-0x"} {
		t.Run(src, func(t *testing.T) {
			lexer := New([]byte(src), nil)
			tokens, diags := lexer.Tokenize()
			testutil.Equal(t, TokError, tokens[0].Kind, "first token")
			testutil.Len(t, diags, 1, "diagnostics")
			testutil.Equal(t, types.DiagInvalidInteger, diags[0].Code, "code")
		})
	}
}

func TestIdentifiers(t *testing.T) {
	texts := tokenTexts("foo Bar _interface __proto x1 a_b")
	expected := []string{"foo", "Bar", "_interface", "__proto", "x1", "a_b"}
	testutil.SliceEqual(t, expected, texts, "token texts")
	for _, k := range tokenKinds("foo Bar _interface __proto x1 a_b")[:6] {
		testutil.Equal(t, TokIdentifier, k, "identifier kind")
	}
}

func TestKeywords(t *testing.T) {
	kinds := tokenKinds("interface partial dictionary enum callback typedef implements")
	expected := []TokenKind{
		TokKwInterface, TokKwPartial, TokKwDictionary, TokKwEnum,
		TokKwCallback, TokKwTypedef, TokKwImplements, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestTypeKeywords(t *testing.T) {
	kinds := tokenKinds("unsigned long long DOMString Date ArrayBuffer any object sequence")
	expected := []TokenKind{
		TokKwUnsigned, TokKwLong, TokKwLong, TokKwDOMString, TokKwDate,
		TokKwArrayBuffer, TokKwAny, TokKwObject, TokKwSequence, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	kinds := tokenKinds("Interface domstring date")
	expected := []TokenKind{TokIdentifier, TokIdentifier, TokIdentifier, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestString(t *testing.T) {
	texts := tokenTexts(`"hello" "" "with spaces" "no\escapes"`)
	expected := []string{`"hello"`, `""`, `"with spaces"`, `"no\escapes"`}
	testutil.SliceEqual(t, expected, texts, "token texts")
}

func TestComments(t *testing.T) {
	source := `
		// line comment
		interface /* block
		comment */ Foo // trailing
		/**/;`
	kinds := tokenKinds(source)
	expected := []TokenKind{TokKwInterface, TokIdentifier, TokSemicolon, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestUnterminatedString(t *testing.T) {
	lexer := New([]byte(`enum E { "a`), nil)
	tokens, diags := lexer.Tokenize()
	testutil.Len(t, diags, 1, "diagnostics")
	testutil.Equal(t, types.DiagUnterminatedString, diags[0].Code, "code")
	testutil.Equal(t, TokError, tokens[len(tokens)-2].Kind, "error token before EOF")
	testutil.Equal(t, TokEOF, tokens[len(tokens)-1].Kind, "EOF after error")
}

func TestUnterminatedComment(t *testing.T) {
	lexer := New([]byte("interface /* never closed"), nil)
	_, diags := lexer.Tokenize()
	testutil.Len(t, diags, 1, "diagnostics")
	testutil.Equal(t, types.DiagUnterminatedComment, diags[0].Code, "code")
}

func TestUnrecognizedInput(t *testing.T) {
	source := "interface \x01 Foo"
	lexer := New([]byte(source), nil)
	tokens, diags := lexer.Tokenize()
	testutil.Len(t, diags, 1, "diagnostics")
	testutil.Equal(t, types.DiagUnrecognizedInput, diags[0].Code, "code")
	testutil.Equal(t, types.ByteOffset(10), diags[0].Span.Start, "error offset")
	// Lexing stops at the first error.
	testutil.Len(t, tokens, 3, "tokens")
}

func TestNonASCIIIsUnrecognized(t *testing.T) {
	lexer := New([]byte("é"), nil)
	_, diags := lexer.Tokenize()
	testutil.Len(t, diags, 1, "diagnostics")
}

func TestSpans(t *testing.T) {
	source := "const long X = 5;"
	lexer := New([]byte(source), nil)
	tokens, _ := lexer.Tokenize()
	testutil.Equal(t, types.NewSpan(0, 5), tokens[0].Span, "const span")
	testutil.Equal(t, types.NewSpan(11, 12), tokens[2].Span, "identifier span")
	testutil.Equal(t, types.NewSpan(15, 16), tokens[4].Span, "integer span")
	eof := tokens[len(tokens)-1]
	testutil.Equal(t, types.ByteOffset(len(source)), eof.Span.Start, "eof offset")
}

func TestKeywordTableSorted(t *testing.T) {
	sorted := sort.SliceIsSorted(keywords, func(i, j int) bool {
		return keywords[i].text < keywords[j].text
	})
	testutil.True(t, sorted, "keyword table must be sorted")
	for _, kw := range keywords {
		kind, ok := LookupKeyword(kw.text)
		testutil.True(t, ok, "lookup %q", kw.text)
		testutil.Equal(t, kw.kind, kind, "kind for %q", kw.text)
	}
	_, ok := LookupKeyword("_interface")
	testutil.False(t, ok, "escaped identifier must not be a keyword")
}

func TestTokenKindString(t *testing.T) {
	testutil.Equal(t, "INTEGER", TokInteger.String(), "integer name")
	testutil.Equal(t, "SCOPE", TokScope.String(), "scope name")
	testutil.Equal(t, "VOID", TokKwVoid.String(), "void name")
	testutil.Equal(t, "UNKNOWN", TokenKind(-1).String(), "out of range")
	testutil.True(t, TokKwAttribute.IsArgumentNameKeyword(), "attribute is an argument name keyword")
	testutil.False(t, TokKwLong.IsArgumentNameKeyword(), "long is not an argument name keyword")
	testutil.True(t, TokKwCreator.IsSpecialQualifier(), "creator is special")
}
