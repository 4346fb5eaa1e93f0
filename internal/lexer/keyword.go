package lexer

import "sort"

// keywords is the sorted keyword table for binary search. Word keywords
// and punctuation share the table so multi-byte punctuation ("::", "...")
// is recognized by lookup rather than dedicated scanning rules.
// IMPORTANT: This slice MUST remain sorted by byte order of text.
var keywords = []struct {
	text string
	kind TokenKind
}{
	{"(", TokLParen},
	{")", TokRParen},
	{",", TokComma},
	{"...", TokEllipsis},
	{":", TokColon},
	{"::", TokScope},
	{";", TokSemicolon},
	{"<", TokLT},
	{"=", TokEquals},
	{">", TokGT},
	{"?", TokQuestion},
	{"ArrayBuffer", TokKwArrayBuffer},
	{"DOMString", TokKwDOMString},
	{"Date", TokKwDate},
	{"[", TokLBracket},
	{"]", TokRBracket},
	{"any", TokKwAny},
	{"attribute", TokKwAttribute},
	{"boolean", TokKwBoolean},
	{"byte", TokKwByte},
	{"callback", TokKwCallback},
	{"const", TokKwConst},
	{"creator", TokKwCreator},
	{"deleter", TokKwDeleter},
	{"dictionary", TokKwDictionary},
	{"double", TokKwDouble},
	{"enum", TokKwEnum},
	{"exception", TokKwException},
	{"false", TokKwFalse},
	{"float", TokKwFloat},
	{"getter", TokKwGetter},
	{"implements", TokKwImplements},
	{"inherit", TokKwInherit},
	{"interface", TokKwInterface},
	{"legacycaller", TokKwLegacycaller},
	{"long", TokKwLong},
	{"module", TokKwModule},
	{"null", TokKwNull},
	{"object", TokKwObject},
	{"octet", TokKwOctet},
	{"optional", TokKwOptional},
	{"or", TokKwOr},
	{"partial", TokKwPartial},
	{"readonly", TokKwReadonly},
	{"sequence", TokKwSequence},
	{"setter", TokKwSetter},
	{"short", TokKwShort},
	{"static", TokKwStatic},
	{"stringifier", TokKwStringifier},
	{"true", TokKwTrue},
	{"typedef", TokKwTypedef},
	{"unsigned", TokKwUnsigned},
	{"void", TokKwVoid},
	{"{", TokLBrace},
	{"}", TokRBrace},
}

// LookupKeyword returns the TokenKind for a keyword or punctuation text,
// or (TokError, false) if not found.
func LookupKeyword(text string) (TokenKind, bool) {
	idx := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if idx < len(keywords) && keywords[idx].text == text {
		return keywords[idx].kind, true
	}
	return TokError, false
}
