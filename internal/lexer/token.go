// Package lexer provides tokenization for WebIDL source text.
package lexer

import (
	"github.com/golangsnmp/goidl/internal/types"
)

// Token is a token with kind and source span.
type Token struct {
	Kind TokenKind
	Span types.Span
}

// NewToken creates a new token.
func NewToken(kind TokenKind, span types.Span) Token {
	return Token{Kind: kind, Span: span}
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// === Special ===

	// TokError is a lexical error.
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF

	// === Literals ===

	// TokIdentifier is a non-keyword identifier, possibly '_'-prefixed.
	TokIdentifier
	// TokInteger is a decimal, octal or hex integer with optional leading '-'.
	TokInteger
	// TokFloat is a floating-point literal.
	TokFloat
	// TokString is a double-quoted string literal.
	TokString

	// === Punctuation ===

	TokLBrace
	TokRBrace
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokSemicolon
	TokComma
	TokColon
	TokScope
	TokEquals
	TokLT
	TokGT
	TokQuestion
	TokEllipsis
	// TokOther is any other printable punctuation character.
	TokOther

	// === Keywords ===

	TokKwAny
	TokKwArrayBuffer
	TokKwAttribute
	TokKwBoolean
	TokKwByte
	TokKwCallback
	TokKwConst
	TokKwCreator
	TokKwDOMString
	TokKwDate
	TokKwDeleter
	TokKwDictionary
	TokKwDouble
	TokKwEnum
	TokKwException
	TokKwFalse
	TokKwFloat
	TokKwGetter
	TokKwImplements
	TokKwInherit
	TokKwInterface
	TokKwLegacycaller
	TokKwLong
	TokKwModule
	TokKwNull
	TokKwObject
	TokKwOctet
	TokKwOptional
	TokKwOr
	TokKwPartial
	TokKwReadonly
	TokKwSequence
	TokKwSetter
	TokKwShort
	TokKwStatic
	TokKwStringifier
	TokKwTrue
	TokKwTypedef
	TokKwUnsigned
	TokKwVoid
)

var tokenNames = [...]string{
	TokError:          "ERROR",
	TokEOF:            "EOF",
	TokIdentifier:     "IDENTIFIER",
	TokInteger:        "INTEGER",
	TokFloat:          "FLOATLITERAL",
	TokString:         "STRING",
	TokLBrace:         "LBRACE",
	TokRBrace:         "RBRACE",
	TokLParen:         "LPAREN",
	TokRParen:         "RPAREN",
	TokLBracket:       "LBRACKET",
	TokRBracket:       "RBRACKET",
	TokSemicolon:      "SEMICOLON",
	TokComma:          "COMMA",
	TokColon:          "COLON",
	TokScope:          "SCOPE",
	TokEquals:         "EQUALS",
	TokLT:             "LT",
	TokGT:             "GT",
	TokQuestion:       "QUESTIONMARK",
	TokEllipsis:       "ELLIPSIS",
	TokOther:          "OTHER",
	TokKwAny:          "ANY",
	TokKwArrayBuffer:  "ARRAYBUFFER",
	TokKwAttribute:    "ATTRIBUTE",
	TokKwBoolean:      "BOOLEAN",
	TokKwByte:         "BYTE",
	TokKwCallback:     "CALLBACK",
	TokKwConst:        "CONST",
	TokKwCreator:      "CREATOR",
	TokKwDOMString:    "DOMSTRING",
	TokKwDate:         "DATE",
	TokKwDeleter:      "DELETER",
	TokKwDictionary:   "DICTIONARY",
	TokKwDouble:       "DOUBLE",
	TokKwEnum:         "ENUM",
	TokKwException:    "EXCEPTION",
	TokKwFalse:        "FALSE",
	TokKwFloat:        "FLOAT",
	TokKwGetter:       "GETTER",
	TokKwImplements:   "IMPLEMENTS",
	TokKwInherit:      "INHERIT",
	TokKwInterface:    "INTERFACE",
	TokKwLegacycaller: "LEGACYCALLER",
	TokKwLong:         "LONG",
	TokKwModule:       "MODULE",
	TokKwNull:         "NULL",
	TokKwObject:       "OBJECT",
	TokKwOctet:        "OCTET",
	TokKwOptional:     "OPTIONAL",
	TokKwOr:           "OR",
	TokKwPartial:      "PARTIAL",
	TokKwReadonly:     "READONLY",
	TokKwSequence:     "SEQUENCE",
	TokKwSetter:       "SETTER",
	TokKwShort:        "SHORT",
	TokKwStatic:       "STATIC",
	TokKwStringifier:  "STRINGIFIER",
	TokKwTrue:         "TRUE",
	TokKwTypedef:      "TYPEDEF",
	TokKwUnsigned:     "UNSIGNED",
	TokKwVoid:         "VOID",
}

// String returns the grammar name of the token kind.
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenNames) && tokenNames[k] != "" {
		return tokenNames[k]
	}
	return "UNKNOWN"
}

// IsKeyword returns true if this token is a word keyword.
func (k TokenKind) IsKeyword() bool {
	return k >= TokKwAny && k <= TokKwVoid
}

// IsPunctuation returns true if this token is punctuation, including OTHER.
func (k TokenKind) IsPunctuation() bool {
	return k >= TokLBrace && k <= TokOther
}

// IsArgumentNameKeyword returns true if the keyword may be used as an
// argument name.
func (k TokenKind) IsArgumentNameKeyword() bool {
	switch k {
	case TokKwAttribute, TokKwCallback, TokKwConst, TokKwCreator,
		TokKwDeleter, TokKwDictionary, TokKwEnum, TokKwException,
		TokKwGetter, TokKwImplements, TokKwInherit, TokKwInterface,
		TokKwLegacycaller, TokKwPartial, TokKwSetter, TokKwStatic,
		TokKwStringifier, TokKwTypedef:
		return true
	default:
		return false
	}
}

// IsSpecialQualifier returns true for getter, setter, creator, deleter
// and legacycaller.
func (k TokenKind) IsSpecialQualifier() bool {
	switch k {
	case TokKwGetter, TokKwSetter, TokKwCreator, TokKwDeleter, TokKwLegacycaller:
		return true
	default:
		return false
	}
}
