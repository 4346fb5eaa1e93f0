// Package parser turns WebIDL source text into idl productions.
//
// The parser is a recursive-descent reader over a three-token lookahead
// buffer. It builds idl objects as soon as a construct is complete, but
// leaves every type reference unresolved: names are looked up only when
// the whole input has been declared and finished. The first error aborts
// the file; there is no recovery.
package parser

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/golangsnmp/goidl/idl"
	"github.com/golangsnmp/goidl/internal/lexer"
	"github.com/golangsnmp/goidl/internal/types"
)

// eofMessage is reported when input ends inside a construct.
const eofMessage = "Syntax Error at end of file. Possibly due to missing semicolon(;), braces(}) or both"

// Parser converts a token stream into idl productions.
type Parser struct {
	source   []byte
	filename string
	lex      *lexer.Lexer
	buf      [3]lexer.Token // lookahead buffer: buf[0]=current, buf[1]=peek(1), buf[2]=peek(2)
	eofToken lexer.Token
	warnings []*idl.Error
	types.Logger
}

// New returns a Parser that lexes the source and prepares for parsing.
// The filename is used only in locations. Pass nil for logger to disable
// logging.
func New(source []byte, filename string, logger *slog.Logger) *Parser {
	lex := lexer.New(source, types.Component(logger, "lexer"))
	eofSpan := types.NewSpan(types.ByteOffset(len(source)), types.ByteOffset(len(source)))
	p := &Parser{
		source:   source,
		filename: filename,
		lex:      lex,
		eofToken: lexer.NewToken(lexer.TokEOF, eofSpan),
		Logger:   types.Logger{L: types.Component(logger, "parser")},
	}
	p.buf[0] = lex.NextToken()
	p.buf[1] = lex.NextToken()
	p.buf[2] = lex.NextToken()
	p.Log(slog.LevelDebug, "parser initialized", slog.String("file", filename))
	return p
}

// Parse reads every production in the source. It returns the
// productions in source order, the warnings collected along the way,
// and the error that aborted the file, if any. Productions are not
// declared in any scope.
func (p *Parser) Parse() ([]idl.Production, []*idl.Error, error) {
	var productions []idl.Production
	for !p.isEOF() {
		prod, err := p.parseDefinition()
		if err != nil {
			p.Log(slog.LevelDebug, "parse aborted",
				slog.String("file", p.filename),
				slog.String("error", err.Error()))
			return nil, p.warnings, err
		}
		if prod != nil {
			productions = append(productions, prod)
		}
	}
	p.Log(slog.LevelDebug, "parsing complete",
		slog.String("file", p.filename),
		slog.Int("productions", len(productions)),
		slog.Int("warnings", len(p.warnings)))
	return productions, p.warnings, nil
}

func (p *Parser) isEOF() bool {
	return p.peek().Kind == lexer.TokEOF
}

func (p *Parser) peek() lexer.Token {
	return p.buf[0]
}

func (p *Parser) peekNth(n int) lexer.Token {
	if n < len(p.buf) {
		return p.buf[n]
	}
	return p.eofToken
}

func (p *Parser) advance() lexer.Token {
	tok := p.buf[0]
	p.buf[0] = p.buf[1]
	p.buf[1] = p.buf[2]
	p.buf[2] = p.lex.NextToken()
	return tok
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.unexpected()
}

func (p *Parser) text(span types.Span) string {
	return string(p.source[span.Start:span.End])
}

func (p *Parser) location(tok lexer.Token) *idl.Location {
	return idl.NewLocation(p.filename, p.source, int(tok.Span.Start))
}

func (p *Parser) warn(code, message string, loc *idl.Location) {
	p.warnings = append(p.warnings, idl.NewWarning(code, message, loc))
	p.Log(slog.LevelDebug, "warning", slog.String("code", code))
}

// unexpected builds the error for the current token, which no rule
// accepts. Lexical errors, floats and scoped names get their own kinds.
func (p *Parser) unexpected() error {
	tok := p.peek()
	loc := p.location(tok)
	switch tok.Kind {
	case lexer.TokError:
		diags := p.lex.Diagnostics()
		if len(diags) == 0 {
			return idl.NewError(idl.KindLexical, types.DiagUnrecognizedInput, "Unrecognized Input", loc)
		}
		d := diags[0]
		return idl.NewError(idl.KindLexical, d.Code, d.Message,
			idl.NewLocation(p.filename, p.source, int(d.Span.Start)))
	case lexer.TokEOF:
		return idl.NewError(idl.KindSyntax, types.DiagSyntaxErrorEOF, eofMessage, loc)
	case lexer.TokFloat:
		return idl.NewError(idl.KindUnsupported, types.DiagFloatUnsupported,
			"Floating point literals are not supported", loc)
	case lexer.TokScope:
		return idl.NewError(idl.KindUnsupported, types.DiagScopedNameUnsupported,
			"Scoped names are not supported", loc)
	}
	return idl.NewError(idl.KindSyntax, types.DiagSyntaxError,
		fmt.Sprintf("invalid syntax at '%s'", p.text(tok.Span)), loc)
}

// parseIdentifier reads a plain identifier and applies the reserved-word
// policy.
func (p *Parser) parseIdentifier() (*idl.UnresolvedIdentifier, error) {
	tok, err := p.expect(lexer.TokIdentifier)
	if err != nil {
		return nil, err
	}
	return idl.NewUnresolvedIdentifier(p.location(tok), p.text(tok.Span), idl.IdentifierOptions{})
}

// parseScopedName reads a name that refers to a definition. Only
// relative single-component names are supported.
func (p *Parser) parseScopedName() (*idl.UnresolvedIdentifier, error) {
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.TokScope) {
		return nil, p.unexpected()
	}
	return uid, nil
}

// parseDefinition parses: ExtendedAttributeList Definition
func (p *Parser) parseDefinition() (idl.Production, error) {
	attrs, err := p.parseExtendedAttributeList()
	if err != nil {
		return nil, err
	}

	start := p.peek()
	var prod idl.Production
	switch start.Kind {
	case lexer.TokKwCallback:
		prod, err = p.parseCallbackOrInterface()
	case lexer.TokKwInterface:
		prod, err = p.parseInterface(false)
	case lexer.TokKwPartial:
		err = p.parsePartialInterface()
	case lexer.TokKwDictionary:
		prod, err = p.parseDictionary()
	case lexer.TokKwException:
		err = p.parseException()
	case lexer.TokKwEnum:
		prod, err = p.parseEnum()
	case lexer.TokKwTypedef:
		prod, err = p.parseTypedef()
	case lexer.TokIdentifier, lexer.TokScope:
		prod, err = p.parseImplementsStatement()
	default:
		return nil, p.unexpected()
	}
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, nil
	}
	if err := prod.AddExtendedAttributes(attrs); err != nil {
		return nil, err
	}
	if p.TraceEnabled() {
		p.Trace("parsed production",
			slog.String("production", productionLabel(prod)),
			slog.Int("offset", int(start.Span.Start)))
	}
	return prod, nil
}

func productionLabel(prod idl.Production) string {
	switch prod := prod.(type) {
	case idl.Definition:
		return prod.Name()
	case *idl.ImplementsStatement:
		return prod.Implementor() + " implements " + prod.Implementee()
	default:
		return fmt.Sprintf("%T", prod)
	}
}

// parseCallbackOrInterface parses: callback (interface ... | Name = ReturnType (args);)
func (p *Parser) parseCallbackOrInterface() (idl.Production, error) {
	p.advance()
	if p.check(lexer.TokKwInterface) {
		return p.parseInterface(true)
	}

	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokEquals); err != nil {
		return nil, err
	}
	ret, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	args, err := p.parseParenArguments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	cb, err := idl.NewCallbackType(uid, ret, args)
	if err != nil {
		return nil, err
	}
	return cb, nil
}

// parseInterface parses an interface body or a forward declaration:
//
//	interface Name [: Parent] { members };
//	interface Name;
func (p *Parser) parseInterface(callback bool) (idl.Production, error) {
	p.advance()
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if !callback && p.check(lexer.TokSemicolon) {
		p.advance()
		return idl.NewExternalInterface(uid), nil
	}

	parent, err := p.parseInheritance()
	if err != nil {
		return nil, err
	}
	members, err := p.parseInterfaceBody()
	if err != nil {
		return nil, err
	}
	iface, err := idl.NewInterface(uid, parent, members, callback)
	if err != nil {
		return nil, err
	}
	return iface, nil
}

// parsePartialInterface parses a partial interface and discards it.
func (p *Parser) parsePartialInterface() error {
	kw := p.advance()
	if _, err := p.expect(lexer.TokKwInterface); err != nil {
		return err
	}
	uid, err := p.parseIdentifier()
	if err != nil {
		return err
	}
	if _, err := p.parseInterfaceBody(); err != nil {
		return err
	}
	p.warn(types.DiagPartialInterfaceIgnored,
		fmt.Sprintf("Partial interface %s is not supported and was ignored", uid.Name()),
		p.location(kw))
	return nil
}

// parseInheritance parses an optional ": Parent".
func (p *Parser) parseInheritance() (*idl.IdentifierPlaceholder, error) {
	if !p.check(lexer.TokColon) {
		return nil, nil
	}
	p.advance()
	uid, err := p.parseScopedName()
	if err != nil {
		return nil, err
	}
	return idl.NewIdentifierPlaceholder(uid), nil
}

// parseInterfaceBody parses: { members } ;
func (p *Parser) parseInterfaceBody() ([]idl.Member, error) {
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	var members []idl.Member
	for !p.check(lexer.TokRBrace) {
		attrs, err := p.parseExtendedAttributeList()
		if err != nil {
			return nil, err
		}
		member, err := p.parseInterfaceMember()
		if err != nil {
			return nil, err
		}
		// Attributes go on before the interface declares its members,
		// since overload merging compares them.
		if err := member.AddExtendedAttributes(attrs); err != nil {
			return nil, err
		}
		if p.TraceEnabled() {
			p.Trace("parsed member",
				slog.String("member", member.Name()),
				slog.String("tag", member.Tag().String()))
		}
		members = append(members, member)
	}
	p.advance()
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *Parser) parseInterfaceMember() (idl.Member, error) {
	switch p.peek().Kind {
	case lexer.TokKwConst:
		return p.parseConst()
	case lexer.TokKwStringifier:
		return p.parseStringifierMember()
	case lexer.TokKwStatic:
		return p.parseStaticMember()
	case lexer.TokKwInherit, lexer.TokKwReadonly, lexer.TokKwAttribute:
		return p.parseAttribute(idl.AttributeOptions{})
	default:
		return p.parseOperation()
	}
}

// parseConst parses: const ConstType Name = ConstValue ;
func (p *Parser) parseConst() (idl.Member, error) {
	p.advance()
	typ, err := p.parseConstType()
	if err != nil {
		return nil, err
	}
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokEquals); err != nil {
		return nil, err
	}
	value, err := p.parseConstValue()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	c, err := idl.NewConst(uid, typ, value)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// parseConstType parses a primitive, string or named type with an
// optional "?".
func (p *Parser) parseConstType() (idl.Type, error) {
	var typ idl.Type
	if p.check(lexer.TokIdentifier) || p.check(lexer.TokScope) {
		uid, err := p.parseScopedName()
		if err != nil {
			return nil, err
		}
		typ = idl.NewUnresolvedType(uid.Location(), uid.Name())
	} else {
		var err error
		typ, err = p.parsePrimitiveOrStringType()
		if err != nil {
			return nil, err
		}
	}
	if p.check(lexer.TokQuestion) {
		q := p.advance()
		typ = idl.NewNullableType(p.location(q), typ)
	}
	return typ, nil
}

// parseStringifierMember parses what follows "stringifier": a bare
// semicolon, an attribute, or an operation.
func (p *Parser) parseStringifierMember() (idl.Member, error) {
	kw := p.advance()
	loc := p.location(kw)
	switch p.peek().Kind {
	case lexer.TokSemicolon:
		p.advance()
		m, err := idl.NewStringifier(loc)
		if err != nil {
			return nil, err
		}
		return m, nil
	case lexer.TokKwInherit, lexer.TokKwReadonly, lexer.TokKwAttribute:
		return p.parseAttribute(idl.AttributeOptions{Stringifier: true})
	default:
		return p.parseOperationRest(loc, []idl.MethodSpecial{idl.SpecialStringifier}, loc)
	}
}

// parseStaticMember parses what follows "static": a (readonly)
// attribute or an operation.
func (p *Parser) parseStaticMember() (idl.Member, error) {
	kw := p.advance()
	loc := p.location(kw)
	switch p.peek().Kind {
	case lexer.TokKwReadonly, lexer.TokKwAttribute:
		return p.parseAttribute(idl.AttributeOptions{Static: true})
	default:
		return p.parseOperationRest(loc, []idl.MethodSpecial{idl.SpecialStatic}, loc)
	}
}

// parseAttribute parses: [inherit] [readonly] attribute Type Name ;
func (p *Parser) parseAttribute(opts idl.AttributeOptions) (idl.Member, error) {
	if !opts.Static && p.check(lexer.TokKwInherit) {
		p.advance()
		opts.Inherit = true
	}
	if p.check(lexer.TokKwReadonly) {
		p.advance()
		opts.Readonly = true
	}
	if _, err := p.expect(lexer.TokKwAttribute); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	attr, err := idl.NewAttribute(uid, typ, opts)
	if err != nil {
		return nil, err
	}
	return attr, nil
}

// parseOperation parses: Specials ReturnType [Name] ( args ) ;
func (p *Parser) parseOperation() (idl.Member, error) {
	start := p.peek()
	var qualifiers []idl.MethodSpecial
	for p.peek().Kind.IsSpecialQualifier() {
		qualifiers = append(qualifiers, specialFor(p.advance().Kind))
	}
	loc := p.location(start)
	return p.parseOperationRest(loc, qualifiers, loc)
}

func specialFor(kind lexer.TokenKind) idl.MethodSpecial {
	switch kind {
	case lexer.TokKwGetter:
		return idl.SpecialGetter
	case lexer.TokKwSetter:
		return idl.SpecialSetter
	case lexer.TokKwCreator:
		return idl.SpecialCreator
	case lexer.TokKwDeleter:
		return idl.SpecialDeleter
	default:
		return idl.SpecialLegacyCaller
	}
}

// parseOperationRest parses: ReturnType [Name] ( args ) ;
func (p *Parser) parseOperationRest(loc *idl.Location, qualifiers []idl.MethodSpecial, qualLoc *idl.Location) (idl.Member, error) {
	ret, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	var uid *idl.UnresolvedIdentifier
	if p.check(lexer.TokIdentifier) {
		uid, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	args, err := p.parseParenArguments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	m, err := idl.NewOperation(loc, qualifiers, qualLoc, ret, uid, args)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// parseParenArguments parses: ( ArgumentList )
func (p *Parser) parseParenArguments() ([]*idl.Argument, error) {
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	return args, nil
}

// parseArgumentList parses a possibly empty comma-separated argument
// list, stopping before the closing parenthesis.
func (p *Parser) parseArgumentList() ([]*idl.Argument, error) {
	if p.check(lexer.TokRParen) {
		return nil, nil
	}
	var args []*idl.Argument
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.check(lexer.TokComma) {
			return args, nil
		}
		p.advance()
	}
}

// parseArgument parses: ExtendedAttributeList [optional] Type [...] Name [= DefaultValue]
func (p *Parser) parseArgument() (*idl.Argument, error) {
	attrs, err := p.parseExtendedAttributeList()
	if err != nil {
		return nil, err
	}
	start := p.peek()
	optional := false
	if p.check(lexer.TokKwOptional) {
		p.advance()
		optional = true
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	variadic := false
	if p.check(lexer.TokEllipsis) {
		p.advance()
		variadic = true
	}

	nameTok := p.peek()
	if nameTok.Kind != lexer.TokIdentifier && !nameTok.Kind.IsArgumentNameKeyword() {
		return nil, p.unexpected()
	}
	p.advance()
	uid, err := idl.NewUnresolvedIdentifier(p.location(nameTok), p.text(nameTok.Span), idl.IdentifierOptions{})
	if err != nil {
		return nil, err
	}

	var def *idl.Value
	if p.check(lexer.TokEquals) {
		p.advance()
		def, err = p.parseDefaultValue()
		if err != nil {
			return nil, err
		}
	}

	if !optional && def != nil {
		return nil, idl.NewError(idl.KindSemantic, types.DiagMandatoryDefault,
			"Mandatory arguments can't have a default value.", p.location(start))
	}
	if variadic && optional {
		return nil, idl.NewError(idl.KindSemantic, types.DiagArgumentOrder,
			"Variadic arguments should not be marked optional.", p.location(start))
	}

	arg := idl.NewArgument(uid, typ, idl.ArgumentOptions{
		Optional: optional,
		Variadic: variadic,
		Default:  def,
	})
	arg.AddExtendedAttributes(attrs)
	return arg, nil
}

// parseDictionary parses: dictionary Name [: Parent] { members } ;
func (p *Parser) parseDictionary() (idl.Production, error) {
	p.advance()
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	parent, err := p.parseInheritance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}

	var members []*idl.Argument
	for !p.check(lexer.TokRBrace) {
		member, err := p.parseDictionaryMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	p.advance()
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}

	dict, err := idl.NewDictionary(uid, parent, members)
	if err != nil {
		return nil, err
	}
	return dict, nil
}

// parseDictionaryMember parses: Type Name [= DefaultValue] ;
func (p *Parser) parseDictionaryMember() (*idl.Argument, error) {
	if p.check(lexer.TokLBracket) {
		return nil, idl.NewError(idl.KindUnsupported, types.DiagExtendedAttribute,
			"Extended attributes on dictionary members are not supported", p.location(p.peek()))
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var def *idl.Value
	if p.check(lexer.TokEquals) {
		p.advance()
		def, err = p.parseDefaultValue()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return idl.NewArgument(uid, typ, idl.ArgumentOptions{
		Optional:         true,
		DictionaryMember: true,
		Default:          def,
	}), nil
}

// parseException parses an exception and discards it.
func (p *Parser) parseException() error {
	kw := p.advance()
	uid, err := p.parseIdentifier()
	if err != nil {
		return err
	}
	if _, err := p.parseInheritance(); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return err
	}
	for !p.check(lexer.TokRBrace) {
		if _, err := p.parseExtendedAttributeList(); err != nil {
			return err
		}
		if p.check(lexer.TokKwConst) {
			if _, err := p.parseConst(); err != nil {
				return err
			}
			continue
		}
		if _, err := p.parseType(); err != nil {
			return err
		}
		if _, err := p.parseIdentifier(); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokSemicolon); err != nil {
			return err
		}
	}
	p.advance()
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return err
	}
	p.warn(types.DiagExceptionIgnored,
		fmt.Sprintf("Exception %s is not supported and was ignored", uid.Name()),
		p.location(kw))
	return nil
}

// parseEnum parses: enum Name { "a", "b" } ;
func (p *Parser) parseEnum() (idl.Production, error) {
	p.advance()
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	var values []string
	for {
		tok, err := p.expect(lexer.TokString)
		if err != nil {
			return nil, err
		}
		values = append(values, p.stringValue(tok))
		if !p.check(lexer.TokComma) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	enum, err := idl.NewEnum(uid, values)
	if err != nil {
		return nil, err
	}
	return enum, nil
}

// parseTypedef parses: typedef Type Name ;
func (p *Parser) parseTypedef() (idl.Production, error) {
	p.advance()
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	uid, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return idl.NewTypedef(uid, typ), nil
}

// parseImplementsStatement parses: Name implements Name ;
func (p *Parser) parseImplementsStatement() (idl.Production, error) {
	start := p.peek()
	left, err := p.parseScopedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokKwImplements); err != nil {
		return nil, err
	}
	right, err := p.parseScopedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return idl.NewImplementsStatement(p.location(start),
		idl.NewIdentifierPlaceholder(left), idl.NewIdentifierPlaceholder(right)), nil
}

// parseExtendedAttributeList parses an optional [A, B=C, D(args)] list.
func (p *Parser) parseExtendedAttributeList() (idl.ExtendedAttributes, error) {
	if !p.check(lexer.TokLBracket) {
		return nil, nil
	}
	p.advance()
	var attrs idl.ExtendedAttributes
	for {
		attr, err := p.parseExtendedAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
		if !p.check(lexer.TokComma) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(lexer.TokRBracket); err != nil {
		return nil, err
	}
	return attrs, nil
}

// parseExtendedAttribute parses one of:
//
//	Name
//	Name(args)
//	Name=Value
//	Name=Value(args)
//	Name=(A, B)
func (p *Parser) parseExtendedAttribute() (*idl.ExtendedAttribute, error) {
	tok, err := p.expect(lexer.TokIdentifier)
	if err != nil {
		return nil, err
	}
	attr := idl.NewExtendedAttribute(p.location(tok), p.text(tok.Span))

	if p.check(lexer.TokEquals) {
		p.advance()
		if p.check(lexer.TokLParen) {
			p.advance()
			var idents []string
			for {
				ident, err := p.expect(lexer.TokIdentifier)
				if err != nil {
					return nil, err
				}
				idents = append(idents, p.text(ident.Span))
				if !p.check(lexer.TokComma) {
					break
				}
				p.advance()
			}
			if _, err := p.expect(lexer.TokRParen); err != nil {
				return nil, err
			}
			return attr.WithIdents(idents), nil
		}
		value, err := p.expect(lexer.TokIdentifier)
		if err != nil {
			return nil, err
		}
		attr.WithValue(p.text(value.Span))
	}

	if p.check(lexer.TokLParen) {
		args, err := p.parseParenArguments()
		if err != nil {
			return nil, err
		}
		attr.WithArgs(args)
	}
	return attr, nil
}

// parseReturnType parses void or a Type.
func (p *Parser) parseReturnType() (idl.Type, error) {
	if p.check(lexer.TokKwVoid) {
		p.advance()
		return idl.Builtin(idl.BuiltinVoid), nil
	}
	return p.parseType()
}

// parseType parses a union, any (only followed by an array suffix) or a
// non-any type, including its suffixes.
func (p *Parser) parseType() (idl.Type, error) {
	switch p.peek().Kind {
	case lexer.TokLParen:
		union, err := p.parseUnionType()
		if err != nil {
			return nil, err
		}
		return p.parseTypeSuffix(union, false)
	case lexer.TokKwAny:
		p.advance()
		return p.parseTypeSuffix(idl.Builtin(idl.BuiltinAny), true)
	default:
		return p.parseNonAnyType()
	}
}

// parseUnionType parses: ( Member or Member [or Member...] )
func (p *Parser) parseUnionType() (idl.Type, error) {
	open := p.advance()
	first, err := p.parseUnionMemberType()
	if err != nil {
		return nil, err
	}
	members := []idl.Type{first}
	if _, err := p.expect(lexer.TokKwOr); err != nil {
		return nil, err
	}
	for {
		member, err := p.parseUnionMemberType()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
		if !p.check(lexer.TokKwOr) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	return idl.NewUnionType(p.location(open), members), nil
}

// parseUnionMemberType parses a union member. A bare any is not allowed;
// any[] is.
func (p *Parser) parseUnionMemberType() (idl.Type, error) {
	switch p.peek().Kind {
	case lexer.TokLParen:
		union, err := p.parseUnionType()
		if err != nil {
			return nil, err
		}
		return p.parseTypeSuffix(union, false)
	case lexer.TokKwAny:
		if p.peekNth(1).Kind != lexer.TokLBracket {
			return nil, p.unexpected()
		}
		p.advance()
		return p.parseTypeSuffix(idl.Builtin(idl.BuiltinAny), true)
	default:
		return p.parseNonAnyType()
	}
}

// parseNonAnyType parses a primitive, string, object, Date, named or
// sequence type with its suffixes. A sequence takes only "?".
func (p *Parser) parseNonAnyType() (idl.Type, error) {
	tok := p.peek()
	loc := p.location(tok)
	var typ idl.Type
	switch tok.Kind {
	case lexer.TokKwSequence:
		p.advance()
		if _, err := p.expect(lexer.TokLT); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokGT); err != nil {
			return nil, err
		}
		var seq idl.Type = idl.NewSequenceType(loc, inner)
		if p.check(lexer.TokQuestion) {
			q := p.advance()
			seq = idl.NewNullableType(p.location(q), seq)
		}
		return seq, nil
	case lexer.TokKwObject:
		p.advance()
		typ = idl.Builtin(idl.BuiltinObject)
	case lexer.TokKwDate:
		p.advance()
		typ = idl.Builtin(idl.BuiltinDate)
	case lexer.TokKwArrayBuffer:
		p.advance()
		typ = idl.NewUnresolvedType(loc, "ArrayBuffer")
	case lexer.TokIdentifier, lexer.TokScope:
		uid, err := p.parseScopedName()
		if err != nil {
			return nil, err
		}
		typ = idl.NewUnresolvedType(uid.Location(), uid.Name())
	default:
		var err error
		typ, err = p.parsePrimitiveOrStringType()
		if err != nil {
			return nil, err
		}
	}
	return p.parseTypeSuffix(typ, false)
}

// parsePrimitiveOrStringType parses boolean, byte, octet, float, double,
// DOMString or an (unsigned) integer type.
func (p *Parser) parsePrimitiveOrStringType() (idl.Type, error) {
	var tag idl.BuiltinTag
	switch p.peek().Kind {
	case lexer.TokKwBoolean:
		tag = idl.BuiltinBoolean
	case lexer.TokKwByte:
		tag = idl.BuiltinByte
	case lexer.TokKwOctet:
		tag = idl.BuiltinOctet
	case lexer.TokKwFloat:
		tag = idl.BuiltinFloat
	case lexer.TokKwDouble:
		tag = idl.BuiltinDouble
	case lexer.TokKwDOMString:
		tag = idl.BuiltinDOMString
	case lexer.TokKwUnsigned:
		p.advance()
		return p.parseIntegerType(true)
	case lexer.TokKwShort, lexer.TokKwLong:
		return p.parseIntegerType(false)
	default:
		return nil, p.unexpected()
	}
	p.advance()
	return idl.Builtin(tag), nil
}

// parseIntegerType parses short, long or long long.
func (p *Parser) parseIntegerType(unsigned bool) (idl.Type, error) {
	var tag idl.BuiltinTag
	switch p.peek().Kind {
	case lexer.TokKwShort:
		p.advance()
		tag = idl.BuiltinShort
	case lexer.TokKwLong:
		p.advance()
		tag = idl.BuiltinLong
		if p.check(lexer.TokKwLong) {
			p.advance()
			tag = idl.BuiltinLongLong
		}
	default:
		return nil, p.unexpected()
	}
	if unsigned {
		// Each unsigned tag directly follows its signed counterpart.
		tag++
	}
	return idl.Builtin(tag), nil
}

// parseTypeSuffix parses a run of "[]" and "?" suffixes and folds them
// onto t. A "?" may not follow another "?", and when arrayFirst is set
// the run has to start with "[]".
func (p *Parser) parseTypeSuffix(t idl.Type, arrayFirst bool) (idl.Type, error) {
	var modifiers []idl.Modifier
	afterQMark := arrayFirst
	for {
		tok := p.peek()
		switch {
		case tok.Kind == lexer.TokLBracket && p.peekNth(1).Kind == lexer.TokRBracket:
			p.advance()
			p.advance()
			modifiers = append(modifiers, idl.Modifier{Kind: idl.Brackets, Location: p.location(tok)})
			afterQMark = false
		case tok.Kind == lexer.TokQuestion && !afterQMark:
			p.advance()
			modifiers = append(modifiers, idl.Modifier{Kind: idl.QMark, Location: p.location(tok)})
			afterQMark = true
		default:
			if arrayFirst && len(modifiers) == 0 && tok.Kind == lexer.TokQuestion {
				return nil, p.unexpected()
			}
			return idl.HandleModifiers(t, modifiers)
		}
	}
}

// parseConstValue parses true, false, null or an integer.
func (p *Parser) parseConstValue() (*idl.Value, error) {
	tok := p.peek()
	loc := p.location(tok)
	switch tok.Kind {
	case lexer.TokKwTrue:
		p.advance()
		return idl.NewBooleanValue(loc, true), nil
	case lexer.TokKwFalse:
		p.advance()
		return idl.NewBooleanValue(loc, false), nil
	case lexer.TokKwNull:
		p.advance()
		return idl.NewNullValue(loc), nil
	case lexer.TokInteger:
		p.advance()
		n, ok := new(big.Int).SetString(p.text(tok.Span), 0)
		if !ok {
			return nil, idl.NewError(idl.KindLexical, types.DiagInvalidInteger,
				"Invalid integer literal", loc)
		}
		return idl.NewIntegerValue(loc, n)
	default:
		return nil, p.unexpected()
	}
}

// parseDefaultValue parses a ConstValue or a string.
func (p *Parser) parseDefaultValue() (*idl.Value, error) {
	if p.check(lexer.TokString) {
		tok := p.advance()
		return idl.NewStringValue(p.location(tok), p.stringValue(tok)), nil
	}
	return p.parseConstValue()
}

// stringValue strips the quotes from a string token.
func (p *Parser) stringValue(tok lexer.Token) string {
	text := p.text(tok.Span)
	return text[1 : len(text)-1]
}
