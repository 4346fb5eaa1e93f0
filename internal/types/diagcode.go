package types

// Diagnostic codes emitted by the lexer, parser, and finish/validate phases.
// Centralizing these prevents silent breakage from typos in string literals.

// Lexer diagnostic codes.
const (
	DiagUnrecognizedInput   = "unrecognized-input"
	DiagUnterminatedString  = "unterminated-string"
	DiagUnterminatedComment = "unterminated-comment"
	DiagInvalidInteger      = "invalid-integer"
)

// Parser diagnostic codes.
const (
	DiagSyntaxError             = "syntax-error"
	DiagSyntaxErrorEOF          = "syntax-error-eof"
	DiagFloatUnsupported        = "float-unsupported"
	DiagScopedNameUnsupported   = "scoped-name-unsupported"
	DiagReservedIdentifier      = "reserved-identifier"
	DiagDuplicateQualifier      = "duplicate-qualifier"
	DiagSpecialOperation        = "special-operation"
	DiagArgumentOrder           = "argument-order"
	DiagMandatoryDefault        = "mandatory-default"
	DiagPartialInterfaceIgnored = "partial-interface-ignored"
	DiagExceptionIgnored        = "exception-ignored"
)

// Scope diagnostic codes.
const (
	DiagDuplicateIdentifier = "duplicate-identifier"
	DiagNameCollision       = "name-collision"
	DiagUnresolvedType      = "unresolved-type"
)

// Type and value diagnostic codes.
const (
	DiagInvalidNullable        = "invalid-nullable"
	DiagInvalidArray           = "invalid-array"
	DiagUnionNullable          = "union-nullable"
	DiagUnionIndistinguishable = "union-indistinguishable"
	DiagValueOutOfRange        = "value-out-of-range"
	DiagValueCoercion          = "value-coercion"
	DiagEnumValue              = "enum-value"
	DiagTypedefCycle           = "typedef-cycle"
)

// Finish and validate diagnostic codes.
const (
	DiagInheritance               = "inheritance"
	DiagInheritanceCycle          = "inheritance-cycle"
	DiagImplements                = "implements"
	DiagImplementsCollision       = "implements-collision"
	DiagSpecialMemberDuplicate    = "special-member-duplicate"
	DiagDictionaryDuplicateMember = "dictionary-duplicate-member"
	DiagDictionaryCycle           = "dictionary-cycle"
	DiagEnumDuplicateValue        = "enum-duplicate-value"
	DiagExtendedAttribute         = "extended-attribute"
	DiagAttributeType             = "attribute-type"
	DiagConstType                 = "const-type"
	DiagArgumentDictionary        = "argument-dictionary"
	DiagOverloadMismatch          = "overload-mismatch"
	DiagOverloadIndistinguishable = "overload-indistinguishable"
	DiagOverloadArgumentTypes     = "overload-argument-types"
)

// AllDiagnosticCodes returns all known diagnostic codes grouped by phase.
func AllDiagnosticCodes() []DiagCodeInfo {
	return []DiagCodeInfo{
		// Lexer
		{Code: DiagUnrecognizedInput, Phase: "lexer"},
		{Code: DiagUnterminatedString, Phase: "lexer"},
		{Code: DiagUnterminatedComment, Phase: "lexer"},
		{Code: DiagInvalidInteger, Phase: "lexer"},
		// Parser
		{Code: DiagSyntaxError, Phase: "parser"},
		{Code: DiagSyntaxErrorEOF, Phase: "parser"},
		{Code: DiagFloatUnsupported, Phase: "parser"},
		{Code: DiagScopedNameUnsupported, Phase: "parser"},
		{Code: DiagReservedIdentifier, Phase: "parser"},
		{Code: DiagDuplicateQualifier, Phase: "parser"},
		{Code: DiagSpecialOperation, Phase: "parser"},
		{Code: DiagArgumentOrder, Phase: "parser"},
		{Code: DiagMandatoryDefault, Phase: "parser"},
		{Code: DiagPartialInterfaceIgnored, Phase: "parser"},
		{Code: DiagExceptionIgnored, Phase: "parser"},
		// Scope
		{Code: DiagDuplicateIdentifier, Phase: "scope"},
		{Code: DiagNameCollision, Phase: "scope"},
		{Code: DiagUnresolvedType, Phase: "finish"},
		// Types and values
		{Code: DiagInvalidNullable, Phase: "finish"},
		{Code: DiagInvalidArray, Phase: "finish"},
		{Code: DiagUnionNullable, Phase: "finish"},
		{Code: DiagUnionIndistinguishable, Phase: "finish"},
		{Code: DiagValueOutOfRange, Phase: "finish"},
		{Code: DiagValueCoercion, Phase: "finish"},
		{Code: DiagEnumValue, Phase: "finish"},
		{Code: DiagTypedefCycle, Phase: "finish"},
		// Definitions
		{Code: DiagInheritance, Phase: "finish"},
		{Code: DiagInheritanceCycle, Phase: "finish"},
		{Code: DiagImplements, Phase: "finish"},
		{Code: DiagImplementsCollision, Phase: "finish"},
		{Code: DiagSpecialMemberDuplicate, Phase: "finish"},
		{Code: DiagDictionaryDuplicateMember, Phase: "finish"},
		{Code: DiagDictionaryCycle, Phase: "finish"},
		{Code: DiagEnumDuplicateValue, Phase: "parser"},
		{Code: DiagExtendedAttribute, Phase: "parser"},
		{Code: DiagAttributeType, Phase: "finish"},
		{Code: DiagConstType, Phase: "finish"},
		{Code: DiagArgumentDictionary, Phase: "finish"},
		{Code: DiagOverloadMismatch, Phase: "parser"},
		{Code: DiagOverloadIndistinguishable, Phase: "validate"},
		{Code: DiagOverloadArgumentTypes, Phase: "validate"},
	}
}

// DiagCodeInfo describes a diagnostic code and the phase that emits it.
type DiagCodeInfo struct {
	Code  string
	Phase string
}
