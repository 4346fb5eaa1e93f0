package idl

import (
	"math/big"
)

// BuiltinTag identifies a builtin type. The order matters: every tag up
// to BuiltinDouble is primitive, every tag up to
// BuiltinUnsignedLongLong is an integer, and the tags from
// BuiltinArrayBuffer on are engine-implemented interfaces.
type BuiltinTag int

const (
	BuiltinByte BuiltinTag = iota
	BuiltinOctet
	BuiltinShort
	BuiltinUnsignedShort
	BuiltinLong
	BuiltinUnsignedLong
	BuiltinLongLong
	BuiltinUnsignedLongLong
	BuiltinBoolean
	BuiltinFloat
	BuiltinDouble
	BuiltinAny
	BuiltinDOMString
	BuiltinObject
	BuiltinDate
	BuiltinVoid
	BuiltinArrayBuffer
	BuiltinArrayBufferView
	BuiltinInt8Array
	BuiltinUint8Array
	BuiltinUint8ClampedArray
	BuiltinInt16Array
	BuiltinUint16Array
	BuiltinInt32Array
	BuiltinUint32Array
	BuiltinFloat32Array
	BuiltinFloat64Array

	builtinCount
)

type builtinInfo struct {
	name     string // codegen name
	spelling string // IDL spelling
	tag      TypeTag
}

var builtinInfos = [builtinCount]builtinInfo{
	BuiltinByte:              {"Byte", "byte", TagInt8},
	BuiltinOctet:             {"Octet", "octet", TagUint8},
	BuiltinShort:             {"Short", "short", TagInt16},
	BuiltinUnsignedShort:     {"UnsignedShort", "unsigned short", TagUint16},
	BuiltinLong:              {"Long", "long", TagInt32},
	BuiltinUnsignedLong:      {"UnsignedLong", "unsigned long", TagUint32},
	BuiltinLongLong:          {"LongLong", "long long", TagInt64},
	BuiltinUnsignedLongLong:  {"UnsignedLongLong", "unsigned long long", TagUint64},
	BuiltinBoolean:           {"Boolean", "boolean", TagBool},
	BuiltinFloat:             {"Float", "float", TagFloat},
	BuiltinDouble:            {"Double", "double", TagDouble},
	BuiltinAny:               {"Any", "any", TagAny},
	BuiltinDOMString:         {"String", "DOMString", TagDOMString},
	BuiltinObject:            {"Object", "object", TagObject},
	BuiltinDate:              {"Date", "Date", TagDate},
	BuiltinVoid:              {"Void", "void", TagVoid},
	BuiltinArrayBuffer:       {"ArrayBuffer", "ArrayBuffer", TagInterface},
	BuiltinArrayBufferView:   {"ArrayBufferView", "ArrayBufferView", TagInterface},
	BuiltinInt8Array:         {"Int8Array", "Int8Array", TagInterface},
	BuiltinUint8Array:        {"Uint8Array", "Uint8Array", TagInterface},
	BuiltinUint8ClampedArray: {"Uint8ClampedArray", "Uint8ClampedArray", TagInterface},
	BuiltinInt16Array:        {"Int16Array", "Int16Array", TagInterface},
	BuiltinUint16Array:       {"Uint16Array", "Uint16Array", TagInterface},
	BuiltinInt32Array:        {"Int32Array", "Int32Array", TagInterface},
	BuiltinUint32Array:       {"Uint32Array", "Uint32Array", TagInterface},
	BuiltinFloat32Array:      {"Float32Array", "Float32Array", TagInterface},
	BuiltinFloat64Array:      {"Float64Array", "Float64Array", TagInterface},
}

func (t BuiltinTag) String() string {
	if t >= 0 && t < builtinCount {
		return builtinInfos[t].spelling
	}
	return "unknown"
}

var builtinTypeLocation = BuiltinLocation("<builtin type>")

// builtinTypes holds one shared, immutable instance per tag.
var builtinTypes = func() [builtinCount]*BuiltinType {
	var all [builtinCount]*BuiltinType
	for tag := BuiltinTag(0); tag < builtinCount; tag++ {
		all[tag] = &BuiltinType{tag: tag}
	}
	return all
}()

// Builtin returns the shared instance for tag.
func Builtin(tag BuiltinTag) *BuiltinType {
	return builtinTypes[tag]
}

// integerRange is the inclusive range of an integer builtin.
type integerRange struct {
	tag      BuiltinTag
	min, max *big.Int
}

func bigPow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func signedRange(tag BuiltinTag, bits uint) integerRange {
	limit := bigPow2(bits - 1)
	return integerRange{
		tag: tag,
		min: new(big.Int).Neg(limit),
		max: new(big.Int).Sub(limit, big.NewInt(1)),
	}
}

func unsignedRange(tag BuiltinTag, bits uint) integerRange {
	return integerRange{
		tag: tag,
		min: big.NewInt(0),
		max: new(big.Int).Sub(bigPow2(bits), big.NewInt(1)),
	}
}

// integerRanges lists the integer types from the narrowest range to the
// widest, which is the order literals are matched in.
var integerRanges = []integerRange{
	signedRange(BuiltinByte, 8),
	unsignedRange(BuiltinOctet, 8),
	signedRange(BuiltinShort, 16),
	unsignedRange(BuiltinUnsignedShort, 16),
	signedRange(BuiltinLong, 32),
	unsignedRange(BuiltinUnsignedLong, 32),
	signedRange(BuiltinLongLong, 64),
	unsignedRange(BuiltinUnsignedLongLong, 64),
}

func rangeFor(tag BuiltinTag) (integerRange, bool) {
	for _, r := range integerRanges {
		if r.tag == tag {
			return r, true
		}
	}
	return integerRange{}, false
}

func (r integerRange) contains(v *big.Int) bool {
	return v.Cmp(r.min) >= 0 && v.Cmp(r.max) <= 0
}

// MatchIntegerValueToType returns the first integer type, in order
// byte, octet, short, unsigned short, long, unsigned long, long long,
// unsigned long long, whose range contains v. It returns nil when v
// fits none of them.
func MatchIntegerValueToType(v *big.Int) *BuiltinType {
	for _, r := range integerRanges {
		if r.contains(v) {
			return Builtin(r.tag)
		}
	}
	return nil
}
