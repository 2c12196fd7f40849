package errors

import (
	"fmt"

	"github.com/io7m/jpra-sub001/lexical"
)

// Convenience constructors, one per diagnostic kind.

// RecordIntegerSizeUnsupported reports an integer size outside the record-integer axis.
func RecordIntegerSizeUnsupported(pos lexical.Position, bits any, supported fmt.Stringer) *Error {
	return unsupported(KindRecordIntegerSizeUnsupported, pos, "record-integer", bits, supported,
		"integer size %v bits is not supported in records", bits)
}

// PackedIntegerSizeUnsupported reports an integer size outside the packed-integer axis.
func PackedIntegerSizeUnsupported(pos lexical.Position, bits any, supported fmt.Stringer) *Error {
	return unsupported(KindPackedIntegerSizeUnsupported, pos, "packed-integer", bits, supported,
		"integer size %v bits is not supported in packed types", bits)
}

// FloatSizeUnsupported reports a float size outside the record-float axis.
func FloatSizeUnsupported(pos lexical.Position, bits any, supported fmt.Stringer) *Error {
	return unsupported(KindFloatSizeUnsupported, pos, "record-float", bits, supported,
		"float size %v bits is not supported", bits)
}

// VectorSizeUnsupported reports a vector element count outside the vector-size axis.
func VectorSizeUnsupported(pos lexical.Position, count any, supported fmt.Stringer) *Error {
	return unsupported(KindVectorSizeUnsupported, pos, "vector-size", count, supported,
		"vector element count %v is not supported", count)
}

// VectorIntegerSizeUnsupported reports a vector integer element size outside its axis.
func VectorIntegerSizeUnsupported(pos lexical.Position, bits any, supported fmt.Stringer) *Error {
	return unsupported(KindVectorIntegerSizeUnsupported, pos, "vector-integer", bits, supported,
		"vector integer element size %v bits is not supported", bits)
}

// VectorFloatSizeUnsupported reports a vector float element size outside its axis.
func VectorFloatSizeUnsupported(pos lexical.Position, bits any, supported fmt.Stringer) *Error {
	return unsupported(KindVectorFloatSizeUnsupported, pos, "vector-float", bits, supported,
		"vector float element size %v bits is not supported", bits)
}

// MatrixSizeUnsupported reports a (width, height) pair outside the matrix-size axis.
func MatrixSizeUnsupported(pos lexical.Position, dims any, supported fmt.Stringer) *Error {
	return unsupported(KindMatrixSizeUnsupported, pos, "matrix-size", dims, supported,
		"matrix size %v is not supported", dims)
}

// MatrixIntegerSizeUnsupported reports a matrix integer element size outside its axis.
func MatrixIntegerSizeUnsupported(pos lexical.Position, bits any, supported fmt.Stringer) *Error {
	return unsupported(KindMatrixIntegerSizeUnsupported, pos, "matrix-integer", bits, supported,
		"matrix integer element size %v bits is not supported", bits)
}

// MatrixFloatSizeUnsupported reports a matrix float element size outside its axis.
func MatrixFloatSizeUnsupported(pos lexical.Position, bits any, supported fmt.Stringer) *Error {
	return unsupported(KindMatrixFloatSizeUnsupported, pos, "matrix-float", bits, supported,
		"matrix float element size %v bits is not supported", bits)
}

// StringEncodingUnsupported reports an encoding name outside the string-encoding axis.
func StringEncodingUnsupported(pos lexical.Position, encoding string, supported fmt.Stringer) *Error {
	return unsupported(KindStringEncodingUnsupported, pos, "string-encoding", encoding, supported,
		"string encoding %q is not supported", encoding)
}

// PackedSizeUnsupported reports a packed total size outside the packed-total axis.
func PackedSizeUnsupported(pos lexical.Position, typeName string, bits any, supported fmt.Stringer) *Error {
	return unsupportedBuilder(KindPackedSizeUnsupported, pos, "packed-total", bits, supported).
		Type(typeName).
		Detail("packed type size %v bits is not supported", bits).
		Build()
}

func unsupported(kind Kind, pos lexical.Position, axis string, value any, supported fmt.Stringer, msg string, args ...any) *Error {
	return unsupportedBuilder(kind, pos, axis, value, supported).Detail(msg, args...).Build()
}

func unsupportedBuilder(kind Kind, pos lexical.Position, axis string, value any, supported fmt.Stringer) *Builder {
	return New(PhaseCheck, kind).
		At(pos).
		Axis(axis).
		Value(value).
		Supported(supported)
}

// VectorNonScalar reports a vector whose element type is not an integer or float.
func VectorNonScalar(pos lexical.Position, elem string) *Error {
	return New(PhaseCheck, KindVectorNonScalar).
		At(pos).
		Type(elem).
		Detail("vector elements must be integer or float types").
		Build()
}

// MatrixNonScalar reports a matrix whose element type is not an integer or float.
func MatrixNonScalar(pos lexical.Position, elem string) *Error {
	return New(PhaseCheck, KindMatrixNonScalar).
		At(pos).
		Type(elem).
		Detail("matrix elements must be integer or float types").
		Build()
}

// BooleanSetSizeInvalid reports a boolean set octet size outside [minOctets, maxOctets].
func BooleanSetSizeInvalid(pos lexical.Position, octets any, minOctets, maxOctets int) *Error {
	return New(PhaseCheck, KindBooleanSetSizeInvalid).
		At(pos).
		Value(octets).
		Detail("boolean set size %v octets must be in the range [%d, %d]", octets, minOctets, maxOctets).
		Build()
}

// BooleanSetSizeTooSmall reports a boolean set with fewer bits than field names.
func BooleanSetSizeTooSmall(pos lexical.Position, bits any, fields int) *Error {
	return New(PhaseCheck, KindBooleanSetSizeTooSmall).
		At(pos).
		Value(bits).
		Detail("boolean set of %v bits cannot hold %d fields", bits, fields).
		Build()
}

// PaddingSizeInvalid reports a padding field whose size is not positive.
func PaddingSizeInvalid(pos lexical.Position, size any) *Error {
	return New(PhaseCheck, KindPaddingSizeInvalid).
		At(pos).
		Value(size).
		Detail("padding size %v must be positive", size).
		Build()
}

// PackedNonInteger reports a packed value field whose type is not an integer.
func PackedNonInteger(pos lexical.Position, field, typ string) *Error {
	return New(PhaseCheck, KindPackedNonInteger).
		At(pos).
		Path(field).
		Type(typ).
		Detail("packed type fields must be integers").
		Build()
}

// SizeInvalid reports a size, count or dimension that is not positive.
func SizeInvalid(pos lexical.Position, what string, value any) *Error {
	return New(PhaseCheck, KindSizeInvalid).
		At(pos).
		Value(value).
		Detail("%s %v must be positive", what, value).
		Build()
}

// SizeNotOctetAligned reports a size-in-octets request on a type that is not octet aligned.
func SizeNotOctetAligned(pos lexical.Position, typ string, bits any) *Error {
	return New(PhaseEvaluate, KindSizeNotOctetAligned).
		At(pos).
		Type(typ).
		Value(bits).
		Detail("size %v bits is not a multiple of 8", bits).
		Build()
}

// RecordFieldUnaligned reports a record value field whose size is not a whole number of octets.
func RecordFieldUnaligned(pos lexical.Position, field, typ string, bits any) *Error {
	return New(PhaseLayout, KindRecordFieldUnaligned).
		At(pos).
		Path(field).
		Type(typ).
		Value(bits).
		Detail("record field size %v bits is not a multiple of 8", bits).
		Build()
}

// TypeUnknown reports a reference to a type that has not been declared.
func TypeUnknown(pos lexical.Position, name string) *Error {
	return New(PhaseCheck, KindTypeUnknown).
		At(pos).
		Detail("type %s has not been declared", name).
		Build()
}

// FieldPathInvalid reports a field path that cannot be followed from typ.
func FieldPathInvalid(pos lexical.Position, typ, name string, remaining []string) *Error {
	return New(PhaseEvaluate, KindFieldPath).
		At(pos).
		Path(remaining...).
		Type(typ).
		Value(name).
		Detail("no field %q", name).
		Build()
}

// NoCurrentPackage reports a declaration that appears outside package-begin/package-end.
func NoCurrentPackage(pos lexical.Position, decl string) *Error {
	return New(PhaseCheck, KindNoCurrentPackage).
		At(pos).
		Detail("%s declared outside of a package", decl).
		Build()
}

// InvalidName reports a name that does not match the pattern for its kind.
func InvalidName(what, name, pattern string) *Error {
	return New(PhaseNames, KindInvalidName).
		Value(name).
		Detail("%s %q must match %s", what, name, pattern).
		Build()
}
