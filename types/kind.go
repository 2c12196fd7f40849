package types

// Kind discriminates finalized types.
type Kind uint8

const (
	KindIntegerSigned Kind = iota
	KindIntegerUnsigned
	KindIntegerSignedNormalized
	KindIntegerUnsignedNormalized
	KindFloat
	KindArray
	KindVector
	KindMatrix
	KindBooleanSet
	KindString
	KindRecord
	KindPacked
)

var kindNames = [...]string{
	KindIntegerSigned:             "integer-signed",
	KindIntegerUnsigned:           "integer-unsigned",
	KindIntegerSignedNormalized:   "integer-signed-normalized",
	KindIntegerUnsignedNormalized: "integer-unsigned-normalized",
	KindFloat:                     "float",
	KindArray:                     "array",
	KindVector:                    "vector",
	KindMatrix:                    "matrix",
	KindBooleanSet:                "boolean-set",
	KindString:                    "string",
	KindRecord:                    "record",
	KindPacked:                    "packed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInteger reports whether k is one of the four integer kinds.
func (k Kind) IsInteger() bool {
	return k <= KindIntegerUnsignedNormalized
}

// IsScalar reports whether k is an integer or float kind.
func (k Kind) IsScalar() bool {
	return k <= KindFloat
}

// IsUserDefined reports whether k is a record or packed kind.
func (k Kind) IsUserDefined() bool {
	return k == KindRecord || k == KindPacked
}

// IntegerKind is the interpretation of an integer's bits.
type IntegerKind uint8

const (
	IntegerSigned IntegerKind = iota
	IntegerUnsigned
	IntegerSignedNormalized
	IntegerUnsignedNormalized
)

var integerKindNames = [...]string{
	IntegerSigned:             "signed",
	IntegerUnsigned:           "unsigned",
	IntegerSignedNormalized:   "signed-normalized",
	IntegerUnsignedNormalized: "unsigned-normalized",
}

func (k IntegerKind) String() string {
	if int(k) < len(integerKindNames) {
		return integerKindNames[k]
	}
	return "unknown"
}

// Kind returns the type kind of an integer of this interpretation.
func (k IntegerKind) Kind() Kind {
	return KindIntegerSigned + Kind(k)
}
