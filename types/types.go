package types

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/size"
)

// Type is a finalized type.
type Type interface {
	Kind() Kind
	// Size is the exact size of a value of the type, in bits.
	Size() size.Size[size.Bits]
	// String renders the type in declaration syntax.
	String() string
	isType()
}

// Scalar is an Integer or a Float.
type Scalar interface {
	Type
	isScalar()
}

// Integer is a signed, unsigned or normalized integer of a fixed bit width.
type Integer struct {
	bits size.Size[size.Bits]
	kind IntegerKind
}

// NewInteger returns an integer type.
func NewInteger(kind IntegerKind, bits size.Size[size.Bits]) *Integer {
	return &Integer{kind: kind, bits: bits}
}

func (t *Integer) IntegerKind() IntegerKind   { return t.kind }
func (t *Integer) Kind() Kind                 { return t.kind.Kind() }
func (t *Integer) Size() size.Size[size.Bits] { return t.bits }
func (t *Integer) isType()                    {}
func (t *Integer) isScalar()                  {}

func (t *Integer) String() string {
	return "(integer " + t.kind.String() + " " + t.bits.Big().String() + ")"
}

// Float is an IEEE 754 floating point type.
type Float struct {
	bits size.Size[size.Bits]
}

// NewFloat returns a float type.
func NewFloat(bits size.Size[size.Bits]) *Float {
	return &Float{bits: bits}
}

func (t *Float) Kind() Kind                 { return KindFloat }
func (t *Float) Size() size.Size[size.Bits] { return t.bits }
func (t *Float) isType()                    {}
func (t *Float) isScalar()                  {}

func (t *Float) String() string {
	return "(float " + t.bits.Big().String() + ")"
}

// Array is a fixed-count sequence of elements of any type.
type Array struct {
	elem  Type
	count *big.Int
}

// NewArray returns an array of count elements.
func NewArray(elem Type, count *big.Int) *Array {
	errors.Require(count.Sign() >= 0, "negative array count %v", count)
	return &Array{elem: elem, count: new(big.Int).Set(count)}
}

func (t *Array) Element() Type   { return t.elem }
func (t *Array) Count() *big.Int { return new(big.Int).Set(t.count) }
func (t *Array) Kind() Kind      { return KindArray }
func (t *Array) isType()         {}

func (t *Array) Size() size.Size[size.Bits] {
	return t.elem.Size().Mul(t.count)
}

func (t *Array) String() string {
	return "(array " + t.elem.String() + " " + t.count.String() + ")"
}

// Vector is a fixed-count sequence of scalars.
type Vector struct {
	elem  Scalar
	count *big.Int
}

// NewVector returns a vector of count scalar elements.
func NewVector(elem Scalar, count *big.Int) *Vector {
	errors.Require(count.Sign() >= 0, "negative vector count %v", count)
	return &Vector{elem: elem, count: new(big.Int).Set(count)}
}

func (t *Vector) Element() Scalar { return t.elem }
func (t *Vector) Count() *big.Int { return new(big.Int).Set(t.count) }
func (t *Vector) Kind() Kind      { return KindVector }
func (t *Vector) isType()         {}

func (t *Vector) Size() size.Size[size.Bits] {
	return t.elem.Size().Mul(t.count)
}

func (t *Vector) String() string {
	return "(vector " + t.elem.String() + " " + t.count.String() + ")"
}

// Matrix is a width × height grid of scalars.
type Matrix struct {
	elem   Scalar
	width  *big.Int
	height *big.Int
}

// NewMatrix returns a matrix of width × height scalar elements.
func NewMatrix(elem Scalar, width, height *big.Int) *Matrix {
	errors.Require(width.Sign() >= 0 && height.Sign() >= 0, "negative matrix size %vx%v", width, height)
	return &Matrix{
		elem:   elem,
		width:  new(big.Int).Set(width),
		height: new(big.Int).Set(height),
	}
}

func (t *Matrix) Element() Scalar  { return t.elem }
func (t *Matrix) Width() *big.Int  { return new(big.Int).Set(t.width) }
func (t *Matrix) Height() *big.Int { return new(big.Int).Set(t.height) }
func (t *Matrix) Kind() Kind       { return KindMatrix }
func (t *Matrix) isType()          {}

func (t *Matrix) Size() size.Size[size.Bits] {
	return t.elem.Size().Mul(new(big.Int).Mul(t.width, t.height))
}

func (t *Matrix) String() string {
	return "(matrix " + t.elem.String() + " " + t.width.String() + " " + t.height.String() + ")"
}

// BooleanSet is a set of named flags stored in a fixed number of octets.
type BooleanSet struct {
	octets size.Size[size.Octets]
	fields []names.FieldName
}

// NewBooleanSet returns a boolean set occupying octets octets.
func NewBooleanSet(fields []names.FieldName, octets size.Size[size.Octets]) *BooleanSet {
	return &BooleanSet{
		fields: append([]names.FieldName(nil), fields...),
		octets: octets,
	}
}

// Fields returns the flag names in declaration order.
func (t *BooleanSet) Fields() []names.FieldName {
	return append([]names.FieldName(nil), t.fields...)
}

func (t *BooleanSet) SizeOctets() size.Size[size.Octets] { return t.octets }
func (t *BooleanSet) Kind() Kind                         { return KindBooleanSet }
func (t *BooleanSet) isType()                            {}

func (t *BooleanSet) Size() size.Size[size.Bits] {
	return size.OctetsToBits(t.octets)
}

func (t *BooleanSet) String() string {
	parts := make([]string, len(t.fields))
	for i, f := range t.fields {
		parts[i] = string(f)
	}
	return "(boolean-set " + t.octets.Big().String() + " [" + strings.Join(parts, " ") + "])"
}

// String is a fixed-capacity string. The full capacity is reserved
// regardless of the length of the stored text.
type String struct {
	encoding string
	octets   size.Size[size.Octets]
}

// NewString returns a string type of the given capacity and encoding.
func NewString(octets size.Size[size.Octets], encoding string) *String {
	return &String{octets: octets, encoding: encoding}
}

func (t *String) Encoding() string                   { return t.encoding }
func (t *String) SizeOctets() size.Size[size.Octets] { return t.octets }
func (t *String) Kind() Kind                         { return KindString }
func (t *String) isType()                            {}

func (t *String) Size() size.Size[size.Bits] {
	return size.OctetsToBits(t.octets)
}

func (t *String) String() string {
	return "(string " + t.octets.Big().String() + " " + strconv.Quote(t.encoding) + ")"
}
