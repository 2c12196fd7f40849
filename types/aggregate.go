package types

import (
	"math/big"

	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/size"
)

// UserDefined is a declared aggregate: a Record or a Packed.
type UserDefined interface {
	Type
	Name() names.QualifiedTypeName
	Identifier() names.Identifier
	Position() lexical.Position
	// SizeOctets is Size in octets; user-defined types are always octet aligned.
	SizeOctets() size.Size[size.Octets]
	// FieldCount is the number of fields, padding included.
	FieldCount() int
	isUserDefined()
}

// Record is an octet-aligned aggregate of heterogeneous fields.
type Record struct {
	named   map[names.FieldName]*RecordFieldValue
	pos     lexical.Position
	bits    size.Size[size.Bits]
	name    names.QualifiedTypeName
	ordered []RecordField
	id      names.Identifier
}

func (t *Record) Name() names.QualifiedTypeName { return t.name }
func (t *Record) Identifier() names.Identifier  { return t.id }
func (t *Record) Position() lexical.Position    { return t.pos }
func (t *Record) Kind() Kind                    { return KindRecord }
func (t *Record) Size() size.Size[size.Bits]    { return t.bits }
func (t *Record) String() string                { return t.name.String() }
func (t *Record) FieldCount() int               { return len(t.ordered) }
func (t *Record) isType()                       {}
func (t *Record) isUserDefined()                {}

func (t *Record) SizeOctets() size.Size[size.Octets] {
	o, _ := size.BitsToOctets(t.bits)
	return o
}

// Fields returns the fields in declaration order, padding included.
func (t *Record) Fields() []RecordField {
	return append([]RecordField(nil), t.ordered...)
}

// FieldAt returns the field at index i in declaration order.
func (t *Record) FieldAt(i int) RecordField {
	return t.ordered[i]
}

// Field returns the value field called name.
func (t *Record) Field(name names.FieldName) (*RecordFieldValue, bool) {
	f, ok := t.named[name]
	return f, ok
}

// FieldsByName returns a copy of the name-indexed view of the value fields.
func (t *Record) FieldsByName() map[names.FieldName]*RecordFieldValue {
	m := make(map[names.FieldName]*RecordFieldValue, len(t.named))
	for k, v := range t.named {
		m[k] = v
	}
	return m
}

// RecordField is a RecordFieldValue or a RecordFieldPaddingOctets.
type RecordField interface {
	// Index is the position of the field in its record.
	Index() int
	Size() size.Size[size.Bits]
	Position() lexical.Position
	isRecordField()
}

// RecordFieldValue is a named record field.
type RecordFieldValue struct {
	typ   Type
	pos   lexical.Position
	name  names.FieldName
	index int
	id    names.Identifier
}

func (f *RecordFieldValue) Name() names.FieldName        { return f.name }
func (f *RecordFieldValue) Identifier() names.Identifier { return f.id }
func (f *RecordFieldValue) Type() Type                   { return f.typ }
func (f *RecordFieldValue) Index() int                   { return f.index }
func (f *RecordFieldValue) Position() lexical.Position   { return f.pos }
func (f *RecordFieldValue) Size() size.Size[size.Bits]   { return f.typ.Size() }
func (f *RecordFieldValue) isRecordField()               {}

// RecordFieldPaddingOctets is anonymous padding in a record.
type RecordFieldPaddingOctets struct {
	pos    lexical.Position
	octets size.Size[size.Octets]
	index  int
}

func (f *RecordFieldPaddingOctets) Octets() size.Size[size.Octets] { return f.octets }
func (f *RecordFieldPaddingOctets) Index() int                     { return f.index }
func (f *RecordFieldPaddingOctets) Position() lexical.Position     { return f.pos }
func (f *RecordFieldPaddingOctets) isRecordField()                 {}

func (f *RecordFieldPaddingOctets) Size() size.Size[size.Bits] {
	return size.OctetsToBits(f.octets)
}

// Packed is a bit-packed aggregate of integer fields.
type Packed struct {
	named   map[names.FieldName]*PackedFieldValue
	pos     lexical.Position
	bits    size.Size[size.Bits]
	name    names.QualifiedTypeName
	ordered []PackedField
	id      names.Identifier
}

func (t *Packed) Name() names.QualifiedTypeName { return t.name }
func (t *Packed) Identifier() names.Identifier  { return t.id }
func (t *Packed) Position() lexical.Position    { return t.pos }
func (t *Packed) Kind() Kind                    { return KindPacked }
func (t *Packed) Size() size.Size[size.Bits]    { return t.bits }
func (t *Packed) String() string                { return t.name.String() }
func (t *Packed) FieldCount() int               { return len(t.ordered) }
func (t *Packed) isType()                       {}
func (t *Packed) isUserDefined()                {}

func (t *Packed) SizeOctets() size.Size[size.Octets] {
	o, _ := size.BitsToOctets(t.bits)
	return o
}

// Fields returns the fields in declaration order, padding included.
func (t *Packed) Fields() []PackedField {
	return append([]PackedField(nil), t.ordered...)
}

// FieldAt returns the field at index i in declaration order.
func (t *Packed) FieldAt(i int) PackedField {
	return t.ordered[i]
}

// Field returns the value field called name.
func (t *Packed) Field(name names.FieldName) (*PackedFieldValue, bool) {
	f, ok := t.named[name]
	return f, ok
}

// FieldsByName returns a copy of the name-indexed view of the value fields.
func (t *Packed) FieldsByName() map[names.FieldName]*PackedFieldValue {
	m := make(map[names.FieldName]*PackedFieldValue, len(t.named))
	for k, v := range t.named {
		m[k] = v
	}
	return m
}

// BitRange is an inclusive range of bit indices, most significant first.
type BitRange struct {
	msb *big.Int
	lsb *big.Int
}

// NewBitRange returns the inclusive range [lsb, msb].
func NewBitRange(lsb, msb int64) BitRange {
	return BitRange{lsb: big.NewInt(lsb), msb: big.NewInt(msb)}
}

// MSB returns the index of the most significant bit.
func (r BitRange) MSB() *big.Int { return new(big.Int).Set(r.msb) }

// LSB returns the index of the least significant bit.
func (r BitRange) LSB() *big.Int { return new(big.Int).Set(r.lsb) }

// Width returns the number of bits in the range.
func (r BitRange) Width() *big.Int {
	w := new(big.Int).Sub(r.msb, r.lsb)
	return w.Add(w, big.NewInt(1))
}

// Equal reports whether both ranges cover the same bits.
func (r BitRange) Equal(o BitRange) bool {
	return r.msb.Cmp(o.msb) == 0 && r.lsb.Cmp(o.lsb) == 0
}

func (r BitRange) String() string {
	return "[" + r.msb.String() + ":" + r.lsb.String() + "]"
}

// PackedField is a PackedFieldValue or a PackedFieldPaddingBits.
type PackedField interface {
	Index() int
	Size() size.Size[size.Bits]
	Position() lexical.Position
	// Bits is the range of bits the field occupies within the packed type.
	Bits() BitRange
	isPackedField()
}

// PackedFieldValue is a named integer field of a packed type.
type PackedFieldValue struct {
	typ   *Integer
	pos   lexical.Position
	rng   BitRange
	name  names.FieldName
	index int
	id    names.Identifier
}

func (f *PackedFieldValue) Name() names.FieldName        { return f.name }
func (f *PackedFieldValue) Identifier() names.Identifier { return f.id }
func (f *PackedFieldValue) Type() *Integer               { return f.typ }
func (f *PackedFieldValue) Index() int                   { return f.index }
func (f *PackedFieldValue) Position() lexical.Position   { return f.pos }
func (f *PackedFieldValue) Size() size.Size[size.Bits]   { return f.typ.Size() }
func (f *PackedFieldValue) Bits() BitRange               { return f.rng }
func (f *PackedFieldValue) isPackedField()               {}

// PackedFieldPaddingBits is anonymous padding in a packed type.
type PackedFieldPaddingBits struct {
	pos   lexical.Position
	rng   BitRange
	bits  size.Size[size.Bits]
	index int
}

func (f *PackedFieldPaddingBits) Index() int                 { return f.index }
func (f *PackedFieldPaddingBits) Position() lexical.Position { return f.pos }
func (f *PackedFieldPaddingBits) Size() size.Size[size.Bits] { return f.bits }
func (f *PackedFieldPaddingBits) Bits() BitRange             { return f.rng }
func (f *PackedFieldPaddingBits) isPackedField()             {}
