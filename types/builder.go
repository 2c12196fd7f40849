package types

import (
	"math/big"

	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/size"
)

// fieldIndex tracks the names and identifiers already used by an aggregate
// under construction. Reuse of either is a resolver bug, not a user error.
type fieldIndex struct {
	names map[names.FieldName]struct{}
	ids   map[names.Identifier]struct{}
}

func newFieldIndex(owner names.Identifier) fieldIndex {
	return fieldIndex{
		names: make(map[names.FieldName]struct{}),
		ids:   map[names.Identifier]struct{}{owner: {}},
	}
}

func (x fieldIndex) claim(name names.FieldName, id names.Identifier) {
	_, dupName := x.names[name]
	errors.Require(!dupName, "field name %q already used", name)
	_, dupID := x.ids[id]
	errors.Require(!dupID, "identifier %d already used", id)

	x.names[name] = struct{}{}
	x.ids[id] = struct{}{}
}

// RecordBuilder accumulates the fields of a record. A builder is used for
// exactly one record: after Build every method panics.
type RecordBuilder struct {
	used     fieldIndex
	named    map[names.FieldName]*RecordFieldValue
	pos      lexical.Position
	bits     size.Size[size.Bits]
	name     names.QualifiedTypeName
	ordered  []RecordField
	id       names.Identifier
	finished bool
}

// NewRecordBuilder starts a record called name.
func NewRecordBuilder(name names.QualifiedTypeName, id names.Identifier, pos lexical.Position) *RecordBuilder {
	return &RecordBuilder{
		used:  newFieldIndex(id),
		named: make(map[names.FieldName]*RecordFieldValue),
		pos:   pos,
		name:  name,
		id:    id,
	}
}

// AddValue appends a named field. The type's size must be a whole number of octets.
func (b *RecordBuilder) AddValue(pos lexical.Position, name names.FieldName, id names.Identifier, typ Type) {
	errors.Require(!b.finished, "record %s already built", b.name)
	errors.Require(size.IsOctetAligned(typ.Size()), "record field %s size %s is not octet aligned", name, typ.Size())
	b.used.claim(name, id)

	f := &RecordFieldValue{
		typ:   typ,
		pos:   pos,
		name:  name,
		index: len(b.ordered),
		id:    id,
	}
	b.ordered = append(b.ordered, f)
	b.named[name] = f
	b.bits = b.bits.Add(typ.Size())
}

// AddPaddingOctets appends anonymous padding.
func (b *RecordBuilder) AddPaddingOctets(pos lexical.Position, octets size.Size[size.Octets]) {
	errors.Require(!b.finished, "record %s already built", b.name)

	f := &RecordFieldPaddingOctets{
		pos:    pos,
		octets: octets,
		index:  len(b.ordered),
	}
	b.ordered = append(b.ordered, f)
	b.bits = b.bits.Add(f.Size())
}

// CurrentSize is the sum of the sizes of the fields added so far.
func (b *RecordBuilder) CurrentSize() size.Size[size.Bits] {
	return b.bits
}

// Build finalizes the record.
func (b *RecordBuilder) Build() *Record {
	errors.Require(!b.finished, "record %s already built", b.name)
	errors.Require(size.IsOctetAligned(b.bits), "record %s size %s is not octet aligned", b.name, b.bits)
	checkViews(len(b.ordered), len(b.named), func(i int) (names.FieldName, any, bool) {
		v, ok := b.ordered[i].(*RecordFieldValue)
		if !ok {
			return "", nil, false
		}
		return v.name, v, b.named[v.name] == v
	})

	b.finished = true

	r := &Record{
		named:   b.named,
		pos:     b.pos,
		bits:    b.bits,
		name:    b.name,
		ordered: b.ordered,
		id:      b.id,
	}
	b.named = nil
	b.ordered = nil
	return r
}

// PackedBuilder accumulates the fields of a packed type. A builder is used
// for exactly one packed type: after Build every method panics.
type PackedBuilder struct {
	used     fieldIndex
	named    map[names.FieldName]*PackedFieldValue
	pos      lexical.Position
	bits     size.Size[size.Bits]
	name     names.QualifiedTypeName
	ordered  []PackedField
	id       names.Identifier
	finished bool
}

// NewPackedBuilder starts a packed type called name.
func NewPackedBuilder(name names.QualifiedTypeName, id names.Identifier, pos lexical.Position) *PackedBuilder {
	return &PackedBuilder{
		used:  newFieldIndex(id),
		named: make(map[names.FieldName]*PackedFieldValue),
		pos:   pos,
		name:  name,
		id:    id,
	}
}

// AddValue appends a named integer field.
func (b *PackedBuilder) AddValue(pos lexical.Position, name names.FieldName, id names.Identifier, typ *Integer) {
	errors.Require(!b.finished, "packed %s already built", b.name)
	b.used.claim(name, id)

	f := &PackedFieldValue{
		typ:   typ,
		pos:   pos,
		name:  name,
		index: len(b.ordered),
		id:    id,
	}
	b.ordered = append(b.ordered, f)
	b.named[name] = f
	b.bits = b.bits.Add(typ.Size())
}

// AddPaddingBits appends anonymous padding.
func (b *PackedBuilder) AddPaddingBits(pos lexical.Position, bits size.Size[size.Bits]) {
	errors.Require(!b.finished, "packed %s already built", b.name)

	f := &PackedFieldPaddingBits{
		pos:   pos,
		bits:  bits,
		index: len(b.ordered),
	}
	b.ordered = append(b.ordered, f)
	b.bits = b.bits.Add(bits)
}

// CurrentSize is the sum of the sizes of the fields added so far.
func (b *PackedBuilder) CurrentSize() size.Size[size.Bits] {
	return b.bits
}

// Build finalizes the packed type and assigns bit ranges. Fields are laid
// out from the most significant bit downwards in declaration order, so the
// first field occupies the highest bits.
func (b *PackedBuilder) Build() *Packed {
	errors.Require(!b.finished, "packed %s already built", b.name)
	checkViews(len(b.ordered), len(b.named), func(i int) (names.FieldName, any, bool) {
		v, ok := b.ordered[i].(*PackedFieldValue)
		if !ok {
			return "", nil, false
		}
		return v.name, v, b.named[v.name] == v
	})

	total := new(big.Int)
	for _, f := range b.ordered {
		total.Add(total, f.Size().Big())
	}
	errors.Require(total.Cmp(b.bits.Big()) == 0, "packed %s running size %s disagrees with field sum %v", b.name, b.bits, total)
	errors.Require(size.IsOctetAligned(b.bits), "packed %s size %s is not octet aligned", b.name, b.bits)

	one := big.NewInt(1)
	msb := new(big.Int).Sub(total, one)
	for _, f := range b.ordered {
		lsb := new(big.Int).Sub(msb, f.Size().Big())
		lsb.Add(lsb, one)

		rng := BitRange{msb: msb, lsb: lsb}
		switch f := f.(type) {
		case *PackedFieldValue:
			f.rng = rng
		case *PackedFieldPaddingBits:
			f.rng = rng
		}

		msb = new(big.Int).Sub(lsb, one)
	}

	b.finished = true

	p := &Packed{
		named:   b.named,
		pos:     b.pos,
		bits:    b.bits,
		name:    b.name,
		ordered: b.ordered,
		id:      b.id,
	}
	b.named = nil
	b.ordered = nil
	return p
}

// checkViews verifies that the ordered and named views of an aggregate agree:
// the ordered sequence is at least as long as the map, and every value field
// in it is the map's entry for its own name.
func checkViews(ordered, named int, valueAt func(i int) (names.FieldName, any, bool)) {
	errors.Require(ordered >= named, "ordered fields (%d) fewer than named fields (%d)", ordered, named)

	values := 0
	for i := 0; i < ordered; i++ {
		name, v, same := valueAt(i)
		if v == nil {
			continue
		}
		errors.Require(same, "field %q missing from the name index", name)
		values++
	}
	errors.Require(values == named, "named fields (%d) do not match ordered value fields (%d)", named, values)
}
