package layout

import (
	"sync"

	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/size"
	"github.com/io7m/jpra-sub001/types"
)

// Info is the layout of one aggregate.
type Info struct {
	Type   types.UserDefined
	byName map[names.FieldName]int
	Size   size.Size[size.Bits]
	Fields []Field
}

// Field is the placement of one field, padding included.
type Field struct {
	// Type is nil for padding.
	Type types.Type
	// Bits is set for fields of packed types only.
	Bits types.BitRange
	// Offset is the distance in bits from the start of the aggregate.
	Offset size.Size[size.Bits]
	Size   size.Size[size.Bits]
	// Name is empty for padding.
	Name   names.FieldName
	Index  int
	Packed bool
}

// IsPadding reports whether f is anonymous padding.
func (f Field) IsPadding() bool {
	return f.Type == nil
}

// OctetOffset returns the offset of a record field in octets. Fields of
// packed types do not start on octet boundaries in general.
func (f Field) OctetOffset() (size.Size[size.Octets], bool) {
	return size.BitsToOctets(f.Offset)
}

// Field returns the placement of the value field called name.
func (i Info) Field(name names.FieldName) (Field, bool) {
	idx, ok := i.byName[name]
	if !ok {
		return Field{}, false
	}
	return i.Fields[idx], true
}

// Calculator computes and caches aggregate layouts.
type Calculator struct {
	cache map[types.UserDefined]Info
	mu    sync.Mutex
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[types.UserDefined]Info),
	}
}

// Calculate returns the layout of t.
func (c *Calculator) Calculate(t types.UserDefined) Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculate(t)
}

func (c *Calculator) calculate(t types.UserDefined) Info {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	var info Info
	switch t := t.(type) {
	case *types.Record:
		info = calculateRecord(t)
	case *types.Packed:
		info = calculatePacked(t)
	default:
		errors.Contract("unexpected aggregate %T", t)
	}

	c.cache[t] = info
	return info
}

func calculateRecord(r *types.Record) Info {
	info := Info{
		Type:   r,
		byName: make(map[names.FieldName]int),
		Size:   r.Size(),
		Fields: make([]Field, 0, r.FieldCount()),
	}

	offset := size.Zero[size.Bits]()
	for _, f := range r.Fields() {
		placed := Field{
			Offset: offset,
			Size:   f.Size(),
			Index:  f.Index(),
		}
		if v, ok := f.(*types.RecordFieldValue); ok {
			placed.Type = v.Type()
			placed.Name = v.Name()
			info.byName[v.Name()] = len(info.Fields)
		}
		info.Fields = append(info.Fields, placed)
		offset = offset.Add(f.Size())
	}

	errors.Require(offset.Equal(r.Size()), "record %s fields sum to %s, size is %s", r.Name(), offset, r.Size())
	return info
}

func calculatePacked(p *types.Packed) Info {
	info := Info{
		Type:   p,
		byName: make(map[names.FieldName]int),
		Size:   p.Size(),
		Fields: make([]Field, 0, p.FieldCount()),
	}

	offset := size.Zero[size.Bits]()
	for _, f := range p.Fields() {
		placed := Field{
			Bits:   f.Bits(),
			Offset: offset,
			Size:   f.Size(),
			Index:  f.Index(),
			Packed: true,
		}
		if v, ok := f.(*types.PackedFieldValue); ok {
			placed.Type = v.Type()
			placed.Name = v.Name()
			info.byName[v.Name()] = len(info.Fields)
		}
		info.Fields = append(info.Fields, placed)
		offset = offset.Add(f.Size())
	}

	errors.Require(offset.Equal(p.Size()), "packed %s fields sum to %s, size is %s", p.Name(), offset, p.Size())
	return info
}
