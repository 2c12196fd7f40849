package ast

import (
	"math/big"

	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/types"
)

// Decl is a top-level declaration or command.
type Decl[A any] interface {
	Node
	isDecl()
}

// PackageBegin opens the package that subsequent declarations belong to.
type PackageBegin struct {
	Pos  lexical.Position
	Name names.PackageName
}

// PackageEnd closes the current package. In checked trees Package holds the
// completed package scope.
type PackageEnd struct {
	Package *types.Package
	Pos     lexical.Position
}

// Record declares an octet-aligned aggregate. In checked trees Ann is the
// finalized *types.Record.
type Record[A any] struct {
	Ann    A
	Pos    lexical.Position
	Name   names.TypeName
	Fields []RecordField[A]
	ID     names.Identifier
}

// Packed declares a bit-packed aggregate. In checked trees Ann is the
// finalized *types.Packed.
type Packed[A any] struct {
	Ann    A
	Pos    lexical.Position
	Name   names.TypeName
	Fields []PackedField[A]
	ID     names.Identifier
}

// TypeCommand is the :type introspection command.
type TypeCommand[A any] struct {
	Expr TypeExpr[A]
	Pos  lexical.Position
}

// SizeCommand is the :size introspection command. In checked trees Value is
// the evaluated size.
type SizeCommand[A any] struct {
	Expr  SizeExpr[A]
	Value *big.Int
	Pos   lexical.Position
}

func (d *PackageBegin) Position() lexical.Position   { return d.Pos }
func (d *PackageEnd) Position() lexical.Position     { return d.Pos }
func (d *Record[A]) Position() lexical.Position      { return d.Pos }
func (d *Packed[A]) Position() lexical.Position      { return d.Pos }
func (d *TypeCommand[A]) Position() lexical.Position { return d.Pos }
func (d *SizeCommand[A]) Position() lexical.Position { return d.Pos }

func (*PackageBegin) isDecl()   {}
func (*PackageEnd) isDecl()     {}
func (*Record[A]) isDecl()      {}
func (*Packed[A]) isDecl()      {}
func (*TypeCommand[A]) isDecl() {}
func (*SizeCommand[A]) isDecl() {}

// RecordField is a RecordFieldValue or a RecordFieldPaddingOctets.
type RecordField[A any] interface {
	Node
	isRecordField()
}

// RecordFieldValue is (field <name> <type>) inside a record.
type RecordFieldValue[A any] struct {
	Type TypeExpr[A]
	Pos  lexical.Position
	Name names.FieldName
	ID   names.Identifier
}

// RecordFieldPaddingOctets is (padding-octets <size>).
type RecordFieldPaddingOctets[A any] struct {
	Size SizeExpr[A]
	Pos  lexical.Position
}

func (f *RecordFieldValue[A]) Position() lexical.Position         { return f.Pos }
func (f *RecordFieldPaddingOctets[A]) Position() lexical.Position { return f.Pos }

func (*RecordFieldValue[A]) isRecordField()         {}
func (*RecordFieldPaddingOctets[A]) isRecordField() {}

// PackedField is a PackedFieldValue or a PackedFieldPaddingBits.
type PackedField[A any] interface {
	Node
	isPackedField()
}

// PackedFieldValue is (field <name> <integer-type>) inside a packed type.
type PackedFieldValue[A any] struct {
	Type TypeExpr[A]
	Pos  lexical.Position
	Name names.FieldName
	ID   names.Identifier
}

// PackedFieldPaddingBits is (padding-bits <size>).
type PackedFieldPaddingBits[A any] struct {
	Size SizeExpr[A]
	Pos  lexical.Position
}

func (f *PackedFieldValue[A]) Position() lexical.Position       { return f.Pos }
func (f *PackedFieldPaddingBits[A]) Position() lexical.Position { return f.Pos }

func (*PackedFieldValue[A]) isPackedField()       {}
func (*PackedFieldPaddingBits[A]) isPackedField() {}
