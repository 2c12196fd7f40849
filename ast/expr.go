package ast

import (
	"math/big"

	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/types"
)

// Untyped is the annotation of trees that have not been checked.
type Untyped struct{}

// Node is anything with a source position.
type Node interface {
	Position() lexical.Position
}

// TypeExpr is a type expression annotated with A.
type TypeExpr[A any] interface {
	Node
	Annotation() A
	isTypeExpr()
}

// SizeExpr is a size expression. Size expressions embed type expressions,
// so they share the annotation of the enclosing tree.
type SizeExpr[A any] interface {
	Node
	isSizeExpr()
}

// TypeInteger is (integer <kind> <size>).
type TypeInteger[A any] struct {
	Ann  A
	Size SizeExpr[A]
	Pos  lexical.Position
	Kind types.IntegerKind
}

// TypeFloat is (float <size>).
type TypeFloat[A any] struct {
	Ann  A
	Size SizeExpr[A]
	Pos  lexical.Position
}

// TypeArray is (array <element> <count>).
type TypeArray[A any] struct {
	Ann     A
	Element TypeExpr[A]
	Count   SizeExpr[A]
	Pos     lexical.Position
}

// TypeVector is (vector <scalar> <count>).
type TypeVector[A any] struct {
	Ann     A
	Element TypeExpr[A]
	Count   SizeExpr[A]
	Pos     lexical.Position
}

// TypeMatrix is (matrix <scalar> <width> <height>).
type TypeMatrix[A any] struct {
	Ann     A
	Element TypeExpr[A]
	Width   SizeExpr[A]
	Height  SizeExpr[A]
	Pos     lexical.Position
}

// TypeBooleanSet is (boolean-set <octets> [<field>...]).
type TypeBooleanSet[A any] struct {
	Ann    A
	Size   SizeExpr[A]
	Pos    lexical.Position
	Fields []names.FieldName
}

// TypeString is (string <octets> <encoding>).
type TypeString[A any] struct {
	Ann      A
	Size     SizeExpr[A]
	Pos      lexical.Position
	Encoding string
}

// TypeName is a reference to a previously declared record or packed type.
type TypeName[A any] struct {
	Ann A
	Pos lexical.Position
	Ref names.QualifiedTypeName
}

func (e *TypeInteger[A]) Position() lexical.Position    { return e.Pos }
func (e *TypeFloat[A]) Position() lexical.Position      { return e.Pos }
func (e *TypeArray[A]) Position() lexical.Position      { return e.Pos }
func (e *TypeVector[A]) Position() lexical.Position     { return e.Pos }
func (e *TypeMatrix[A]) Position() lexical.Position     { return e.Pos }
func (e *TypeBooleanSet[A]) Position() lexical.Position { return e.Pos }
func (e *TypeString[A]) Position() lexical.Position     { return e.Pos }
func (e *TypeName[A]) Position() lexical.Position       { return e.Pos }

func (e *TypeInteger[A]) Annotation() A    { return e.Ann }
func (e *TypeFloat[A]) Annotation() A      { return e.Ann }
func (e *TypeArray[A]) Annotation() A      { return e.Ann }
func (e *TypeVector[A]) Annotation() A     { return e.Ann }
func (e *TypeMatrix[A]) Annotation() A     { return e.Ann }
func (e *TypeBooleanSet[A]) Annotation() A { return e.Ann }
func (e *TypeString[A]) Annotation() A     { return e.Ann }
func (e *TypeName[A]) Annotation() A       { return e.Ann }

func (*TypeInteger[A]) isTypeExpr()    {}
func (*TypeFloat[A]) isTypeExpr()      {}
func (*TypeArray[A]) isTypeExpr()      {}
func (*TypeVector[A]) isTypeExpr()     {}
func (*TypeMatrix[A]) isTypeExpr()     {}
func (*TypeBooleanSet[A]) isTypeExpr() {}
func (*TypeString[A]) isTypeExpr()     {}
func (*TypeName[A]) isTypeExpr()       {}

// Keyword names the variant of e as written in declarations, or the
// referenced type for a TypeName.
func Keyword[A any](e TypeExpr[A]) string {
	switch e := e.(type) {
	case *TypeInteger[A]:
		return "integer " + e.Kind.String()
	case *TypeFloat[A]:
		return "float"
	case *TypeArray[A]:
		return "array"
	case *TypeVector[A]:
		return "vector"
	case *TypeMatrix[A]:
		return "matrix"
	case *TypeBooleanSet[A]:
		return "boolean-set"
	case *TypeString[A]:
		return "string"
	case *TypeName[A]:
		return e.Ref.String()
	default:
		return "unknown"
	}
}

// SizeConstant is a literal size.
type SizeConstant struct {
	Value *big.Int
	Pos   lexical.Position
}

// Constant returns a SizeConstant with value n.
func Constant(pos lexical.Position, n int64) *SizeConstant {
	return &SizeConstant{Value: big.NewInt(n), Pos: pos}
}

// SizeInBits is (size-in-bits-of <type> [<path>]). With a non-empty Path the
// size is that of the field the path selects inside Type.
type SizeInBits[A any] struct {
	Type TypeExpr[A]
	Pos  lexical.Position
	Path names.FieldPath
}

// SizeInOctets is (size-in-octets-of <type> [<path>]).
type SizeInOctets[A any] struct {
	Type TypeExpr[A]
	Pos  lexical.Position
	Path names.FieldPath
}

func (e *SizeConstant) Position() lexical.Position    { return e.Pos }
func (e *SizeInBits[A]) Position() lexical.Position   { return e.Pos }
func (e *SizeInOctets[A]) Position() lexical.Position { return e.Pos }

func (*SizeConstant) isSizeExpr()    {}
func (*SizeInBits[A]) isSizeExpr()   {}
func (*SizeInOctets[A]) isSizeExpr() {}
