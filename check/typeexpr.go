package check

import (
	"fmt"
	"math/big"

	"github.com/io7m/jpra-sub001/ast"
	"github.com/io7m/jpra-sub001/capability"
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/size"
	"github.com/io7m/jpra-sub001/types"
)

// Boolean set sizes are bounded in octets.
const (
	BooleanSetMinOctets = 1
	BooleanSetMaxOctets = 128
)

// CheckTypeExpr checks e in the current context and returns the typed
// expression, annotated with its finalized type.
func (c *Checker) CheckTypeExpr(e ast.TypeExpr[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	switch e := e.(type) {
	case *ast.TypeInteger[ast.Untyped]:
		return c.checkInteger(e)
	case *ast.TypeFloat[ast.Untyped]:
		return c.checkFloat(e)
	case *ast.TypeArray[ast.Untyped]:
		return c.checkArray(e)
	case *ast.TypeVector[ast.Untyped]:
		return c.checkVector(e)
	case *ast.TypeMatrix[ast.Untyped]:
		return c.checkMatrix(e)
	case *ast.TypeBooleanSet[ast.Untyped]:
		return c.checkBooleanSet(e)
	case *ast.TypeString[ast.Untyped]:
		return c.checkString(e)
	case *ast.TypeName[ast.Untyped]:
		return c.checkName(e)
	default:
		errors.Contract("unexpected type expression %T", e)
		return nil, nil
	}
}

func (c *Checker) checkInteger(e *ast.TypeInteger[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	sz, s, err := c.bits(e.Size, sizeInvalid("integer size"))
	if err != nil {
		return nil, err
	}

	bits := s.Big()
	t := types.NewInteger(e.Kind, s)
	typed := &ast.TypeInteger[types.Type]{Ann: t, Size: sz, Pos: e.Pos, Kind: e.Kind}

	switch c.context {
	case ContextRecord:
		if supported := c.policy.RecordIntegerSizes(); !supported.Contains(bits) {
			return nil, errors.RecordIntegerSizeUnsupported(e.Pos, bits, supported)
		}
	case ContextPacked:
		if supported := c.policy.PackedIntegerSizes(); !supported.Contains(bits) {
			return nil, errors.PackedIntegerSizeUnsupported(e.Pos, bits, supported)
		}
	}
	return typed, nil
}

func (c *Checker) checkFloat(e *ast.TypeFloat[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	sz, s, err := c.bits(e.Size, sizeInvalid("float size"))
	if err != nil {
		return nil, err
	}
	if bits, supported := s.Big(), c.policy.RecordFloatSizes(); !supported.Contains(bits) {
		return nil, errors.FloatSizeUnsupported(e.Pos, bits, supported)
	}

	t := types.NewFloat(s)
	return &ast.TypeFloat[types.Type]{Ann: t, Size: sz, Pos: e.Pos}, nil
}

func (c *Checker) checkArray(e *ast.TypeArray[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	elem, err := c.CheckTypeExpr(e.Element)
	if err != nil {
		return nil, err
	}
	count, n, err := c.count(e.Count, "array count")
	if err != nil {
		return nil, err
	}

	t := types.NewArray(elem.Annotation(), n)
	return &ast.TypeArray[types.Type]{Ann: t, Element: elem, Count: count, Pos: e.Pos}, nil
}

func (c *Checker) checkVector(e *ast.TypeVector[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	count, n, err := c.count(e.Count, "vector count")
	if err != nil {
		return nil, err
	}
	elem, err := c.CheckTypeExpr(e.Element)
	if err != nil {
		return nil, err
	}

	scalar, ok := elem.Annotation().(types.Scalar)
	if !ok {
		return nil, errors.VectorNonScalar(e.Element.Position(), elem.Annotation().String())
	}
	if supported := c.policy.VectorSizes(); !supported.Contains(n) {
		return nil, errors.VectorSizeUnsupported(e.Pos, n, supported)
	}
	if err := checkElement(e.Element.Position(), scalar,
		c.policy.VectorIntegerSizes(), errors.VectorIntegerSizeUnsupported,
		c.policy.VectorFloatSizes(), errors.VectorFloatSizeUnsupported); err != nil {
		return nil, err
	}

	t := types.NewVector(scalar, n)
	return &ast.TypeVector[types.Type]{Ann: t, Element: elem, Count: count, Pos: e.Pos}, nil
}

func (c *Checker) checkMatrix(e *ast.TypeMatrix[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	width, w, err := c.count(e.Width, "matrix width")
	if err != nil {
		return nil, err
	}
	height, h, err := c.count(e.Height, "matrix height")
	if err != nil {
		return nil, err
	}
	elem, err := c.CheckTypeExpr(e.Element)
	if err != nil {
		return nil, err
	}

	scalar, ok := elem.Annotation().(types.Scalar)
	if !ok {
		return nil, errors.MatrixNonScalar(e.Element.Position(), elem.Annotation().String())
	}
	if supported := c.policy.MatrixSizes(); !supported.Contains(w, h) {
		return nil, errors.MatrixSizeUnsupported(e.Pos, w.String()+"x"+h.String(), supported)
	}
	if err := checkElement(e.Element.Position(), scalar,
		c.policy.MatrixIntegerSizes(), errors.MatrixIntegerSizeUnsupported,
		c.policy.MatrixFloatSizes(), errors.MatrixFloatSizeUnsupported); err != nil {
		return nil, err
	}

	t := types.NewMatrix(scalar, w, h)
	return &ast.TypeMatrix[types.Type]{Ann: t, Element: elem, Width: width, Height: height, Pos: e.Pos}, nil
}

type unsupportedFunc func(pos lexical.Position, bits any, supported fmt.Stringer) *errors.Error

// checkElement validates the size of a vector or matrix element against the
// integer or float axis matching its kind.
func checkElement(
	pos lexical.Position,
	elem types.Scalar,
	integers capability.RangeSet, integerErr unsupportedFunc,
	floats capability.RangeSet, floatErr unsupportedFunc,
) error {
	bits := elem.Size().Big()
	switch elem.(type) {
	case *types.Integer:
		if !integers.Contains(bits) {
			return integerErr(pos, bits, integers)
		}
	case *types.Float:
		if !floats.Contains(bits) {
			return floatErr(pos, bits, floats)
		}
	}
	return nil
}

func (c *Checker) checkBooleanSet(e *ast.TypeBooleanSet[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	invalid := func(_ lexical.Position, v *big.Int) error {
		return errors.BooleanSetSizeInvalid(e.Pos, v, BooleanSetMinOctets, BooleanSetMaxOctets)
	}
	sz, o, err := c.octets(e.Size, invalid)
	if err != nil {
		return nil, err
	}
	if o.Cmp(size.Of[size.Octets](BooleanSetMaxOctets)) > 0 {
		return nil, invalid(e.Pos, o.Big())
	}

	bits := size.OctetsToBits(o)
	if bits.Cmp(size.Of[size.Bits](int64(len(e.Fields)))) < 0 {
		return nil, errors.BooleanSetSizeTooSmall(e.Pos, bits.Big(), len(e.Fields))
	}

	t := types.NewBooleanSet(e.Fields, o)
	return &ast.TypeBooleanSet[types.Type]{Ann: t, Size: sz, Pos: e.Pos, Fields: t.Fields()}, nil
}

func (c *Checker) checkString(e *ast.TypeString[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	sz, octets, err := c.octets(e.Size, sizeInvalid("string size"))
	if err != nil {
		return nil, err
	}
	if supported := c.policy.StringEncodings(); !supported.Contains(e.Encoding) {
		return nil, errors.StringEncodingUnsupported(e.Pos, e.Encoding, supported)
	}

	t := types.NewString(octets, e.Encoding)
	return &ast.TypeString[types.Type]{Ann: t, Size: sz, Pos: e.Pos, Encoding: e.Encoding}, nil
}

// checkName resolves a reference. The referenced type was checked when it
// was declared, so no capability check applies.
func (c *Checker) checkName(e *ast.TypeName[ast.Untyped]) (ast.TypeExpr[types.Type], error) {
	t, ok := c.namespace.Lookup(e.Ref)
	if !ok {
		return nil, errors.TypeUnknown(e.Pos, e.Ref.String())
	}
	return &ast.TypeName[types.Type]{Ann: t, Pos: e.Pos, Ref: e.Ref}, nil
}
