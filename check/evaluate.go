package check

import (
	"math/big"

	"github.com/io7m/jpra-sub001/ast"
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/size"
	"github.com/io7m/jpra-sub001/types"
)

// Evaluate returns the magnitude of a checked size expression: the literal of
// a constant, or the size named by size-in-bits-of and size-in-octets-of in
// their own unit. Counts and :size commands use the magnitude as is. Sizes
// go through EvaluateBits and EvaluateOctets instead.
//
// Evaluation is pure. It fails only for a field path that does not resolve
// or a size-in-octets-of a type that is not octet aligned, both of which
// CheckSizeExpr already rejects.
func Evaluate(e ast.SizeExpr[types.Type]) (*big.Int, error) {
	switch e := e.(type) {
	case *ast.SizeConstant:
		return new(big.Int).Set(e.Value), nil

	case *ast.SizeInBits[types.Type]:
		bits, err := SizeInBitsOf(e)
		if err != nil {
			return nil, err
		}
		return bits.Big(), nil

	case *ast.SizeInOctets[types.Type]:
		octets, err := SizeInOctetsOf(e)
		if err != nil {
			return nil, err
		}
		return octets.Big(), nil

	default:
		errors.Contract("unexpected size expression %T", e)
		return nil, nil
	}
}

// SizeInBitsOf returns the size of the type, or of the field the path
// selects, that e refers to.
func SizeInBitsOf(e *ast.SizeInBits[types.Type]) (size.Size[size.Bits], error) {
	t, err := resolvePath(e.Pos, e.Type.Annotation(), e.Path)
	if err != nil {
		return size.Size[size.Bits]{}, err
	}
	return t.Size(), nil
}

// SizeInOctetsOf returns the size of the type, or of the field the path
// selects, that e refers to. The size must be a whole number of octets.
func SizeInOctetsOf(e *ast.SizeInOctets[types.Type]) (size.Size[size.Octets], error) {
	t, err := resolvePath(e.Pos, e.Type.Annotation(), e.Path)
	if err != nil {
		return size.Size[size.Octets]{}, err
	}
	return octetsOf(e.Pos, t)
}

// EvaluateBits evaluates e where a size in bits is expected. A constant is
// read as bits. size-in-octets-of is converted to bits.
func EvaluateBits(e ast.SizeExpr[types.Type]) (size.Size[size.Bits], error) {
	switch e := e.(type) {
	case *ast.SizeConstant:
		if e.Value.Sign() < 0 {
			return size.Size[size.Bits]{}, errors.SizeInvalid(e.Pos, "size", e.Value)
		}
		return size.FromBig[size.Bits](e.Value), nil

	case *ast.SizeInBits[types.Type]:
		return SizeInBitsOf(e)

	case *ast.SizeInOctets[types.Type]:
		octets, err := SizeInOctetsOf(e)
		if err != nil {
			return size.Size[size.Bits]{}, err
		}
		return size.OctetsToBits(octets), nil

	default:
		errors.Contract("unexpected size expression %T", e)
		return size.Size[size.Bits]{}, nil
	}
}

// EvaluateOctets evaluates e where a size in octets is expected. A constant
// is read as octets. size-in-bits-of is converted to octets and fails for a
// type that is not octet aligned.
func EvaluateOctets(e ast.SizeExpr[types.Type]) (size.Size[size.Octets], error) {
	switch e := e.(type) {
	case *ast.SizeConstant:
		if e.Value.Sign() < 0 {
			return size.Size[size.Octets]{}, errors.SizeInvalid(e.Pos, "size", e.Value)
		}
		return size.FromBig[size.Octets](e.Value), nil

	case *ast.SizeInBits[types.Type]:
		t, err := resolvePath(e.Pos, e.Type.Annotation(), e.Path)
		if err != nil {
			return size.Size[size.Octets]{}, err
		}
		return octetsOf(e.Pos, t)

	case *ast.SizeInOctets[types.Type]:
		return SizeInOctetsOf(e)

	default:
		errors.Contract("unexpected size expression %T", e)
		return size.Size[size.Octets]{}, nil
	}
}

func octetsOf(pos lexical.Position, t types.Type) (size.Size[size.Octets], error) {
	octets, ok := size.BitsToOctets(t.Size())
	if !ok {
		return size.Size[size.Octets]{}, errors.SizeNotOctetAligned(pos, t.String(), t.Size().Big())
	}
	return octets, nil
}

func resolvePath(pos lexical.Position, t types.Type, path names.FieldPath) (types.Type, error) {
	if len(path) == 0 {
		return t, nil
	}
	r := types.LookupFieldPath(t, path)
	if !r.OK {
		return nil, errors.FieldPathInvalid(pos, r.Last.String(), string(r.Name), r.Remaining.Strings())
	}
	return r.Type, nil
}

// CheckSizeExpr checks the type expressions embedded in e and verifies that
// the result evaluates.
func (c *Checker) CheckSizeExpr(e ast.SizeExpr[ast.Untyped]) (ast.SizeExpr[types.Type], error) {
	typed, _, err := c.magnitude(e)
	return typed, err
}

// typeSizeExpr checks the type expressions embedded in e without evaluating
// it.
func (c *Checker) typeSizeExpr(e ast.SizeExpr[ast.Untyped]) (ast.SizeExpr[types.Type], error) {
	switch e := e.(type) {
	case *ast.SizeConstant:
		return &ast.SizeConstant{Value: new(big.Int).Set(e.Value), Pos: e.Pos}, nil

	case *ast.SizeInBits[ast.Untyped]:
		t, err := c.CheckTypeExpr(e.Type)
		if err != nil {
			return nil, err
		}
		return &ast.SizeInBits[types.Type]{Type: t, Pos: e.Pos, Path: e.Path}, nil

	case *ast.SizeInOctets[ast.Untyped]:
		t, err := c.CheckTypeExpr(e.Type)
		if err != nil {
			return nil, err
		}
		return &ast.SizeInOctets[types.Type]{Type: t, Pos: e.Pos, Path: e.Path}, nil

	default:
		errors.Contract("unexpected size expression %T", e)
		return nil, nil
	}
}

// magnitude checks e and evaluates it once.
func (c *Checker) magnitude(e ast.SizeExpr[ast.Untyped]) (ast.SizeExpr[types.Type], *big.Int, error) {
	typed, err := c.typeSizeExpr(e)
	if err != nil {
		return nil, nil, err
	}
	v, err := Evaluate(typed)
	if err != nil {
		return nil, nil, err
	}
	return typed, v, nil
}

// count evaluates an element count or dimension and rejects values below one.
func (c *Checker) count(e ast.SizeExpr[ast.Untyped], what string) (ast.SizeExpr[types.Type], *big.Int, error) {
	typed, v, err := c.magnitude(e)
	if err != nil {
		return nil, nil, err
	}
	if v.Sign() <= 0 {
		return nil, nil, errors.SizeInvalid(e.Position(), what, v)
	}
	return typed, v, nil
}

// invalidFunc builds the diagnostic for a size below one.
type invalidFunc func(pos lexical.Position, v *big.Int) error

func sizeInvalid(what string) invalidFunc {
	return func(pos lexical.Position, v *big.Int) error {
		return errors.SizeInvalid(pos, what, v)
	}
}

// nonPositive reports whether typed is a constant below one. Only constants
// can be negative, so this runs before unit conversion.
func nonPositive(typed ast.SizeExpr[types.Type]) (*big.Int, bool) {
	k, ok := typed.(*ast.SizeConstant)
	if !ok || k.Value.Sign() > 0 {
		return nil, false
	}
	return k.Value, true
}

// bits checks e and evaluates it once as a size in bits. Sizes below one
// are rejected with invalid.
func (c *Checker) bits(e ast.SizeExpr[ast.Untyped], invalid invalidFunc) (ast.SizeExpr[types.Type], size.Size[size.Bits], error) {
	typed, err := c.typeSizeExpr(e)
	if err != nil {
		return nil, size.Size[size.Bits]{}, err
	}
	if v, bad := nonPositive(typed); bad {
		return nil, size.Size[size.Bits]{}, invalid(e.Position(), v)
	}
	s, err := EvaluateBits(typed)
	if err != nil {
		return nil, size.Size[size.Bits]{}, err
	}
	if s.IsZero() {
		return nil, size.Size[size.Bits]{}, invalid(e.Position(), s.Big())
	}
	return typed, s, nil
}

// octets checks e and evaluates it once as a size in octets. Sizes below
// one are rejected with invalid.
func (c *Checker) octets(e ast.SizeExpr[ast.Untyped], invalid invalidFunc) (ast.SizeExpr[types.Type], size.Size[size.Octets], error) {
	typed, err := c.typeSizeExpr(e)
	if err != nil {
		return nil, size.Size[size.Octets]{}, err
	}
	if v, bad := nonPositive(typed); bad {
		return nil, size.Size[size.Octets]{}, invalid(e.Position(), v)
	}
	s, err := EvaluateOctets(typed)
	if err != nil {
		return nil, size.Size[size.Octets]{}, err
	}
	if s.IsZero() {
		return nil, size.Size[size.Octets]{}, invalid(e.Position(), s.Big())
	}
	return typed, s, nil
}
