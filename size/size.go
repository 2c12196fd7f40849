// Package size provides unit-tagged, arbitrary-precision sizes.
//
// A Size carries its unit in its type parameter, so a Size[Bits] can never be
// passed where a Size[Octets] is expected. Sizes are immutable: every
// operation returns a new value.
package size

import (
	"math/big"

	"github.com/io7m/jpra-sub001/errors"
)

// Unit is the set of units a Size may be tagged with.
type Unit interface {
	Bits | Octets
	name() string
}

// Bits tags a size measured in bits.
type Bits struct{}

// Octets tags a size measured in octets.
type Octets struct{}

func (Bits) name() string   { return "bits" }
func (Octets) name() string { return "octets" }

var eight = big.NewInt(8)

// Size is a non-negative magnitude in unit U. The zero value is a zero size.
type Size[U Unit] struct {
	v *big.Int
}

// Zero returns a zero size.
func Zero[U Unit]() Size[U] {
	return Size[U]{}
}

// Of returns a size of n units. n must not be negative.
func Of[U Unit](n int64) Size[U] {
	errors.Require(n >= 0, "negative size %d", n)
	return Size[U]{v: big.NewInt(n)}
}

// FromBig returns a size of n units. n is copied and must not be negative.
func FromBig[U Unit](n *big.Int) Size[U] {
	errors.Require(n != nil && n.Sign() >= 0, "negative or nil size %v", n)
	return Size[U]{v: new(big.Int).Set(n)}
}

func (s Size[U]) big() *big.Int {
	if s.v == nil {
		return new(big.Int)
	}
	return s.v
}

// Big returns a copy of the magnitude.
func (s Size[U]) Big() *big.Int {
	return new(big.Int).Set(s.big())
}

// Add returns s + o.
func (s Size[U]) Add(o Size[U]) Size[U] {
	return Size[U]{v: new(big.Int).Add(s.big(), o.big())}
}

// Mul returns s scaled by a non-negative count.
func (s Size[U]) Mul(count *big.Int) Size[U] {
	errors.Require(count != nil && count.Sign() >= 0, "negative or nil multiplier %v", count)
	return Size[U]{v: new(big.Int).Mul(s.big(), count)}
}

// Cmp compares s and o, returning -1, 0 or +1.
func (s Size[U]) Cmp(o Size[U]) int {
	return s.big().Cmp(o.big())
}

// Equal reports whether s and o have the same magnitude.
func (s Size[U]) Equal(o Size[U]) bool {
	return s.Cmp(o) == 0
}

// IsZero reports whether the size is zero.
func (s Size[U]) IsZero() bool {
	return s.big().Sign() == 0
}

// Int64 returns the magnitude and whether it fits in an int64.
func (s Size[U]) Int64() (int64, bool) {
	b := s.big()
	return b.Int64(), b.IsInt64()
}

// String renders the size with its unit, e.g. "64 bits".
func (s Size[U]) String() string {
	var u U
	return s.big().String() + " " + u.name()
}

// OctetsToBits converts an octet size to bits.
func OctetsToBits(s Size[Octets]) Size[Bits] {
	return Size[Bits]{v: new(big.Int).Mul(s.big(), eight)}
}

// BitsToOctets converts a bit size to octets. The second result is false
// when s is not a whole number of octets.
func BitsToOctets(s Size[Bits]) (Size[Octets], bool) {
	q, r := new(big.Int).QuoRem(s.big(), eight, new(big.Int))
	if r.Sign() != 0 {
		return Size[Octets]{}, false
	}
	return Size[Octets]{v: q}, true
}

// IsOctetAligned reports whether a bit size is a whole number of octets.
func IsOctetAligned(s Size[Bits]) bool {
	return new(big.Int).Rem(s.big(), eight).Sign() == 0
}
