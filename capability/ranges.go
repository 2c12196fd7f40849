package capability

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/io7m/jpra-sub001/errors"
)

// Range is an inclusive interval [Lower, Upper].
type Range struct {
	lower *big.Int
	upper *big.Int
}

// NewRange returns the inclusive range [lower, upper].
func NewRange(lower, upper int64) Range {
	return NewRangeBig(big.NewInt(lower), big.NewInt(upper))
}

// NewRangeBig returns the inclusive range [lower, upper]. The bounds are copied.
func NewRangeBig(lower, upper *big.Int) Range {
	errors.Require(lower.Cmp(upper) <= 0, "range lower bound %v exceeds upper bound %v", lower, upper)
	return Range{
		lower: new(big.Int).Set(lower),
		upper: new(big.Int).Set(upper),
	}
}

// Single returns the range containing only n.
func Single(n int64) Range {
	return NewRange(n, n)
}

// Lower returns a copy of the lower bound.
func (r Range) Lower() *big.Int { return new(big.Int).Set(r.lower) }

// Upper returns a copy of the upper bound.
func (r Range) Upper() *big.Int { return new(big.Int).Set(r.upper) }

// Contains reports whether lower <= n <= upper.
func (r Range) Contains(n *big.Int) bool {
	return r.lower.Cmp(n) <= 0 && n.Cmp(r.upper) <= 0
}

// IsSingle reports whether the range holds exactly one value.
func (r Range) IsSingle() bool {
	return r.lower.Cmp(r.upper) == 0
}

// Equal reports whether both ranges have the same bounds.
func (r Range) Equal(o Range) bool {
	return r.lower.Cmp(o.lower) == 0 && r.upper.Cmp(o.upper) == 0
}

func (r Range) String() string {
	if r.IsSingle() {
		return r.lower.String()
	}
	return "[" + r.lower.String() + ", " + r.upper.String() + "]"
}

// RangeSet is an ordered, immutable union of ranges.
type RangeSet struct {
	ranges []Range
}

// Ranges returns the union of rs, in the given order.
func Ranges(rs ...Range) RangeSet {
	return RangeSet{ranges: append([]Range(nil), rs...)}
}

// Values returns the set containing exactly vs.
func Values(vs ...int64) RangeSet {
	rs := make([]Range, len(vs))
	for i, v := range vs {
		rs[i] = Single(v)
	}
	return RangeSet{ranges: rs}
}

// Contains reports whether any range in the set contains n.
func (s RangeSet) Contains(n *big.Int) bool {
	for _, r := range s.ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// ContainsInt64 is Contains for small values.
func (s RangeSet) ContainsInt64(n int64) bool {
	return s.Contains(big.NewInt(n))
}

// Ranges returns a copy of the ranges in the set.
func (s RangeSet) Ranges() []Range {
	return append([]Range(nil), s.ranges...)
}

// IsEmpty reports whether the set has no ranges.
func (s RangeSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Equal reports whether both sets hold the same ranges in the same order.
func (s RangeSet) Equal(o RangeSet) bool {
	if len(s.ranges) != len(o.ranges) {
		return false
	}
	for i := range s.ranges {
		if !s.ranges[i].Equal(o.ranges[i]) {
			return false
		}
	}
	return true
}

func (s RangeSet) String() string {
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MatrixSize is a (width, height) pair.
type MatrixSize struct {
	Width  int64
	Height int64
}

func (m MatrixSize) String() string {
	return strconv.FormatInt(m.Width, 10) + "x" + strconv.FormatInt(m.Height, 10)
}

// MatrixSizeSet is an ordered, immutable set of matrix sizes. Membership is
// by exact pair, not by independent width and height ranges.
type MatrixSizeSet struct {
	sizes []MatrixSize
}

// MatrixSizes returns the set containing exactly ms.
func MatrixSizes(ms ...MatrixSize) MatrixSizeSet {
	return MatrixSizeSet{sizes: append([]MatrixSize(nil), ms...)}
}

// Contains reports whether (width, height) is one of the pairs in the set.
func (s MatrixSizeSet) Contains(width, height *big.Int) bool {
	if !width.IsInt64() || !height.IsInt64() {
		return false
	}
	w, h := width.Int64(), height.Int64()
	for _, m := range s.sizes {
		if m.Width == w && m.Height == h {
			return true
		}
	}
	return false
}

// Sizes returns a copy of the pairs in the set.
func (s MatrixSizeSet) Sizes() []MatrixSize {
	return append([]MatrixSize(nil), s.sizes...)
}

func (s MatrixSizeSet) String() string {
	parts := make([]string, len(s.sizes))
	for i, m := range s.sizes {
		parts[i] = m.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// EncodingSet is an ordered, immutable set of string encoding names.
type EncodingSet struct {
	names []string
}

// Encodings returns the set containing exactly names.
func Encodings(names ...string) EncodingSet {
	return EncodingSet{names: append([]string(nil), names...)}
}

// Contains reports whether name is in the set. Names compare exactly.
func (s EncodingSet) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the encoding names.
func (s EncodingSet) Names() []string {
	return append([]string(nil), s.names...)
}

func (s EncodingSet) String() string {
	return "{" + strings.Join(s.names, ", ") + "}"
}
