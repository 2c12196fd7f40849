package capability

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := NewRange(1, 64)
	assert.True(t, r.Contains(big.NewInt(1)))
	assert.True(t, r.Contains(big.NewInt(64)))
	assert.False(t, r.Contains(big.NewInt(0)))
	assert.False(t, r.Contains(big.NewInt(65)))
	assert.Equal(t, "[1, 64]", r.String())
	assert.Equal(t, "8", Single(8).String())

	assert.Panics(t, func() { NewRange(2, 1) })
}

func TestRangeBoundsAreCopies(t *testing.T) {
	r := NewRange(1, 2)
	r.Lower().SetInt64(100)
	assert.Equal(t, int64(1), r.Lower().Int64())
}

func TestRangeSet(t *testing.T) {
	s := Values(8, 16, 32, 64)
	for _, n := range []int64{8, 16, 32, 64} {
		assert.True(t, s.ContainsInt64(n), n)
	}
	for _, n := range []int64{0, 1, 7, 24, 128} {
		assert.False(t, s.ContainsInt64(n), n)
	}
	assert.Equal(t, "{8, 16, 32, 64}", s.String())
	assert.True(t, s.Equal(Ranges(Single(8), Single(16), Single(32), Single(64))))
	assert.False(t, s.Equal(Values(8, 16, 32)))
	assert.True(t, RangeSet{}.IsEmpty())
	assert.False(t, RangeSet{}.ContainsInt64(8))
}

func TestMatrixSizeSetIsByPair(t *testing.T) {
	s := MatrixSizes(MatrixSize{2, 2}, MatrixSize{3, 3}, MatrixSize{4, 4})

	assert.True(t, s.Contains(big.NewInt(3), big.NewInt(3)))
	assert.False(t, s.Contains(big.NewInt(2), big.NewInt(4)))
	assert.False(t, s.Contains(big.NewInt(4), big.NewInt(3)))

	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	assert.False(t, s.Contains(huge, huge))
	assert.Equal(t, "{2x2, 3x3, 4x4}", s.String())
}

func TestEncodingSet(t *testing.T) {
	s := Encodings(EncodingUTF8)
	assert.True(t, s.Contains("UTF-8"))
	assert.False(t, s.Contains("utf-8"))
	assert.Equal(t, []string{"UTF-8"}, s.Names())
}

func TestStandard(t *testing.T) {
	var p Policy = Standard()

	assert.True(t, p.RecordIntegerSizes().Equal(Values(8, 16, 32, 64)))
	assert.True(t, p.RecordFloatSizes().Equal(Values(16, 32, 64)))
	assert.True(t, p.VectorSizes().Equal(Values(2, 3, 4)))
	assert.True(t, p.MatrixFloatSizes().Equal(Values(32, 64)))
	assert.True(t, p.PackedSizes().Equal(Values(8, 16, 32, 64)))

	for n := int64(1); n <= 64; n++ {
		assert.True(t, p.PackedIntegerSizes().ContainsInt64(n), n)
	}
	assert.False(t, p.PackedIntegerSizes().ContainsInt64(65))
	assert.False(t, p.RecordIntegerSizes().ContainsInt64(12))
	assert.True(t, p.StringEncodings().Contains(EncodingUTF8))
}

func TestCustomOverridesAxis(t *testing.T) {
	c := Standard()
	c.RecordIntegers = Ranges(NewRange(1, 128))

	var p Policy = c
	assert.True(t, p.RecordIntegerSizes().ContainsInt64(128))
	assert.False(t, Standard().RecordIntegerSizes().ContainsInt64(128))
}
