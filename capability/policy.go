package capability

// Policy describes the sizes and encodings a backend supports.
type Policy interface {
	// RecordIntegerSizes are the integer sizes, in bits, allowed in record context.
	RecordIntegerSizes() RangeSet
	// RecordFloatSizes are the float sizes, in bits, allowed anywhere a float appears.
	RecordFloatSizes() RangeSet
	// VectorSizes are the allowed vector element counts.
	VectorSizes() RangeSet
	// VectorIntegerSizes are the allowed integer element sizes of vectors, in bits.
	VectorIntegerSizes() RangeSet
	// VectorFloatSizes are the allowed float element sizes of vectors, in bits.
	VectorFloatSizes() RangeSet
	// MatrixSizes are the allowed (width, height) pairs.
	MatrixSizes() MatrixSizeSet
	// MatrixIntegerSizes are the allowed integer element sizes of matrices, in bits.
	MatrixIntegerSizes() RangeSet
	// MatrixFloatSizes are the allowed float element sizes of matrices, in bits.
	MatrixFloatSizes() RangeSet
	// PackedIntegerSizes are the integer sizes, in bits, allowed in packed context.
	PackedIntegerSizes() RangeSet
	// PackedSizes are the allowed total sizes of packed types, in bits.
	PackedSizes() RangeSet
	// StringEncodings are the allowed string encoding names.
	StringEncodings() EncodingSet
}

// Custom is a Policy whose axes are given field by field.
type Custom struct {
	RecordIntegers RangeSet
	RecordFloats   RangeSet
	Vectors        RangeSet
	VectorIntegers RangeSet
	VectorFloats   RangeSet
	Matrices       MatrixSizeSet
	MatrixIntegers RangeSet
	MatrixFloats   RangeSet
	PackedIntegers RangeSet
	PackedTotals   RangeSet
	Encodings      EncodingSet
}

var _ Policy = Custom{}

func (c Custom) RecordIntegerSizes() RangeSet { return c.RecordIntegers }
func (c Custom) RecordFloatSizes() RangeSet   { return c.RecordFloats }
func (c Custom) VectorSizes() RangeSet        { return c.Vectors }
func (c Custom) VectorIntegerSizes() RangeSet { return c.VectorIntegers }
func (c Custom) VectorFloatSizes() RangeSet   { return c.VectorFloats }
func (c Custom) MatrixSizes() MatrixSizeSet   { return c.Matrices }
func (c Custom) MatrixIntegerSizes() RangeSet { return c.MatrixIntegers }
func (c Custom) MatrixFloatSizes() RangeSet   { return c.MatrixFloats }
func (c Custom) PackedIntegerSizes() RangeSet { return c.PackedIntegers }
func (c Custom) PackedSizes() RangeSet        { return c.PackedTotals }
func (c Custom) StringEncodings() EncodingSet { return c.Encodings }

// EncodingUTF8 is the name of the UTF-8 string encoding.
const EncodingUTF8 = "UTF-8"

// Standard returns the baseline policy.
//
//	record integers   {8, 16, 32, 64}
//	packed integers   [1, 64]
//	packed totals     {8, 16, 32, 64}
//	floats            {16, 32, 64} (matrices {32, 64})
//	vector integers   {8, 16, 32, 64}
//	matrix integers   {8, 16, 32, 64}
//	vector counts     {2, 3, 4}
//	matrix sizes      2x2, 3x3, 4x4
//	string encodings  UTF-8
func Standard() Custom {
	return Custom{
		RecordIntegers: Values(8, 16, 32, 64),
		RecordFloats:   Values(16, 32, 64),
		Vectors:        Values(2, 3, 4),
		VectorIntegers: Values(8, 16, 32, 64),
		VectorFloats:   Values(16, 32, 64),
		Matrices:       MatrixSizes(MatrixSize{2, 2}, MatrixSize{3, 3}, MatrixSize{4, 4}),
		MatrixIntegers: Values(8, 16, 32, 64),
		MatrixFloats:   Values(32, 64),
		PackedIntegers: Ranges(NewRange(1, 64)),
		PackedTotals:   Values(8, 16, 32, 64),
		Encodings:      Encodings(EncodingUTF8),
	}
}
