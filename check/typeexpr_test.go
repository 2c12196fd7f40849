package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/io7m/jpra-sub001/ast"
	"github.com/io7m/jpra-sub001/capability"
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/types"
)

func TestRecordIntegerCapability(t *testing.T) {
	c := newChecker(t, DefaultOptions())

	r := checkRecord(t, c, record("Ok", field("x", sint(64))))
	assert.Equal(t, int64(64), bitsOf(r))

	_, err := c.CheckDecl(record("TooWide", field("x", sint(128))))
	e := requireKind(t, err, errors.KindRecordIntegerSizeUnsupported)
	assert.Equal(t, int64(128), e.Value.(interface{ Int64() int64 }).Int64())
	assert.Equal(t, "record-integer", e.Axis)

	supported, ok := e.Supported.(capability.RangeSet)
	require.True(t, ok, "supported set is %T", e.Supported)
	assert.True(t, supported.Equal(capability.Values(8, 16, 32, 64)))
	assert.Equal(t, "{8, 16, 32, 64}", supported.String())
	assert.Equal(t, []string{"TooWide", "x"}, e.Path)
}

func TestIntegerContextSelectsAxis(t *testing.T) {
	tests := []struct {
		name string
		decl untypedDecl
		kind errors.Kind
	}{
		{"record rejects 3", record("R3", field("x", uns(3))), errors.KindRecordIntegerSizeUnsupported},
		{"packed rejects 65", packed("P65", pfield("x", uns(65)), padBits(7)), errors.KindPackedIntegerSizeUnsupported},
		{"packed accepts 3", packed("P3", pfield("x", uns(3)), padBits(5)), ""},
		{"record accepts 16", record("R16", field("x", uns(16))), ""},
	}

	c := newChecker(t, DefaultOptions())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.CheckDecl(tc.decl)
			if tc.kind == "" {
				assert.NoError(t, err)
			} else {
				requireKind(t, err, tc.kind)
			}
			assert.Equal(t, ContextNone, c.Context())
		})
	}
}

func TestIntegerOutsideDeclarations(t *testing.T) {
	c := NewWithDefaults()

	typed, err := c.CheckDecl(&ast.TypeCommand[ast.Untyped]{Expr: sint(3), Pos: at})
	require.NoError(t, err)
	cmd := typed.(*typedTypeCmd)
	assert.Equal(t, "(integer signed 3)", cmd.Expr.Annotation().String())

	_, err = c.CheckTypeExpr(sint(0))
	requireKind(t, err, errors.KindSizeInvalid)
}

func TestTypeExpressions(t *testing.T) {
	tests := []struct {
		name string
		expr untypedExpr
		str  string
		bits int64
	}{
		{"float", float(32), "(float 32)", 32},
		{"array", array(uns(8), 10), "(array (integer unsigned 8) 10)", 80},
		{"nested array", array(array(sint(16), 2), 3), "(array (array (integer signed 16) 2) 3)", 96},
		{"vector", vector(float(32), 4), "(vector (float 32) 4)", 128},
		{"integer vector", vector(sint(16), 2), "(vector (integer signed 16) 2)", 32},
		{"matrix", matrix(float(32), 4, 4), "(matrix (float 32) 4 4)", 512},
		{"double matrix", matrix(float(64), 3, 3), "(matrix (float 64) 3 3)", 576},
		{"boolean set", boolset(1, "x", "y", "z"), "(boolean-set 1 [x y z])", 8},
		{"wide boolean set", boolset(128), "(boolean-set 128 [])", 1024},
		{"string", str(32, "UTF-8"), `(string 32 "UTF-8")`, 256},
	}

	c := NewWithDefaults()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			typed, err := c.CheckTypeExpr(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.str, typed.Annotation().String())
			assert.Equal(t, tc.bits, bitsOf(typed.Annotation()))
			assert.Equal(t, at, typed.Position())
		})
	}
}

func TestTypeExpressionDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		expr untypedExpr
		kind errors.Kind
	}{
		{"float 8", float(8), errors.KindFloatSizeUnsupported},
		{"float 128", float(128), errors.KindFloatSizeUnsupported},
		{"array count 0", array(uns(8), 0), errors.KindSizeInvalid},
		{"vector count 5", vector(float(32), 5), errors.KindVectorSizeUnsupported},
		{"vector count 0", vector(float(32), 0), errors.KindSizeInvalid},
		{"vector of strings", vector(str(4, "UTF-8"), 2), errors.KindVectorNonScalar},
		{"vector of arrays", vector(array(uns(8), 2), 2), errors.KindVectorNonScalar},
		{"vector integer 4", vector(sint(4), 2), errors.KindVectorIntegerSizeUnsupported},
		{"vector float 128", vector(float(128), 2), errors.KindFloatSizeUnsupported},
		{"matrix 2x3", matrix(float(32), 2, 3), errors.KindMatrixSizeUnsupported},
		{"matrix 5x5", matrix(float(32), 5, 5), errors.KindMatrixSizeUnsupported},
		{"matrix float 16", matrix(float(16), 2, 2), errors.KindMatrixFloatSizeUnsupported},
		{"matrix integer 4", matrix(uns(4), 2, 2), errors.KindMatrixIntegerSizeUnsupported},
		{"matrix of boolean sets", matrix(boolset(1), 2, 2), errors.KindMatrixNonScalar},
		{"boolean set 0", boolset(0, "x", "y", "z"), errors.KindBooleanSetSizeInvalid},
		{"boolean set 129", boolset(129), errors.KindBooleanSetSizeInvalid},
		{"boolean set too small", boolset(1, "f0", "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8"), errors.KindBooleanSetSizeTooSmall},
		{"string encoding", str(32, "UTF-16"), errors.KindStringEncodingUnsupported},
		{"string size 0", str(0, "UTF-8"), errors.KindSizeInvalid},
		{"unknown type", ref("Missing"), errors.KindTypeUnknown},
	}

	c := NewWithDefaults()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.CheckTypeExpr(tc.expr)
			requireKind(t, err, tc.kind)
		})
	}
}

func TestBooleanSetBounds(t *testing.T) {
	c := NewWithDefaults()

	typed, err := c.CheckTypeExpr(boolset(1, "x", "y", "z"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), bitsOf(typed.Annotation()))
	set := typed.(*ast.TypeBooleanSet[types.Type])
	assert.Equal(t, []names.FieldName{"x", "y", "z"}, set.Fields)

	_, err = c.CheckTypeExpr(boolset(0, "x", "y", "z"))
	e := requireKind(t, err, errors.KindBooleanSetSizeInvalid)
	assert.Contains(t, e.Detail, "[1, 128]")

	nine := []names.FieldName{"f0", "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8"}
	_, err = c.CheckTypeExpr(boolset(1, nine...))
	e = requireKind(t, err, errors.KindBooleanSetSizeTooSmall)
	assert.Equal(t, int64(8), e.Value.(interface{ Int64() int64 }).Int64())

	typed, err = c.CheckTypeExpr(boolset(2, nine...))
	require.NoError(t, err)
	assert.Equal(t, int64(16), bitsOf(typed.Annotation()))
}

func TestMatrixSizesArePairs(t *testing.T) {
	policy := capability.Standard()
	policy.Matrices = capability.MatrixSizes(capability.MatrixSize{Width: 2, Height: 4})
	c := New(Options{Policy: policy})

	typed, err := c.CheckTypeExpr(matrix(float(32), 2, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(256), bitsOf(typed.Annotation()))

	_, err = c.CheckTypeExpr(matrix(float(32), 4, 2))
	e := requireKind(t, err, errors.KindMatrixSizeUnsupported)
	assert.Equal(t, "4x2", e.Value)

	_, err = c.CheckTypeExpr(matrix(float(32), 2, 2))
	requireKind(t, err, errors.KindMatrixSizeUnsupported)
}

func TestNameReference(t *testing.T) {
	c := newChecker(t, DefaultOptions())
	inner := checkRecord(t, c, record("Inner", field("a", uns(32)), padOctets(4)))

	typed, err := c.CheckTypeExpr(ref("Inner"))
	require.NoError(t, err)
	assert.Same(t, inner, typed.Annotation())

	outer := checkRecord(t, c, record("Outer",
		field("first", ref("Inner")),
		field("second", array(ref("Inner"), 2))))
	assert.Equal(t, int64(3*64), bitsOf(outer))
}

func TestCustomPolicy(t *testing.T) {
	policy := capability.Standard()
	policy.RecordIntegers = capability.Ranges(capability.NewRange(8, 128))
	policy.Encodings = capability.Encodings("UTF-8", "ASCII")
	c := newChecker(t, Options{Policy: policy})

	r := checkRecord(t, c, record("Wide",
		field("x", sint(128)),
		field("s", str(4, "ASCII"))))
	assert.Equal(t, int64(160), bitsOf(r))
}
