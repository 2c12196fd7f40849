package check

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/io7m/jpra-sub001/ast"
	"github.com/io7m/jpra-sub001/capability"
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/types"
)

func TestPackageLifecycle(t *testing.T) {
	c := New(DefaultOptions())
	assert.Nil(t, c.CurrentPackage())

	_, err := c.CheckDecl(&ast.PackageBegin{Name: "com.example", Pos: at})
	require.NoError(t, err)
	require.NotNil(t, c.CurrentPackage())

	a := checkRecord(t, c, record("A", field("x", uns(8))))
	b := checkPacked(t, c, packed("B", pfield("y", uns(8))))

	typed, err := c.CheckDecl(&ast.PackageEnd{Pos: at})
	require.NoError(t, err)
	end := typed.(*ast.PackageEnd)
	require.NotNil(t, end.Package)
	assert.Equal(t, names.PackageName("com.example"), end.Package.Name())
	assert.Equal(t, []types.UserDefined{a, b}, end.Package.Types())
	assert.Nil(t, c.CurrentPackage())

	done, ok := c.Namespace().Package("com.example")
	require.True(t, ok)
	assert.Same(t, end.Package, done)

	got, ok := c.Namespace().Lookup(names.Qualify("com.example", "B"))
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestTypesVisibleAcrossPackages(t *testing.T) {
	c := New(DefaultOptions())
	_, err := c.CheckDecl(&ast.PackageBegin{Name: "com.example", Pos: at})
	require.NoError(t, err)
	checkRecord(t, c, record("A", field("x", uns(32))))
	_, err = c.CheckDecl(&ast.PackageEnd{Pos: at})
	require.NoError(t, err)

	_, err = c.CheckDecl(&ast.PackageBegin{Name: "org.other", Pos: at})
	require.NoError(t, err)
	r := checkRecord(t, c, record("B", field("a", ref("A"))))
	assert.Equal(t, "org.other.B", r.Name().String())
	assert.Equal(t, int64(32), bitsOf(r))
}

func TestNoCurrentPackage(t *testing.T) {
	c := New(DefaultOptions())

	tests := []untypedDecl{
		record("R", field("x", uns(8))),
		packed("P", pfield("x", uns(8))),
		&ast.PackageEnd{Pos: at},
	}
	for _, d := range tests {
		_, err := c.CheckDecl(d)
		requireKind(t, err, errors.KindNoCurrentPackage)
	}
	assert.Equal(t, 0, c.Namespace().Len())
}

func TestPackageContracts(t *testing.T) {
	c := newChecker(t, DefaultOptions())
	requireContract(t, func() {
		_, _ = c.CheckDecl(&ast.PackageBegin{Name: "com.nested", Pos: at})
	})

	checkRecord(t, c, record("Dup", field("x", uns(8))))
	requireContract(t, func() {
		_, _ = c.CheckDecl(record("Dup", field("x", uns(8))))
	})
	assert.Equal(t, ContextNone, c.Context(), "context must be reset after a panic")
}

func TestAbortDropsOpenPackage(t *testing.T) {
	c := newChecker(t, DefaultOptions())
	checkRecord(t, c, record("Good", field("x", uns(8))))

	_, err := c.CheckDecl(record("Bad", field("x", sint(128))))
	requireKind(t, err, errors.KindRecordIntegerSizeUnsupported)
	require.NotNil(t, c.CurrentPackage())

	c.Abort()
	assert.Nil(t, c.CurrentPackage())
	assert.Equal(t, ContextNone, c.Context())
	assert.Equal(t, 0, c.Namespace().Len())
	_, ok := c.Namespace().Package(testPackage)
	assert.False(t, ok)

	_, err = c.CheckDecl(&ast.PackageBegin{Name: testPackage, Pos: at})
	require.NoError(t, err)
	checkRecord(t, c, record("Good", field("x", uns(16))))
	_, err = c.CheckDecl(&ast.PackageEnd{Pos: at})
	require.NoError(t, err)

	c.Abort()
	assert.Equal(t, 1, c.Namespace().Len())
}

func TestRecordLayout(t *testing.T) {
	c := newChecker(t, DefaultOptions())

	r := checkRecord(t, c, record("Header",
		field("magic", uns(32)),
		padOctets(4),
		field("flags", boolset(2, "a", "b")),
		field("position", vector(float(32), 3)),
		field("name", str(16, "UTF-8"))))

	assert.Equal(t, 5, r.FieldCount())
	assert.Equal(t, int64(32+32+16+96+128), bitsOf(r))
	assert.Equal(t, "38 octets", r.SizeOctets().String())

	for _, f := range r.Fields() {
		assert.True(t, size8(f.Size().Big()), "field %d is not octet aligned", f.Index())
	}

	byName := r.FieldsByName()
	assert.Len(t, byName, 4)
	for _, f := range r.Fields() {
		if v, ok := f.(*types.RecordFieldValue); ok {
			assert.Same(t, v, byName[v.Name()])
		}
	}
}

func size8(n *big.Int) bool {
	return new(big.Int).Rem(n, big.NewInt(8)).Sign() == 0
}

func TestRecordFieldUnaligned(t *testing.T) {
	policy := capability.Standard()
	policy.RecordIntegers = capability.Ranges(capability.NewRange(1, 64))
	c := newChecker(t, Options{Policy: policy})

	_, err := c.CheckDecl(record("Odd", field("x", uns(12))))
	e := requireKind(t, err, errors.KindRecordFieldUnaligned)
	assert.Equal(t, errors.PhaseLayout, e.Phase)
	assert.Equal(t, []string{"Odd", "x"}, e.Path)

	_, ok := c.Namespace().Lookup(names.Qualify(testPackage, "Odd"))
	assert.False(t, ok)
}

func TestPadding(t *testing.T) {
	c := newChecker(t, DefaultOptions())

	_, err := c.CheckDecl(record("T0", padOctets(0)))
	requireKind(t, err, errors.KindPaddingSizeInvalid)

	_, err = c.CheckDecl(packed("P0", padBits(0)))
	requireKind(t, err, errors.KindPaddingSizeInvalid)

	_, err = c.CheckDecl(record("TNeg", padOctets(-1)))
	requireKind(t, err, errors.KindPaddingSizeInvalid)

	r := checkRecord(t, c, record("T8", padOctets(8)))
	require.Equal(t, 1, r.FieldCount())
	pad, ok := r.FieldAt(0).(*types.RecordFieldPaddingOctets)
	require.True(t, ok)
	assert.Equal(t, int64(64), bitsOf(r))
	n, _ := pad.Size().Int64()
	assert.Equal(t, int64(64), n)
}

func TestPackedNonInteger(t *testing.T) {
	tests := []struct {
		name string
		expr untypedExpr
	}{
		{"valid boolean set", boolset(1, "x")},
		{"invalid boolean set", boolset(0, "x")},
		{"float", float(32)},
		{"string", str(1, "UTF-8")},
		{"vector", vector(uns(8), 2)},
		{"reference", ref("Anything")},
	}

	c := newChecker(t, DefaultOptions())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.CheckDecl(packed("T", pfield("x", tc.expr)))
			e := requireKind(t, err, errors.KindPackedNonInteger)
			assert.Equal(t, []string{"T", "x"}, e.Path)
		})
	}
}

func TestPackedBitRanges(t *testing.T) {
	c := newChecker(t, DefaultOptions())

	p := checkPacked(t, c, packed("Status",
		pfield("version", uns(4)),
		padBits(2),
		pfield("mode", uns(2)),
		pfield("length", uns(8))))

	assert.Equal(t, int64(16), bitsOf(p))

	want := []string{"[15:12]", "[11:10]", "[9:8]", "[7:0]"}
	fields := p.Fields()
	require.Len(t, fields, len(want))
	for i, f := range fields {
		assert.Equal(t, want[i], f.Bits().String())
	}

	assert.Equal(t, int64(15), fields[0].Bits().MSB().Int64())
	assert.Equal(t, int64(0), fields[len(fields)-1].Bits().LSB().Int64())
	for i := 0; i+1 < len(fields); i++ {
		next := new(big.Int).Add(fields[i+1].Bits().MSB(), big.NewInt(1))
		assert.Equal(t, 0, fields[i].Bits().LSB().Cmp(next))
	}
}

func TestPackedSizeUnsupported(t *testing.T) {
	tests := []struct {
		name   string
		fields []packedField
	}{
		{"24 bits", []packedField{pfield("a", uns(16)), pfield("b", uns(8))}},
		{"12 bits", []packedField{pfield("a", uns(12))}},
		{"72 bits", []packedField{pfield("a", uns(64)), padBits(8)}},
	}

	c := newChecker(t, DefaultOptions())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.CheckDecl(packed("P", tc.fields...))
			e := requireKind(t, err, errors.KindPackedSizeUnsupported)
			assert.Equal(t, "packed-total", e.Axis)
			assert.Equal(t, "{8, 16, 32, 64}", e.Supported.String())
		})
	}
	assert.Equal(t, 0, c.CurrentPackage().Len())
}

func TestSizeCommand(t *testing.T) {
	c := newChecker(t, DefaultOptions())
	checkRecord(t, c, record("Pair", field("a", uns(32)), field("b", sint(64))))

	tests := []struct {
		name string
		expr untypedSize
		want int64
	}{
		{"constant", k(17), 17},
		{"bits of record", inBits(ref("Pair")), 96},
		{"octets of record", inOctets(ref("Pair")), 12},
		{"bits of field", inBits(ref("Pair"), "b"), 64},
		{"octets of field", inOctets(ref("Pair"), "a"), 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			typed, err := c.CheckDecl(&ast.SizeCommand[ast.Untyped]{Expr: tc.expr, Pos: at})
			require.NoError(t, err)
			cmd := typed.(*ast.SizeCommand[types.Type])
			assert.Equal(t, tc.want, cmd.Value.Int64())
		})
	}
}

func TestDebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newChecker(t, Options{Logger: zap.New(core)})

	checkRecord(t, c, record("Logged", field("x", uns(8))))
	_, err := c.CheckDecl(&ast.PackageEnd{Pos: at})
	require.NoError(t, err)

	declared := logs.FilterMessage("type declared").All()
	require.Len(t, declared, 1)
	assert.Equal(t, "com.example.Logged", declared[0].ContextMap()["type"])
	assert.Equal(t, "8 bits", declared[0].ContextMap()["size"])
	assert.Equal(t, "check", declared[0].LoggerName)
	assert.Equal(t, 1, logs.FilterMessage("package end").Len())
}
