package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/io7m/jpra-sub001/ast"
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/types"
)

const testPackage names.PackageName = "com.example"

var at = lexical.At("test.jpr", 1, 1)

type (
	untypedExpr  = ast.TypeExpr[ast.Untyped]
	untypedSize  = ast.SizeExpr[ast.Untyped]
	recordField  = ast.RecordField[ast.Untyped]
	packedField  = ast.PackedField[ast.Untyped]
	untypedDecl  = ast.Decl[ast.Untyped]
	typedRecord  = ast.Record[types.Type]
	typedPacked  = ast.Packed[types.Type]
	typedTypeCmd = ast.TypeCommand[types.Type]
)

var nextID names.Identifier

func id() names.Identifier {
	nextID++
	return nextID
}

func k(n int64) untypedSize { return ast.Constant(at, n) }

func sint(bits int64) untypedExpr {
	return &ast.TypeInteger[ast.Untyped]{Kind: types.IntegerSigned, Size: k(bits), Pos: at}
}

func uns(bits int64) untypedExpr {
	return &ast.TypeInteger[ast.Untyped]{Kind: types.IntegerUnsigned, Size: k(bits), Pos: at}
}

func float(bits int64) untypedExpr {
	return &ast.TypeFloat[ast.Untyped]{Size: k(bits), Pos: at}
}

func array(elem untypedExpr, count int64) untypedExpr {
	return &ast.TypeArray[ast.Untyped]{Element: elem, Count: k(count), Pos: at}
}

func vector(elem untypedExpr, count int64) untypedExpr {
	return &ast.TypeVector[ast.Untyped]{Element: elem, Count: k(count), Pos: at}
}

func matrix(elem untypedExpr, w, h int64) untypedExpr {
	return &ast.TypeMatrix[ast.Untyped]{Element: elem, Width: k(w), Height: k(h), Pos: at}
}

func boolset(octets int64, fields ...names.FieldName) untypedExpr {
	return &ast.TypeBooleanSet[ast.Untyped]{Size: k(octets), Fields: fields, Pos: at}
}

func str(octets int64, encoding string) untypedExpr {
	return &ast.TypeString[ast.Untyped]{Size: k(octets), Encoding: encoding, Pos: at}
}

func ref(name names.TypeName) untypedExpr {
	return &ast.TypeName[ast.Untyped]{Ref: names.Qualify(testPackage, name), Pos: at}
}

func inBits(t untypedExpr, path ...names.FieldName) untypedSize {
	return &ast.SizeInBits[ast.Untyped]{Type: t, Path: path, Pos: at}
}

func inOctets(t untypedExpr, path ...names.FieldName) untypedSize {
	return &ast.SizeInOctets[ast.Untyped]{Type: t, Path: path, Pos: at}
}

func field(name names.FieldName, t untypedExpr) recordField {
	return &ast.RecordFieldValue[ast.Untyped]{Name: name, ID: id(), Type: t, Pos: at}
}

func padOctets(n int64) recordField {
	return &ast.RecordFieldPaddingOctets[ast.Untyped]{Size: k(n), Pos: at}
}

func pfield(name names.FieldName, t untypedExpr) packedField {
	return &ast.PackedFieldValue[ast.Untyped]{Name: name, ID: id(), Type: t, Pos: at}
}

func padBits(n int64) packedField {
	return &ast.PackedFieldPaddingBits[ast.Untyped]{Size: k(n), Pos: at}
}

func record(name names.TypeName, fields ...recordField) untypedDecl {
	return &ast.Record[ast.Untyped]{Name: name, ID: id(), Fields: fields, Pos: at}
}

func packed(name names.TypeName, fields ...packedField) untypedDecl {
	return &ast.Packed[ast.Untyped]{Name: name, ID: id(), Fields: fields, Pos: at}
}

// newChecker returns a checker with testPackage open.
func newChecker(t *testing.T, opts Options) *Checker {
	t.Helper()
	c := New(opts)
	_, err := c.CheckDecl(&ast.PackageBegin{Name: testPackage, Pos: at})
	require.NoError(t, err)
	return c
}

func checkRecord(t *testing.T, c *Checker, d untypedDecl) *types.Record {
	t.Helper()
	typed, err := c.CheckDecl(d)
	require.NoError(t, err)
	r, ok := typed.(*typedRecord)
	require.True(t, ok, "got %T", typed)
	return r.Ann.(*types.Record)
}

func checkPacked(t *testing.T, c *Checker, d untypedDecl) *types.Packed {
	t.Helper()
	typed, err := c.CheckDecl(d)
	require.NoError(t, err)
	p, ok := typed.(*typedPacked)
	require.True(t, ok, "got %T", typed)
	return p.Ann.(*types.Packed)
}

// requireKind checks that err is a diagnostic of the given kind and returns it.
func requireKind(t *testing.T, err error, kind errors.Kind) *errors.Error {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, errors.Sentinel(kind), "got %v", err)
	e, ok := errors.From(err)
	require.True(t, ok)
	return e
}

func requireContract(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation")
		_, ok := r.(*errors.ContractViolation)
		require.True(t, ok, "panic value %T: %v", r, r)
	}()
	fn()
}

func bitsOf(t types.Type) int64 {
	n, ok := t.Size().Int64()
	if !ok {
		panic("size overflows int64")
	}
	return n
}
