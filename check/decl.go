package check

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/io7m/jpra-sub001/ast"
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/lexical"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/size"
	"github.com/io7m/jpra-sub001/types"
)

// CheckDecl checks one declaration. Records and packed types are finalized
// and registered in the namespace and the current package before CheckDecl
// returns.
func (c *Checker) CheckDecl(d ast.Decl[ast.Untyped]) (ast.Decl[types.Type], error) {
	switch d := d.(type) {
	case *ast.PackageBegin:
		return c.checkPackageBegin(d), nil
	case *ast.PackageEnd:
		return c.checkPackageEnd(d)
	case *ast.Record[ast.Untyped]:
		return c.checkRecord(d)
	case *ast.Packed[ast.Untyped]:
		return c.checkPacked(d)
	case *ast.TypeCommand[ast.Untyped]:
		return c.checkTypeCommand(d)
	case *ast.SizeCommand[ast.Untyped]:
		return c.checkSizeCommand(d)
	default:
		errors.Contract("unexpected declaration %T", d)
		return nil, nil
	}
}

func (c *Checker) checkPackageBegin(d *ast.PackageBegin) ast.Decl[types.Type] {
	errors.Require(c.pkg == nil, "package %s begun inside package %s", d.Name, c.pkgName())
	c.pkg = types.NewPackage(d.Name)
	c.context = ContextNone

	c.logger.Debug("package begin", zap.String("package", string(d.Name)))
	return &ast.PackageBegin{Pos: d.Pos, Name: d.Name}
}

func (c *Checker) checkPackageEnd(d *ast.PackageEnd) (ast.Decl[types.Type], error) {
	if c.pkg == nil {
		return nil, errors.NoCurrentPackage(d.Pos, "package-end")
	}

	pkg := c.pkg
	c.pkg = nil
	c.context = ContextNone
	c.namespace.AddPackage(pkg)

	c.logger.Debug("package end",
		zap.String("package", string(pkg.Name())),
		zap.Int("types", pkg.Len()))
	return &ast.PackageEnd{Package: pkg, Pos: d.Pos}, nil
}

func (c *Checker) pkgName() names.PackageName {
	if c.pkg == nil {
		return ""
	}
	return c.pkg.Name()
}

func (c *Checker) checkRecord(d *ast.Record[ast.Untyped]) (ast.Decl[types.Type], error) {
	if c.pkg == nil {
		return nil, errors.NoCurrentPackage(d.Pos, "record "+string(d.Name))
	}
	defer c.enter(ContextRecord)()

	b := types.NewRecordBuilder(names.Qualify(c.pkg.Name(), d.Name), d.ID, d.Pos)
	fields := make([]ast.RecordField[types.Type], 0, len(d.Fields))

	for _, f := range d.Fields {
		switch f := f.(type) {
		case *ast.RecordFieldValue[ast.Untyped]:
			typed, err := c.CheckTypeExpr(f.Type)
			if err != nil {
				return nil, withPath(err, d.Name, f.Name)
			}
			t := typed.Annotation()
			if !size.IsOctetAligned(t.Size()) {
				return nil, withPath(errors.RecordFieldUnaligned(f.Pos, string(f.Name), t.String(), t.Size().Big()), d.Name, f.Name)
			}
			b.AddValue(f.Pos, f.Name, f.ID, t)
			fields = append(fields, &ast.RecordFieldValue[types.Type]{Type: typed, Pos: f.Pos, Name: f.Name, ID: f.ID})

		case *ast.RecordFieldPaddingOctets[ast.Untyped]:
			sz, octets, err := c.octets(f.Size, paddingInvalid)
			if err != nil {
				return nil, withPath(err, d.Name)
			}
			b.AddPaddingOctets(f.Pos, octets)
			fields = append(fields, &ast.RecordFieldPaddingOctets[types.Type]{Size: sz, Pos: f.Pos})

		default:
			errors.Contract("unexpected record field %T", f)
		}
	}

	r := b.Build()
	c.register(r)

	return &ast.Record[types.Type]{Ann: r, Pos: d.Pos, Name: d.Name, Fields: fields, ID: d.ID}, nil
}

func (c *Checker) checkPacked(d *ast.Packed[ast.Untyped]) (ast.Decl[types.Type], error) {
	if c.pkg == nil {
		return nil, errors.NoCurrentPackage(d.Pos, "packed "+string(d.Name))
	}
	defer c.enter(ContextPacked)()

	q := names.Qualify(c.pkg.Name(), d.Name)
	b := types.NewPackedBuilder(q, d.ID, d.Pos)
	fields := make([]ast.PackedField[types.Type], 0, len(d.Fields))

	for _, f := range d.Fields {
		switch f := f.(type) {
		case *ast.PackedFieldValue[ast.Untyped]:
			// Only integer expressions can denote integers. Anything else is
			// rejected before it is checked.
			if _, ok := f.Type.(*ast.TypeInteger[ast.Untyped]); !ok {
				return nil, withPath(errors.PackedNonInteger(f.Pos, string(f.Name), ast.Keyword(f.Type)), d.Name, f.Name)
			}
			typed, err := c.CheckTypeExpr(f.Type)
			if err != nil {
				return nil, withPath(err, d.Name, f.Name)
			}
			integer, ok := typed.Annotation().(*types.Integer)
			errors.Require(ok, "integer expression for %s.%s produced %T", q, f.Name, typed.Annotation())

			b.AddValue(f.Pos, f.Name, f.ID, integer)
			fields = append(fields, &ast.PackedFieldValue[types.Type]{Type: typed, Pos: f.Pos, Name: f.Name, ID: f.ID})

		case *ast.PackedFieldPaddingBits[ast.Untyped]:
			sz, bits, err := c.bits(f.Size, paddingInvalid)
			if err != nil {
				return nil, withPath(err, d.Name)
			}
			b.AddPaddingBits(f.Pos, bits)
			fields = append(fields, &ast.PackedFieldPaddingBits[types.Type]{Size: sz, Pos: f.Pos})

		default:
			errors.Contract("unexpected packed field %T", f)
		}
	}

	// The total is validated before Build so that an unsupported size never
	// reaches bit range assignment.
	total := b.CurrentSize()
	supported := c.policy.PackedSizes()
	if !supported.Contains(total.Big()) || !size.IsOctetAligned(total) {
		return nil, errors.PackedSizeUnsupported(d.Pos, q.String(), total.Big(), supported)
	}

	p := b.Build()
	c.register(p)

	return &ast.Packed[types.Type]{Ann: p, Pos: d.Pos, Name: d.Name, Fields: fields, ID: d.ID}, nil
}

func paddingInvalid(pos lexical.Position, v *big.Int) error {
	return errors.PaddingSizeInvalid(pos, v)
}

func (c *Checker) register(t types.UserDefined) {
	c.namespace.Register(t)
	c.pkg.Add(t)

	c.logger.Debug("type declared",
		zap.Stringer("type", t.Name()),
		zap.Stringer("kind", t.Kind()),
		zap.Stringer("size", t.Size()),
		zap.Int("fields", t.FieldCount()))
}

func (c *Checker) checkTypeCommand(d *ast.TypeCommand[ast.Untyped]) (ast.Decl[types.Type], error) {
	errors.Require(c.context == ContextNone, ":type checked in %s context", c.context)

	typed, err := c.CheckTypeExpr(d.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.TypeCommand[types.Type]{Expr: typed, Pos: d.Pos}, nil
}

func (c *Checker) checkSizeCommand(d *ast.SizeCommand[ast.Untyped]) (ast.Decl[types.Type], error) {
	errors.Require(c.context == ContextNone, ":size checked in %s context", c.context)

	typed, v, err := c.magnitude(d.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.SizeCommand[types.Type]{Expr: typed, Value: v, Pos: d.Pos}, nil
}

// withPath records the declaration and field a diagnostic occurred in,
// unless the diagnostic already carries a more specific path.
func withPath(err error, typ names.TypeName, field ...names.FieldName) error {
	e, ok := errors.From(err)
	if !ok {
		return err
	}

	switch {
	case len(e.Path) == 0:
	case len(field) == 1 && len(e.Path) == 1 && e.Path[0] == string(field[0]):
	default:
		return err
	}

	path := make([]string, 0, 1+len(field))
	path = append(path, string(typ))
	for _, f := range field {
		path = append(path, string(f))
	}
	e.Path = path
	return err
}
