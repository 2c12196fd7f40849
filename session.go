package jpra

import (
	"context"

	"go.uber.org/zap"

	"github.com/io7m/jpra-sub001/ast"
	"github.com/io7m/jpra-sub001/check"
	"github.com/io7m/jpra-sub001/layout"
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/types"
)

// Result is the output of checking a declaration stream.
type Result struct {
	// Decls are the typed declarations, in input order.
	Decls []ast.Decl[types.Type]
	// Packages are the packages closed by the stream, in order.
	Packages []*types.Package
}

// Session checks declaration streams against one namespace. Types declared
// by one call to Check are visible to later calls. A call that fails
// discards the package it left open, so its types are not visible.
// Not safe for concurrent use.
type Session struct {
	checker *check.Checker
	layouts *layout.Calculator
	logger  *zap.Logger
}

// NewSession creates a session with an empty namespace.
func NewSession(opts check.Options) *Session {
	log := opts.Logger
	if log == nil {
		log = check.Logger()
	}
	return &Session{
		checker: check.New(opts),
		layouts: layout.NewCalculator(),
		logger:  log.Named("session"),
	}
}

// NewSessionWithDefaults creates a session using the standard policy.
func NewSessionWithDefaults() *Session {
	return NewSession(check.DefaultOptions())
}

// Checker returns the underlying checker.
func (s *Session) Checker() *check.Checker {
	return s.checker
}

// Check checks decls in order and stops at the first diagnostic. The result
// holds everything checked before the failure. ctx is consulted between
// declarations.
func (s *Session) Check(ctx context.Context, decls []ast.Decl[ast.Untyped]) (Result, error) {
	res := Result{Decls: make([]ast.Decl[types.Type], 0, len(decls))}

	for _, d := range decls {
		if err := ctx.Err(); err != nil {
			s.checker.Abort()
			return res, err
		}

		typed, err := s.checker.CheckDecl(d)
		if err != nil {
			s.logger.Debug("declaration rejected",
				zap.Stringer("position", d.Position()),
				zap.Error(err))
			s.checker.Abort()
			return res, err
		}

		res.Decls = append(res.Decls, typed)
		if end, ok := typed.(*ast.PackageEnd); ok {
			res.Packages = append(res.Packages, end.Package)
		}
	}

	s.logger.Debug("declarations checked",
		zap.Int("decls", len(res.Decls)),
		zap.Int("packages", len(res.Packages)))
	return res, nil
}

// Lookup returns a type declared in this session.
func (s *Session) Lookup(q names.QualifiedTypeName) (types.UserDefined, bool) {
	return s.checker.Namespace().Lookup(q)
}

// Layout returns the layout of a type declared in this session.
func (s *Session) Layout(q names.QualifiedTypeName) (layout.Info, bool) {
	t, ok := s.Lookup(q)
	if !ok {
		return layout.Info{}, false
	}
	return s.layouts.Calculate(t), true
}

// Leaves returns the flattened leaf fields of a type declared in this session.
func (s *Session) Leaves(q names.QualifiedTypeName) ([]layout.Leaf, bool) {
	t, ok := s.Lookup(q)
	if !ok {
		return nil, false
	}
	return s.layouts.Flatten(t), true
}
