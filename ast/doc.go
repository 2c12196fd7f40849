// Package ast defines the declaration trees consumed and produced by the
// checker.
//
// Every tree is parameterized by an annotation type A. Trees produced by the
// name resolver use Untyped; trees produced by the checker use types.Type,
// so that every type expression carries its finalized type:
//
//	untyped: ast.TypeExpr[ast.Untyped]
//	typed:   ast.TypeExpr[types.Type]
//
// The variant sets are closed. Consumers dispatch with type switches over
// the concrete node types.
package ast
