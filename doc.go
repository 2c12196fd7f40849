// Package jpra checks declarations of binary record types and computes
// their layout.
//
// Users declare record types (octet-aligned, heterogeneous fields) and packed
// types (bit-packed integer fields) built from integers, floats, arrays,
// vectors, matrices, boolean sets, strings and references to previously
// declared types. This module takes the parsed, name-resolved declaration
// tree and produces a typed tree in which every type expression carries a
// finalized type with an exact size and, for packed fields, an exact bit
// range.
//
// # Architecture Overview
//
//	jpra/            Session: checks a declaration stream in order
//	├── size/        Unit-tagged arbitrary precision sizes (bits, octets)
//	├── names/       Validated type, field and package names
//	├── capability/  Policies describing which sizes a backend supports
//	├── ast/         Untyped and typed declaration trees
//	├── types/       Finalized types, record and packed builders
//	├── check/       Size evaluator, type checker, declaration checker
//	├── layout/      Field offsets and flattened leaf fields
//	├── lexical/     Source positions
//	└── errors/      Structured diagnostics and contract violations
//
// # Quick Start
//
//	s := jpra.NewSession(check.DefaultOptions())
//
//	res, err := s.Check(ctx, decls)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, pkg := range res.Packages {
//	    for _, t := range pkg.Types() {
//	        fmt.Println(t.Name(), t.SizeOctets())
//	    }
//	}
//
// # Capability Policies
//
// Which integer, float, vector and matrix sizes are legal depends on the
// backend that will consume the types. capability.Standard() is the baseline;
// capability.Custom allows every axis to be configured.
//
// # Errors
//
// Checking stops at the first diagnostic. Diagnostics are *errors.Error
// values carrying the kind, source position and offending data:
//
//	if errors.Is(err, jerrors.Sentinel(jerrors.KindPackedNonInteger)) {
//	    // a packed field was not an integer
//	}
//
// Broken internal invariants panic with *errors.ContractViolation.
package jpra
