// Package check turns untyped declaration trees into typed ones.
//
// A Checker holds the state of one checking session: the global namespace of
// declared types, the package currently open, and the context (none, record
// or packed) that selects which integer sizes the capability policy allows.
// Every operation either returns a typed node or fails with exactly one
// *errors.Error; a failure aborts the enclosing declaration.
//
// Broken internal invariants, such as a duplicate identifier reaching a
// builder, are not diagnostics. They panic with *errors.ContractViolation.
//
// A Checker is not safe for concurrent use. The capability policy it reads
// may be shared between checkers.
package check
