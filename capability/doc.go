// Package capability describes which sizes and encodings a backend supports.
//
// A Policy exposes one axis per context in which a size is checked. Each axis
// is an enumerable set that doubles as the membership predicate, so the same
// value is used both to validate a declaration and to report the supported
// values in a diagnostic.
//
// Record-context and packed-context integer sizes are separate axes: a record
// field is addressed by octet while a packed field is addressed by bit.
//
// Policies are immutable once constructed and may be shared between
// goroutines.
package capability
