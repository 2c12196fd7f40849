// Package types defines the finalized type objects produced by the checker.
//
// Every type exposes its size in bits. Record and Packed are user-defined
// aggregates: they additionally expose their size in octets and two views of
// their fields, a name-indexed map of value fields and a declaration-ordered
// sequence that also includes padding. Both views share the same field
// values, so a field found by name is the same pointer as the one found by
// position.
//
// Aggregates are constructed once, by RecordBuilder.Build or
// PackedBuilder.Build, and are immutable afterwards. Fields know their index
// in the owning aggregate; callers that need to refer back to the owner keep
// the (aggregate, index) pair.
//
// # Key Types
//
//   - Type: any finalized type
//   - Scalar: Integer or Float, the only legal vector and matrix elements
//   - UserDefined: Record or Packed
//   - Package, Namespace: registration scopes for user-defined types
package types
