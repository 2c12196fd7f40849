// Package layout computes where the fields of checked records and packed
// types live inside a value.
//
// The type model stores no offsets. Record field offsets are the running sum
// of the sizes of the preceding fields; packed fields carry their bit ranges
// directly. A Calculator derives both, and flattens nested aggregates into
// leaf fields with absolute positions, which is what accessor generators
// consume.
//
// # Layout Rules
//
//   - Records: fields are laid out in declaration order with no implicit
//     padding; every field starts on an octet boundary
//   - Packed types: fields occupy contiguous bit ranges, the first declared
//     field holding the most significant bits
//   - Padding fields occupy space but have no name
//
// # Usage
//
//	calc := layout.NewCalculator()
//	info := calc.Calculate(record)
//	// info.Size, info.Fields available
//
// A Calculator caches results per aggregate and is safe for concurrent use.
package layout
