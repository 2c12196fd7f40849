package types

import "github.com/io7m/jpra-sub001/names"

// FieldPathResult is the outcome of LookupFieldPath. On success Type is the
// type at the end of the path. On failure Last is the last type reached,
// Name the field that could not be found in it, and Remaining the path from
// Name onwards.
type FieldPathResult struct {
	Type      Type
	Last      Type
	Name      names.FieldName
	Remaining names.FieldPath
	OK        bool
}

// LookupFieldPath resolves path starting at t, descending into record and
// packed field types.
func LookupFieldPath(t Type, path names.FieldPath) FieldPathResult {
	current := t
	for i, name := range path {
		var next Type

		switch cur := current.(type) {
		case *Record:
			if f, ok := cur.Field(name); ok {
				next = f.Type()
			}
		case *Packed:
			if f, ok := cur.Field(name); ok {
				next = f.Type()
			}
		}

		if next == nil {
			return FieldPathResult{
				Last:      current,
				Name:      name,
				Remaining: append(names.FieldPath(nil), path[i:]...),
			}
		}
		current = next
	}

	return FieldPathResult{Type: current, OK: true}
}
