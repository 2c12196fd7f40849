package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/io7m/jpra-sub001/lexical"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseNames    Phase = "names"    // name validation
	PhaseCheck    Phase = "check"    // type and declaration checking
	PhaseEvaluate Phase = "evaluate" // size expression evaluation
	PhaseLayout   Phase = "layout"   // aggregate layout
)

// Kind categorizes the error
type Kind string

const (
	KindRecordIntegerSizeUnsupported Kind = "record_integer_size_unsupported"
	KindPackedIntegerSizeUnsupported Kind = "packed_integer_size_unsupported"
	KindFloatSizeUnsupported         Kind = "float_size_unsupported"
	KindVectorSizeUnsupported        Kind = "vector_size_unsupported"
	KindVectorIntegerSizeUnsupported Kind = "vector_integer_size_unsupported"
	KindVectorFloatSizeUnsupported   Kind = "vector_float_size_unsupported"
	KindMatrixSizeUnsupported        Kind = "matrix_size_unsupported"
	KindMatrixIntegerSizeUnsupported Kind = "matrix_integer_size_unsupported"
	KindMatrixFloatSizeUnsupported   Kind = "matrix_float_size_unsupported"
	KindVectorNonScalar              Kind = "vector_non_scalar"
	KindMatrixNonScalar              Kind = "matrix_non_scalar"
	KindBooleanSetSizeInvalid        Kind = "boolean_set_size_invalid"
	KindBooleanSetSizeTooSmall       Kind = "boolean_set_size_too_small"
	KindStringEncodingUnsupported    Kind = "string_encoding_unsupported"
	KindPaddingSizeInvalid           Kind = "padding_size_invalid"
	KindPackedNonInteger             Kind = "packed_non_integer"
	KindPackedSizeUnsupported        Kind = "packed_size_unsupported"
	KindSizeInvalid                  Kind = "size_invalid"
	KindSizeNotOctetAligned          Kind = "size_not_octet_aligned"
	KindRecordFieldUnaligned         Kind = "record_field_unaligned"
	KindTypeUnknown                  Kind = "type_unknown"
	KindFieldPath                    Kind = "field_path"
	KindNoCurrentPackage             Kind = "no_current_package"
	KindInvalidName                  Kind = "invalid_name"
)

// Error is the structured diagnostic produced by the checker
type Error struct {
	Value     any
	Supported fmt.Stringer
	Cause     error
	Pos       lexical.Position
	Phase     Phase
	Kind      Kind
	Axis      string
	Type      string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pos.IsKnown() || e.Pos.File != "" {
		b.WriteString(" at ")
		b.WriteString(e.Pos.String())
	}

	if len(e.Path) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Path, "."))
		b.WriteByte(')')
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Supported != nil {
		b.WriteString(" (supported")
		if e.Axis != "" {
			b.WriteByte(' ')
			b.WriteString(e.Axis)
		}
		b.WriteString(": ")
		b.WriteString(e.Supported.String())
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// Sentinel returns a target for errors.Is that matches kind in any phase.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}

// From returns the first *Error in err's chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	if e, ok := From(err); ok {
		return e.Kind, true
	}
	return "", false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// At sets the lexical position
func (b *Builder) At(pos lexical.Position) *Builder {
	b.err.Pos = pos
	return b
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Axis sets the capability axis the value was checked against
func (b *Builder) Axis(axis string) *Builder {
	b.err.Axis = axis
	return b
}

// Type sets the rendered type involved in the error
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Supported sets the snapshot of supported values
func (b *Builder) Supported(s fmt.Stringer) *Builder {
	b.err.Supported = s
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}
