// Package errors provides structured diagnostics for the record checker.
//
// Diagnostics are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type carries the lexical position of the
// offending expression, a field path, the offending value and, for capability
// failures, a snapshot of the supported set so a front end can render an
// actionable message without looking at the source.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseCheck, errors.KindRecordIntegerSizeUnsupported).
//		At(pos).
//		Axis("record-integer").
//		Value(size).
//		Supported(policy.RecordIntegerSizes()).
//		Build()
//
// Or the convenience constructors for each diagnostic kind:
//
//	err := errors.PaddingSizeInvalid(pos, size)
//
// All diagnostics implement the standard error interface and support
// errors.Is/As. Internal consistency failures are not diagnostics: they are
// raised with Contract or Require, which panic with a *ContractViolation.
package errors
