// Package errors provides the structured error type used across the fidor
// client. Every failure that leaves the library is an *AppError carrying a
// machine-readable code, so callers can branch on the kind of failure
// (local record validation, remote lookup, transport) without string matching.
//
// Remote validation rejections are not errors: they are reported through
// resource.Result and the record's errors map.
package errors
