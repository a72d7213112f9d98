// Package diagnostic provides structured diagnostics for the parser generator.
//
// Diagnostics are attached to a declaration and its source location and are
// reported through a Sink. Validation rejections are the only producer of
// errors; they never abort a generation pass.
package diagnostic
