// Package synth builds function specifications for registered parsers.
//
// Three families are produced:
//   - as-functions: one per public constructor, "as" + alias, returning
//     Observable<R> where R is the parse result type
//   - wrapper variants: for single-type-variable parsers with a Class<T>
//     parameter, one "as" + alias + W per wrapper type W, returning the
//     result re-wrapped with W
//   - extension functions: "to" + alias on CallFactory returning
//     CallAwait<R>, collected into one aggregate file
//
// Any inconsistency found while synthesizing is an internal failure marked
// with ErrInternal; callers must not emit partial output.
package synth
