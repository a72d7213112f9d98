// Package gen renders a generation plan as Kotlin source.
//
// Generation uses text/template over precomputed signature and statement
// strings. Output is deterministic: the same plan always yields byte-identical
// files.
//
// Files:
//   - RxHttpAsParsers.kt: the as-family, members of an abstract BaseRxHttp
//     class that supplies asParser. Only written when the plan has as-functions.
//   - RxHttpExtensions.kt: the to-family, top-level CallFactory extensions.
//
// Class references use simple names with a sorted import block. When two
// referenced classes share a simple name, both are written fully qualified.
package gen
