// Package plan drives one generation pass and produces the Plan consumed by
// code generation.
//
// Pipeline:
//  1. Scan: walk candidate declarations once, in delivery order
//     - validate; rejections go to the diagnostic sink and are skipped
//     - resolve alias and parse result type, register by alias
//  2. Synthesize: over the final registry, build the extension family and,
//     when the reactive extension is present, the as-family
//  3. Emit: hand the complete Plan to the emitter, only if synthesis succeeded
package plan
