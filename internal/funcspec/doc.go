// Package funcspec defines the structured function specifications the
// synthesizer produces and the emitter renders. The synthesizer never builds
// source text; bodies are ordered lists of statements over a small closed set
// of expressions.
package funcspec
