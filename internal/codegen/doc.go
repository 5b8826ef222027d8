// Package codegen walks a finalized registry plus extension-level metadata
// and emits the JavaScript extension module the Scratch runtime loads.
//
// Emission is a single deterministic pass: two calls over an unchanged
// registry produce byte-identical output. Any validation failure aborts the
// call with no partial output.
package codegen
