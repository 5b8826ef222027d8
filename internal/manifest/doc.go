// Package manifest loads extension declarations from HCL files and
// translates them into populated registries.
//
// A manifest binds declarative block definitions to Go handlers registered
// by compiled-in block packages. Loading validates that the two sides are in
// sync before anything reaches the registry, so a manifest referencing a
// handler that does not exist fails at startup, not at generation time.
package manifest
