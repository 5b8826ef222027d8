// Package registry holds the ordered set of declared block and menu
// definitions for one extension and validates them at registration time.
//
// A Registry is built up by registration calls and then consumed once by the
// code generator. Every validation failure is surfaced to the caller as a
// typed error, and a failed call never mutates the registry, so the caller
// may retry with corrected input.
package registry
