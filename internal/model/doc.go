// Package model defines the format-agnostic representation of an extension:
// the extension metadata, its ordered block definitions, and its menus. It is
// the contract shared between the registry, the manifest loader, and the
// code generator, and carries no behavior beyond simple lookups.
package model
