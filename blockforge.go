// Package blockforge lets Go programs declare custom blocks for a
// Scratch-compatible runtime and generate the loadable JavaScript extension
// module that exposes them.
//
// A caller registers blocks and menus into a Registry, then runs a
// Generator once per extension:
//
//	reg := blockforge.NewRegistry()
//	_, err := reg.RegisterBlock("greet", blockforge.Reporter, "greet [NAME]", Greet, nil)
//	...
//	src, err := blockforge.Generate("demo", "Demo Extension", "#ffcc00", reg)
//
// Registered handlers are never called here; the generated module forwards
// block invocations to the host bridge by export name, and the bridge is
// what resolves and runs the Go function.
package blockforge

import (
	"github.com/vk/blockforge/internal/codegen"
	"github.com/vk/blockforge/internal/model"
	"github.com/vk/blockforge/internal/registry"
)

// Core types re-exported for library consumers. The implementations live in
// the internal packages shared with the CLI.
type (
	Registry     = registry.Registry
	BlockOptions = registry.BlockOptions
	MenuOptions  = registry.MenuOptions
	ArgMeta      = registry.ArgMeta

	Generator = codegen.Generator

	BlockType           = model.BlockType
	BlockDefinition     = model.BlockDefinition
	MenuDefinition      = model.MenuDefinition
	ExtensionDefinition = model.ExtensionDefinition
	ArgSpec             = model.ArgSpec

	DuplicateOpcodeError          = registry.DuplicateOpcodeError
	DuplicateMenuNameError        = registry.DuplicateMenuNameError
	InvalidBlockTypeError         = registry.InvalidBlockTypeError
	ArgumentMismatchError         = registry.ArgumentMismatchError
	InvalidExtensionMetadataError = codegen.InvalidExtensionMetadataError
)

// The recognized block kinds.
const (
	Command  = model.Command
	Reporter = model.Reporter
	Boolean  = model.Boolean
)

// NewRegistry creates an empty block registry.
func NewRegistry() *Registry {
	return registry.New()
}

// NewGenerator creates a Generator with the standard prelude. Use it
// directly when the extension needs imports, globals, raw JS functions, or
// icon/docs metadata.
func NewGenerator() *Generator {
	return codegen.New()
}

// Generate serializes the registry into an extension module with the given
// metadata. It is shorthand for NewGenerator().Generate(...).
func Generate(id, name, color string, reg *Registry) (string, error) {
	return codegen.New().Generate(id, name, color, reg)
}
