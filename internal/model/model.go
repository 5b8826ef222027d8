package model

import (
	"github.com/zclconf/go-cty/cty"
)

// ArgSpec describes a single block argument: its placeholder name in the
// display text, its runtime type, and optional default and menu binding.
type ArgSpec struct {
	Name    string
	Type    cty.Type
	Default *cty.Value
	Menu    string
}

// BlockDefinition is one declared block. Instances are created by a single
// registration call and are immutable afterwards.
type BlockDefinition struct {
	Opcode string
	Type   BlockType
	Text   string

	// Handler is the export name of the host-side callable the runtime
	// bridge resolves when the block executes. The core never invokes it.
	Handler string

	// JSBody, when non-empty, is a verbatim JavaScript body emitted instead
	// of the bridge dispatch call.
	JSBody string

	Args []ArgSpec

	// ShowIn lists the canvas contexts (e.g. "sprites", "stage") where the
	// block may be placed. It is serialized under the runtime's own
	// property name, not this one.
	ShowIn []string

	// Terminal marks a block that no other block can attach below.
	Terminal bool
}

// MenuDefinition is a named, closed list of selectable options usable as a
// block argument. Dynamic menus defer their items to a runtime function.
type MenuDefinition struct {
	Name            string
	AcceptReporters bool
	Items           []string
	Dynamic         string
}

// ExtensionDefinition is one build unit: extension-level metadata plus the
// ordered blocks and menus registered into it. Order is semantically
// meaningful; it is the order blocks appear in the generated palette.
type ExtensionDefinition struct {
	ID    string
	Name  string
	Color string

	BlockIconURI string
	MenuIconURI  string
	DocsURI      string

	Blocks []*BlockDefinition
	Menus  []*MenuDefinition
}
