package model

import (
	"github.com/zclconf/go-cty/cty"
)

// BlockType identifies one of the runtime's block kinds.
type BlockType string

const (
	// Command blocks perform an action and return nothing.
	Command BlockType = "command"
	// Reporter blocks produce a value that fits into round slots.
	Reporter BlockType = "reporter"
	// Boolean blocks produce a true/false value for hexagonal slots.
	Boolean BlockType = "boolean"
)

// Known reports whether t is one of the recognized block kinds.
func (t BlockType) Known() bool {
	switch t {
	case Command, Reporter, Boolean:
		return true
	}
	return false
}

// ReturnsValue reports whether blocks of this kind produce a value. The
// generator emits a return-producing wrapper for these kinds.
func (t BlockType) ReturnsValue() bool {
	return t == Reporter || t == Boolean
}

// RuntimeToken returns the Scratch.BlockType token for this kind.
func (t BlockType) RuntimeToken() string {
	switch t {
	case Command:
		return "COMMAND"
	case Reporter:
		return "REPORTER"
	case Boolean:
		return "BOOLEAN"
	}
	return ""
}

// ParseBlockType maps a manifest keyword onto a BlockType. The boolean
// value is false for unrecognized keywords.
func ParseBlockType(keyword string) (BlockType, bool) {
	t := BlockType(keyword)
	return t, t.Known()
}

// ArgumentToken maps an argument's cty type onto the Scratch.ArgumentType
// token the runtime understands. Numbers and booleans keep their own slots;
// everything else rides in a generic string slot.
func ArgumentToken(t cty.Type) string {
	switch {
	case t == cty.Number:
		return "NUMBER"
	case t == cty.Bool:
		return "BOOLEAN"
	default:
		return "STRING"
	}
}
