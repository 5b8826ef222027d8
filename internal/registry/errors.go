package registry

import "fmt"

// DuplicateOpcodeError reports a registration reusing an opcode already
// present in the registry.
type DuplicateOpcodeError struct {
	Opcode string
}

func (e *DuplicateOpcodeError) Error() string {
	return fmt.Sprintf("block with opcode %q already registered", e.Opcode)
}

// DuplicateMenuNameError reports a menu registration reusing a name.
type DuplicateMenuNameError struct {
	Name string
}

func (e *DuplicateMenuNameError) Error() string {
	return fmt.Sprintf("menu with name %q already registered", e.Name)
}

// InvalidBlockTypeError reports an unrecognized block-type token.
type InvalidBlockTypeError struct {
	Type string
}

func (e *InvalidBlockTypeError) Error() string {
	return fmt.Sprintf("invalid block type %q: must be 'command', 'reporter', or 'boolean'", e.Type)
}

// ArgumentMismatchError reports a display text whose placeholder count
// disagrees with the handler's declared parameter count.
type ArgumentMismatchError struct {
	Opcode       string
	Placeholders int
	Params       int
}

func (e *ArgumentMismatchError) Error() string {
	return fmt.Sprintf("block %q: display text declares %d placeholder(s) but the handler takes %d argument(s)", e.Opcode, e.Placeholders, e.Params)
}
