package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/vk/blockforge/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// DefaultArgType is the argument type applied when a handler parameter
// carries no explicit annotation and no richer type can be implied from its
// Go type. The runtime treats untyped slots as generic string inputs.
var DefaultArgType = cty.String

// placeholderRegex matches one [NAME] argument placeholder in display text.
var placeholderRegex = regexp.MustCompile(`\[([A-Za-z_][A-Za-z0-9_]*)\]`)

// nameRegex constrains opcodes and menu names: both become identifiers in
// the emitted module, so they must already be shaped like one.
var nameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ArgMeta is caller-supplied metadata for a single block argument,
// overriding what would otherwise be inferred from the handler signature.
// Name must match a placeholder in the block's display text.
type ArgMeta struct {
	Name    string
	Type    cty.Type
	Default *cty.Value
	Menu    string
}

// BlockOptions carries the optional parts of a block registration.
type BlockOptions struct {
	// Handler is the export name the runtime bridge resolves. Defaults to
	// the opcode.
	Handler string

	// Args declares per-argument metadata, matched to placeholders by name.
	Args []ArgMeta

	// ShowIn restricts where the block may be dropped (e.g. "sprites").
	ShowIn []string

	// Terminal marks a block that nothing can attach below.
	Terminal bool

	// JSBody is a verbatim JavaScript body emitted instead of the bridge
	// dispatch call. A block needs either a handler or a JSBody.
	JSBody string
}

// MenuOptions carries the optional parts of a menu registration.
type MenuOptions struct {
	AcceptReporters bool

	// Dynamic names a runtime function providing the items; when set, the
	// static items list is ignored.
	Dynamic string
}

// Registry accumulates validated block and menu definitions in registration
// order. Mutation is serialized so registration from multiple goroutines
// cannot corrupt the ordered collections.
type Registry struct {
	mu        sync.Mutex
	blocks    []*model.BlockDefinition
	opcodes   map[string]struct{}
	menus     []*model.MenuDefinition
	menuNames map[string]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		opcodes:   make(map[string]struct{}),
		menuNames: make(map[string]struct{}),
	}
}

// RegisterBlock validates and appends one block definition.
//
// The handler is recorded, never called: its reflected signature only
// determines the block's argument specs. Each placeholder in text maps to
// one handler parameter, in order; a leading context.Context parameter is
// bridge plumbing and does not count. Argument types come from explicit
// ArgMeta entries first, then from the parameter's Go type, then from
// DefaultArgType.
func (r *Registry) RegisterBlock(opcode string, blockType model.BlockType, text string, handler any, opts *BlockOptions) (*model.BlockDefinition, error) {
	if opts == nil {
		opts = &BlockOptions{}
	}

	if !nameRegex.MatchString(opcode) {
		return nil, fmt.Errorf("opcode must be a non-empty identifier without spaces, got %q", opcode)
	}
	if !blockType.Known() {
		return nil, &InvalidBlockTypeError{Type: string(blockType)}
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("block %q: display text must not be empty", opcode)
	}
	if handler == nil && opts.JSBody == "" {
		return nil, fmt.Errorf("block %q: either a handler or a JS body is required", opcode)
	}

	placeholders := placeholderNames(text)

	var params []reflect.Type
	if handler != nil {
		fn := reflect.TypeOf(handler)
		if fn.Kind() != reflect.Func {
			return nil, fmt.Errorf("block %q: handler must be a function, got %T", opcode, handler)
		}
		if fn.IsVariadic() {
			return nil, fmt.Errorf("block %q: variadic handlers are not supported", opcode)
		}
		params = handlerParams(fn)
		if len(placeholders) != len(params) {
			return nil, &ArgumentMismatchError{
				Opcode:       opcode,
				Placeholders: len(placeholders),
				Params:       len(params),
			}
		}
	}

	known := make(map[string]struct{}, len(placeholders))
	for _, name := range placeholders {
		known[name] = struct{}{}
	}
	metaByName := make(map[string]ArgMeta, len(opts.Args))
	for _, meta := range opts.Args {
		if _, ok := metaByName[meta.Name]; ok {
			return nil, fmt.Errorf("block %q: duplicate argument metadata for %q", opcode, meta.Name)
		}
		if _, ok := known[meta.Name]; !ok {
			return nil, fmt.Errorf("block %q: argument metadata %q matches no placeholder in %q", opcode, meta.Name, text)
		}
		if meta.Default != nil {
			switch meta.Default.Type() {
			case cty.String, cty.Number, cty.Bool:
			default:
				return nil, fmt.Errorf("block %q: default for %q must be a string, number, or bool", opcode, meta.Name)
			}
		}
		metaByName[meta.Name] = meta
	}

	args := make([]model.ArgSpec, 0, len(placeholders))
	for i, name := range placeholders {
		spec := model.ArgSpec{Name: name, Type: DefaultArgType}
		if i < len(params) {
			if implied, ok := inferArgType(params[i]); ok {
				spec.Type = implied
			}
		}
		if meta, ok := metaByName[name]; ok {
			if meta.Type != cty.NilType {
				spec.Type = meta.Type
			}
			spec.Default = meta.Default
			spec.Menu = meta.Menu
		}
		args = append(args, spec)
	}

	handlerName := opts.Handler
	if handlerName == "" {
		handlerName = opcode
	}

	def := &model.BlockDefinition{
		Opcode:   opcode,
		Type:     blockType,
		Text:     text,
		Handler:  handlerName,
		JSBody:   opts.JSBody,
		Args:     args,
		ShowIn:   append([]string(nil), opts.ShowIn...),
		Terminal: opts.Terminal,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.opcodes[opcode]; exists {
		return nil, &DuplicateOpcodeError{Opcode: opcode}
	}
	r.opcodes[opcode] = struct{}{}
	r.blocks = append(r.blocks, def)

	slog.Debug("Registered block.", "opcode", opcode, "type", blockType, "args", len(args))
	return def, nil
}

// RegisterMenu validates and appends one menu definition.
func (r *Registry) RegisterMenu(name string, items []string, opts *MenuOptions) error {
	if opts == nil {
		opts = &MenuOptions{}
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("menu name must be a non-empty identifier, got %q", name)
	}
	if opts.Dynamic == "" && len(items) == 0 {
		return fmt.Errorf("menu %q: a static menu needs at least one item", name)
	}

	def := &model.MenuDefinition{
		Name:            name,
		AcceptReporters: opts.AcceptReporters,
		Dynamic:         opts.Dynamic,
	}
	if opts.Dynamic == "" {
		def.Items = append([]string(nil), items...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.menuNames[name]; exists {
		return &DuplicateMenuNameError{Name: name}
	}
	r.menuNames[name] = struct{}{}
	r.menus = append(r.menus, def)

	slog.Debug("Registered menu.", "name", name, "items", len(def.Items), "dynamic", def.Dynamic != "")
	return nil
}

// Blocks returns the registered block definitions in registration order.
func (r *Registry) Blocks() []*model.BlockDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.BlockDefinition(nil), r.blocks...)
}

// Menus returns the registered menu definitions in registration order.
func (r *Registry) Menus() []*model.MenuDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.MenuDefinition(nil), r.menus...)
}

// BlockCount returns the number of registered blocks.
func (r *Registry) BlockCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.blocks)
}

// placeholderNames extracts the placeholder names from display text, in
// order of appearance.
func placeholderNames(text string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
