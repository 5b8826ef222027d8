package manifest

import (
	"context"
	"fmt"

	"github.com/vk/blockforge/internal/ctxlog"
	"github.com/vk/blockforge/internal/handlers"
	"github.com/vk/blockforge/internal/model"
	"github.com/vk/blockforge/internal/registry"
	"github.com/vk/blockforge/internal/schema"
)

// Build translates one manifest extension into a populated registry and
// returns the finalized extension definition. Menus register first so block
// arguments can reference them; blocks register in declaration order, which
// the generator preserves in the emitted palette.
func Build(ctx context.Context, ext *schema.ExtensionBlock, h *handlers.Handlers, reg *registry.Registry) (*model.ExtensionDefinition, error) {
	logger := ctxlog.FromContext(ctx)

	if err := validateBindings(ext, h); err != nil {
		return nil, err
	}

	for _, menu := range ext.Menus {
		opts := &registry.MenuOptions{
			AcceptReporters: menu.AcceptReporters,
			Dynamic:         menu.Dynamic,
		}
		if err := reg.RegisterMenu(menu.Name, menu.Items, opts); err != nil {
			return nil, fmt.Errorf("extension %q: %w", ext.ID, err)
		}
	}

	for _, block := range ext.Blocks {
		opts := &registry.BlockOptions{
			Handler:  block.Handler,
			JSBody:   block.JSBody,
			ShowIn:   block.ShowIn,
			Terminal: block.Terminal,
		}
		for _, arg := range block.Args {
			argType, err := argTypeFromExpr(ctx, arg.Type)
			if err != nil {
				return nil, fmt.Errorf("extension %q, block %q, arg %q: %w", ext.ID, block.Opcode, arg.Name, err)
			}
			opts.Args = append(opts.Args, registry.ArgMeta{
				Name:    arg.Name,
				Type:    argType,
				Default: arg.Default,
				Menu:    arg.Menu,
			})
		}

		var fn any
		if block.Handler != "" {
			rh, _ := h.Lookup(block.Handler)
			fn = rh.Fn
		}

		if _, err := reg.RegisterBlock(block.Opcode, model.BlockType(block.Type), block.Text, fn, opts); err != nil {
			return nil, fmt.Errorf("extension %q: %w", ext.ID, err)
		}
	}

	def := &model.ExtensionDefinition{
		ID:           ext.ID,
		Name:         ext.Name,
		Color:        ext.Color,
		BlockIconURI: ext.BlockIconURI,
		MenuIconURI:  ext.MenuIconURI,
		DocsURI:      ext.DocsURI,
		Blocks:       reg.Blocks(),
		Menus:        reg.Menus(),
	}

	logger.Debug("Manifest extension built.", "id", def.ID, "blocks", len(def.Blocks), "menus", len(def.Menus))
	return def, nil
}
