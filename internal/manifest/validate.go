package manifest

import (
	"fmt"
	"strings"

	"github.com/vk/blockforge/internal/handlers"
	"github.com/vk/blockforge/internal/schema"
)

// validateBindings performs a strict parity check between a manifest's
// block declarations and the Go handlers compiled into the binary. Every
// problem is collected so a broken manifest reports all of its faults at
// once instead of one per run.
func validateBindings(ext *schema.ExtensionBlock, h *handlers.Handlers) error {
	var errs []string

	for _, block := range ext.Blocks {
		switch {
		case block.Handler == "" && block.JSBody == "":
			errs = append(errs, fmt.Sprintf("block '%s': either 'handler' or 'js_body' is required", block.Opcode))
		case block.Handler != "" && block.JSBody != "":
			errs = append(errs, fmt.Sprintf("block '%s': 'handler' and 'js_body' are mutually exclusive", block.Opcode))
		case block.Handler != "":
			if _, ok := h.Lookup(block.Handler); !ok {
				errs = append(errs, fmt.Sprintf("block '%s': handler '%s' is not registered", block.Opcode, block.Handler))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed for extension '%s':\n- %s", ext.ID, strings.Join(errs, "\n- "))
	}

	return nil
}
