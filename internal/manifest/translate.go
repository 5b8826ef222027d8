// This file parses HCL type expressions from `arg` blocks (e.g. `string`,
// `number`) into their cty.Type equivalents.

package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/blockforge/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// argTypeFromExpr converts an argument's HCL type expression into a cty
// type. A nil expression returns cty.NilType, which tells the registry to
// infer the type from the handler signature or fall back to its default.
func argTypeFromExpr(ctx context.Context, expr hcl.Expression) (cty.Type, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return cty.NilType, nil
	}

	// Argument slots are scalar; only the primitive keywords are allowed.
	traversal, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok {
		return cty.NilType, fmt.Errorf("unsupported expression for argument type: %T", expr)
	}
	if len(traversal.Traversal) != 1 {
		return cty.NilType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
	}

	rootName := traversal.Traversal.RootName()
	logger.Debug("Parsing argument type keyword.", "keyword", rootName)
	switch rootName {
	case "string":
		return cty.String, nil
	case "number":
		return cty.Number, nil
	case "bool":
		return cty.Bool, nil
	default:
		return cty.NilType, fmt.Errorf("unknown argument type %q: must be string, number, or bool", rootName)
	}
}
