package codegen

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// jsString renders s as a JavaScript string literal.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal cannot fail on a string.
		panic(err)
	}
	return string(b)
}

// jsStringList renders items as a JavaScript array literal of strings.
func jsStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// jsBool renders b as a JavaScript boolean literal.
func jsBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// defaultLiteral renders an argument default as a JavaScript literal
// matching its cty type.
func defaultLiteral(v cty.Value) (string, error) {
	if v.IsNull() {
		return "null", nil
	}
	switch v.Type() {
	case cty.String:
		return jsString(v.AsString()), nil
	case cty.Number:
		return v.AsBigFloat().Text('f', -1), nil
	case cty.Bool:
		return jsBool(v.True()), nil
	default:
		return "", fmt.Errorf("unsupported default value type %s", v.Type().FriendlyName())
	}
}
