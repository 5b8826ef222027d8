package registry

import (
	"context"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

var ctxInterface = reflect.TypeOf((*context.Context)(nil)).Elem()

// handlerParams returns the block-argument parameters of a handler function
// type. A leading context.Context parameter belongs to the bridge, not to
// the block, and is not counted.
func handlerParams(fn reflect.Type) []reflect.Type {
	params := make([]reflect.Type, 0, fn.NumIn())
	for i := 0; i < fn.NumIn(); i++ {
		if i == 0 && fn.In(i).Implements(ctxInterface) {
			continue
		}
		params = append(params, fn.In(i))
	}
	return params
}

// inferArgType implies a cty type from a handler parameter's Go type. The
// boolean value is false when no type can be implied, in which case the
// registry's default applies.
func inferArgType(t reflect.Type) (cty.Type, bool) {
	if t == nil || t.Kind() == reflect.Interface {
		return cty.NilType, false
	}
	implied, err := gocty.ImpliedType(reflect.Zero(t).Interface())
	if err != nil {
		return cty.NilType, false
	}
	return implied, true
}
