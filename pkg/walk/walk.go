// Package walk applies cast.Coerce to every scalar inside nested containers
// while keeping the shape of the input.
//
// Slices and arrays come back as []any, maps as map[K]any with the original key
// type. Nested containers are processed recursively unless the
// cast.DisallowRecursive flag is set, in which case they are copied through
// untouched:
//
//	in := []any{"1.34", "221", []any{"123.234"}}
//	walk.Map(in, cast.Options{})
//	// []any{1.34, int64(221), []any{123.234}}
//
//	walk.Map(in, cast.Options{Flags: cast.DisallowRecursive})
//	// []any{1.34, int64(221), []any{"123.234"}}
package walk

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/pseudomuto/numcast/pkg/cast"
)

// Visitor is called for every scalar that was passed to cast.Coerce. path
// holds the keys (map keys or slice indexes) leading to the value.
type Visitor func(path []string, in any, res cast.Result)

// Map coerces every scalar in container. A scalar container is coerced
// directly.
func Map(container any, opts cast.Options, visitors ...Visitor) any {
	w := walker{opts: opts, visitors: visitors}
	return w.walk(nil, container, true)
}

// Seq2 lazily coerces the values of seq, recursing into container values the
// same way Map does.
func Seq2[K any](seq iter.Seq2[K, any], opts cast.Options, visitors ...Visitor) iter.Seq2[K, any] {
	w := walker{opts: opts, visitors: visitors}
	return func(yield func(K, any) bool) {
		for k, v := range seq {
			if !yield(k, w.walk([]string{fmt.Sprint(k)}, v, false)) {
				return
			}
		}
	}
}

type walker struct {
	opts     cast.Options
	visitors []Visitor
}

func (w walker) walk(path []string, value any, top bool) any {
	rv, ok := container(value)
	if !ok {
		return w.leaf(path, value)
	}

	if !top && w.opts.Flags.Has(cast.DisallowRecursive) {
		return value
	}

	if rv.Kind() == reflect.Map {
		return w.walkMap(path, rv)
	}
	return w.walkSlice(path, rv)
}

func (w walker) walkSlice(path []string, rv reflect.Value) any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = w.walk(appendPath(path, fmt.Sprint(i)), rv.Index(i).Interface(), false)
	}
	return out
}

func (w walker) walkMap(path []string, rv reflect.Value) any {
	out := reflect.MakeMapWithSize(reflect.MapOf(rv.Type().Key(), anyType), rv.Len())
	it := rv.MapRange()
	for it.Next() {
		key := it.Key()
		v := w.walk(appendPath(path, fmt.Sprint(key.Interface())), it.Value().Interface(), false)

		val := reflect.New(anyType).Elem()
		if v != nil {
			val.Set(reflect.ValueOf(v))
		}
		out.SetMapIndex(key, val)
	}
	return out.Interface()
}

func (w walker) leaf(path []string, value any) any {
	res := cast.Coerce(value, w.opts)
	for _, visit := range w.visitors {
		visit(path, value, res)
	}
	return res.Value()
}

var anyType = reflect.TypeFor[any]()

// container reports whether value is a slice, array or map. Byte slices are
// text, not containers.
func container(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	if _, ok := value.([]byte); ok {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv, true
	}
	return reflect.Value{}, false
}

func appendPath(path []string, key string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, key)
}
