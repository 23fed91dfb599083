package tree

import "reflect"

// Kind classifies a decoded value.
type Kind int

const (
	KindNull Kind = iota
	KindPrimitive
	KindArray
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of v. Typed slices and string-keyed maps produced by
// YAML decoding or by callers are classified the same as their generic forms.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindTree
	case []any:
		return KindArray
	case bool, string, float64, float32, int, int64, int32, uint, uint64, uint32:
		return KindPrimitive
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindTree
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
	}
	return KindPrimitive
}

// AsTree returns v as a generic tree when it is one.
func AsTree(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// AsList returns v as a generic list when it is one.
func AsList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// leafType distinguishes primitives of different JSON types.
func leafType(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case nil:
		return "null"
	}
	switch KindOf(v) {
	case KindArray:
		return "array"
	case KindTree:
		return "object"
	}
	return "number"
}
