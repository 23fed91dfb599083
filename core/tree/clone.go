package tree

// Clone returns a deep copy of v. Trees and lists are copied recursively;
// primitives are immutable and returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneTree(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Clone(item)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = CloneTree(item)
		}
		return out
	}

	switch KindOf(v) {
	case KindTree:
		m, _ := AsTree(v)
		return CloneTree(m)
	case KindArray:
		l, _ := AsList(v)
		return Clone(l)
	}
	return v
}

// CloneTree deep-copies a tree. A nil tree clones to nil.
func CloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}
