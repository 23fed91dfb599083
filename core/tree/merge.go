package tree

import (
	"fmt"
	"sort"
)

// IssueKind identifies why part of an override could not be applied cleanly.
type IssueKind string

const (
	// IssueMissingKey means the override names a key the original does not have.
	// The original is left untouched at that key.
	IssueMissingKey IssueKind = "missing_key"
	// IssueKindMismatch means a sub-tree override targets a value that is not a tree.
	// The override is skipped.
	IssueKindMismatch IssueKind = "kind_mismatch"
	// IssueLeafTypeChanged means a leaf was replaced by a value of another JSON type.
	// The override is applied.
	IssueLeafTypeChanged IssueKind = "leaf_type_changed"
	// IssueNullOverride means the override value was null and was ignored.
	IssueNullOverride IssueKind = "null_override"
)

// Issue describes one problem found while merging.
type Issue struct {
	Path    string    `json:"path"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// Applied reports whether the override at Path was still written.
func (i Issue) Applied() bool {
	return i.Kind == IssueLeafTypeChanged
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Merge writes the leaves of override into original and returns original.
//
// Primitive and array values replace the value at the same key when the key exists.
// Tree values recurse into the matching sub-tree; an absent sub-tree is treated as
// empty, so its leaves are reported as missing and nothing is created. Keys are
// visited in sorted order so issues come back deterministically.
func Merge(original, override map[string]any) (map[string]any, []Issue) {
	var issues []Issue
	mergeInto(original, override, "", &issues)
	return original, issues
}

func mergeInto(original, override map[string]any, prefix string, issues *[]Issue) {
	for _, key := range sortedKeys(override) {
		value := override[key]
		path := joinPath(prefix, key)

		switch KindOf(value) {
		case KindNull:
			*issues = append(*issues, Issue{
				Path:    path,
				Kind:    IssueNullOverride,
				Message: fmt.Sprintf("null override for attribute %q ignored", key),
			})

		case KindPrimitive, KindArray:
			current, ok := original[key]
			if !ok {
				*issues = append(*issues, Issue{
					Path:    path,
					Kind:    IssueMissingKey,
					Message: fmt.Sprintf("Error finding the attribute: %q, default value is used instead.", key),
				})
				continue
			}
			if current != nil && leafType(current) != leafType(value) {
				*issues = append(*issues, Issue{
					Path:    path,
					Kind:    IssueLeafTypeChanged,
					Message: fmt.Sprintf("attribute %q changed type from %s to %s", key, leafType(current), leafType(value)),
				})
			}
			original[key] = Clone(value)

		case KindTree:
			sub, _ := AsTree(value)
			current, ok := original[key]
			if !ok {
				// Nothing below an absent sub-tree can match.
				mergeInto(nil, sub, path, issues)
				continue
			}
			currentTree, isTree := current.(map[string]any)
			if !isTree {
				*issues = append(*issues, Issue{
					Path:    path,
					Kind:    IssueKindMismatch,
					Message: fmt.Sprintf("attribute %q is a %s, cannot merge an object into it", key, leafType(current)),
				})
				continue
			}
			mergeInto(currentTree, sub, path, issues)
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
