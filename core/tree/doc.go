// Package tree handles schema-less attribute trees decoded from game data files.
//
// Item templates and the override trees authored by mods are loose JSON objects.
// Instead of type-switching on every access, values are classified into a small
// tagged union:
//
//   - KindPrimitive: booleans, strings and numbers
//   - KindArray: lists of any value
//   - KindTree: objects keyed by string
//   - KindNull: an explicit null
//
// # Merge
//
// Merge walks an override tree key by key and writes primitive and array leaves into
// the original tree. Keys missing from the original are never created; they are
// returned as issues so callers can log them and keep going. Sub-trees are merged
// recursively and never replaced wholesale.
//
//	merged, issues := tree.Merge(template, overrides)
//	for _, issue := range issues {
//	    logger.Error(issue.Message, zap.String("path", issue.Path))
//	}
//
// # Clone
//
// Clone deep-copies a value so that a template can be used as the base of a new item
// without aliasing nested maps or slices.
package tree
