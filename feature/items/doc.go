// Package items clones host item templates into mod items and rewires their relationships.
//
// # Cloning
//
// Cloner.Clone deep-copies the template named by a definition's "clone" field, assigns
// the new id, merges the definition's attribute overrides with tree.Merge, whitelists the
// definition's compatible ids into its own slots, appends its conflicts and registers the
// item and its handbook entry.
//
// # Propagation
//
// PropagateCompatibility makes every host item that accepts the source template in a
// slot, chamber or cartridge filter accept the clone too, and every host item that
// conflicts with the source conflict with the clone.
//
// # Locales
//
// PatchLocales writes "<id> Name", "<id> ShortName" and "<id> Description" into every
// loaded language.
package items
