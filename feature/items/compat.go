package items

import (
	"whitecore/core/gamedata"
	"whitecore/core/tree"
)

// Propagation counts the host lists touched by PropagateCompatibility.
type Propagation struct {
	// Filters counts ids appended to slot, chamber and cartridge filters.
	Filters int `json:"filters"`
	// Conflicts counts ids appended to ConflictingItems lists.
	Conflicts int `json:"conflicts"`
}

// PropagateCompatibility appends newID wherever a host template references sourceID in
// a slot, chamber or cartridge filter or in ConflictingItems. One id is appended per
// occurrence. Templates whose id is in modIDs are left alone.
func PropagateCompatibility(tables *gamedata.Tables, sourceID, newID string, modIDs map[string]struct{}) Propagation {
	var stats Propagation

	for id, tpl := range tables.Templates.Items {
		if _, isMod := modIDs[id]; isMod {
			continue
		}
		props, ok := tpl.Props()
		if !ok {
			continue
		}

		for _, kind := range slotKinds {
			for _, entry := range entries(props, kind) {
				filter, ok := firstFilter(entry)
				if !ok {
					continue
				}
				list, _ := tree.AsList(filter["Filter"])
				if n := countID(list, sourceID); n > 0 {
					appendIDs(filter, "Filter", repeat(newID, n)...)
					stats.Filters += n
				}
			}
		}

		conflicts := entries(props, "ConflictingItems")
		if n := countID(conflicts, sourceID); n > 0 {
			appendIDs(props, "ConflictingItems", repeat(newID, n)...)
			stats.Conflicts += n
		}
	}

	return stats
}

func repeat(id string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = id
	}
	return out
}
