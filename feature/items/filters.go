package items

import "whitecore/core/tree"

// slotKinds are the _props lists whose entries carry id filters.
var slotKinds = []string{"Slots", "Chambers", "Cartridges"}

// entries returns the entries of the _props list named key.
func entries(props map[string]any, key string) []any {
	list, _ := tree.AsList(props[key])
	return list
}

// firstFilter returns _props.filters[0] of a slot entry.
func firstFilter(entry any) (map[string]any, bool) {
	slot, ok := entry.(map[string]any)
	if !ok {
		return nil, false
	}
	props, ok := slot["_props"].(map[string]any)
	if !ok {
		return nil, false
	}
	filters, ok := tree.AsList(props["filters"])
	if !ok || len(filters) == 0 {
		return nil, false
	}
	filter, ok := filters[0].(map[string]any)
	return filter, ok
}

// slotName returns the _name of a slot entry.
func slotName(entry any) string {
	slot, ok := entry.(map[string]any)
	if !ok {
		return ""
	}
	name, _ := slot["_name"].(string)
	return name
}

// countID counts how often id appears in list.
func countID(list []any, id string) int {
	n := 0
	for _, v := range list {
		if s, ok := v.(string); ok && s == id {
			n++
		}
	}
	return n
}

// appendIDs appends ids to the list stored at m[key] and writes it back.
func appendIDs(m map[string]any, key string, ids ...string) {
	list, _ := tree.AsList(m[key])
	for _, id := range ids {
		list = append(list, id)
	}
	m[key] = list
}
