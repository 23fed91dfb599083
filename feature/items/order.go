package items

import "sort"

// CloneOrder orders defs so that a definition cloning another mod definition comes
// after its source. Ties are broken by id. Definitions on a clone cycle cannot be
// ordered and are returned in cyclic, sorted.
func CloneOrder(defs map[string]*Definition) (order, cyclic []string) {
	pending := make(map[string]int, len(defs))
	dependents := make(map[string][]string)
	for id, def := range defs {
		if def == nil {
			continue
		}
		if _, ok := defs[def.Clone]; ok {
			pending[id]++
			dependents[def.Clone] = append(dependents[def.Clone], id)
		}
	}

	var ready []string
	for id := range defs {
		if pending[id] == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order = make([]string, 0, len(defs))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, next := range dependents[id] {
			pending[next]--
			if pending[next] == 0 {
				ready = insertSorted(ready, next)
			}
		}
	}

	for id := range defs {
		if pending[id] > 0 {
			cyclic = append(cyclic, id)
		}
	}
	sort.Strings(cyclic)
	return order, cyclic
}

func insertSorted(ids []string, id string) []string {
	i := sort.SearchStrings(ids, id)
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
