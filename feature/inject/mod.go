package inject

import (
	"errors"
	"fmt"

	"whitecore/core/gamedata"
	"whitecore/feature/items"
)

// ErrMissingDatabase is returned when the host or the mod database cannot be loaded.
var ErrMissingDatabase = errors.New("failed to load required databases")

// ModDatabase is the decoded mod database.
type ModDatabase struct {
	Items   map[string]*items.Definition
	Traders map[string]*gamedata.Trader
	// DecodeErrors holds the items whose definitions could not be decoded.
	DecodeErrors map[string]error
}

// IDs returns every item id the mod declares, decodable or not.
func (m *ModDatabase) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(m.Items)+len(m.DecodeErrors))
	for id := range m.Items {
		ids[id] = struct{}{}
	}
	for id := range m.DecodeErrors {
		ids[id] = struct{}{}
	}
	return ids
}

// DecodeMod decodes a mod tree loaded by the importer.
func DecodeMod(raw map[string]any) (*ModDatabase, error) {
	mod := &ModDatabase{
		Items:        map[string]*items.Definition{},
		Traders:      map[string]*gamedata.Trader{},
		DecodeErrors: map[string]error{},
	}

	if rawItems, ok := raw["items"]; ok {
		tree, ok := rawItems.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("mod items must be an object, got %T", rawItems)
		}
		mod.Items, mod.DecodeErrors = items.DecodeDefinitions(tree)
	}

	if rawTraders, ok := raw["traders"]; ok {
		if err := gamedata.DecodeInto(rawTraders, &mod.Traders); err != nil {
			return nil, fmt.Errorf("failed to decode mod traders: %w", err)
		}
	}

	return mod, nil
}
