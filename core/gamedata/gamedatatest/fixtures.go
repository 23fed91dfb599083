// Package gamedatatest provides host and mod database fixtures for tests.
package gamedatatest

import (
	"path"

	"whitecore/core/gamedata"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
)

// Host template ids.
const (
	WeaponID    = "5447a9cd4bdc2dbd208b4567"
	MagazineID  = "55d4887d4bdc2d962f8b4570"
	AmmoID      = "54527a984bdc2d4e668b4567"
	GripID      = "55d4b9964bdc2d1d4e8b456e"
	HandguardID = "55d459824bdc2d892f8b4573"

	WeaponCategoryID   = "5b5f78e986f77447ed5636b1"
	MagazineCategoryID = "5b5f754a86f774094242f19b"
	GripCategoryID     = "5b5f761f86f774094242f1a1"

	TraderID = "668aaff35fd574b6dcc4a686"
	RoubleID = "5449016a4bdc2d6f028b456f"
)

// Mod item ids.
const (
	ModWeaponID   = "66a0f1c2e4b0c1a2b3c4d501"
	ModMagazineID = "66a0f1c2e4b0c1a2b3c4d502"
	ModDisabledID = "66a0f1c2e4b0c1a2b3c4d503"

	ModOfferID = "66a0f1c2e4b0c1a2b3c4d5a1"
)

// Slot builds a slot, chamber or cartridge entry whitelisting ids.
func Slot(name string, ids ...string) map[string]any {
	filter := make([]any, len(ids))
	for i, id := range ids {
		filter[i] = id
	}
	return map[string]any{
		"_name": name,
		"_id":   name + "_slot",
		"_props": map[string]any{
			"filters": []any{
				map[string]any{"Shift": float64(0), "Filter": filter},
			},
		},
		"_required": false,
	}
}

func template(id, name, parent string, props map[string]any) gamedata.Template {
	return gamedata.Template{
		"_id":     id,
		"_name":   name,
		"_parent": parent,
		"_type":   "Item",
		"_props":  props,
	}
}

// Templates returns a fresh set of host item templates.
func Templates() map[string]gamedata.Template {
	return map[string]gamedata.Template{
		WeaponID: template(WeaponID, "weapon_colt_m4a1_556x45", "5447b5f14bdc2d61278b4567", map[string]any{
			"Name":       "weapon_colt_m4a1_556x45",
			"Weight":     float64(2.9),
			"Ergonomics": float64(50),
			"Slots": []any{
				Slot("mod_magazine", MagazineID),
				Slot("mod_pistol_grip", GripID),
				Slot("mod_handguard", HandguardID),
			},
			"Chambers":         []any{Slot("patron_in_weapon", AmmoID)},
			"ConflictingItems": []any{},
		}),
		MagazineID: template(MagazineID, "mag_stanag_30", "5448bc234bdc2d3c308b4569", map[string]any{
			"Name":             "mag_stanag_30",
			"Weight":           float64(0.12),
			"Cartridges":       []any{Slot("cartridges", AmmoID)},
			"ConflictingItems": []any{HandguardID},
		}),
		AmmoID: template(AmmoID, "patron_556x45_M855", "5485a8684bdc2da71d8b4567", map[string]any{
			"Name":   "patron_556x45_M855",
			"Weight": float64(0.012),
		}),
		GripID: template(GripID, "pistolgrip_ar15_colt_a2", "55818a684bdc2ddd698b456d", map[string]any{
			"Name":             "pistolgrip_ar15_colt_a2",
			"Weight":           float64(0.07),
			"Ergonomics":       float64(6),
			"ConflictingItems": []any{},
		}),
		HandguardID: template(HandguardID, "handguard_ar15_colt_m4_carbine", "55818a104bdc2db9688b4569", map[string]any{
			"Name":             "handguard_ar15_colt_m4_carbine",
			"Weight":           float64(0.14),
			"Slots":            []any{Slot("mod_foregrip")},
			"ConflictingItems": []any{MagazineID},
		}),
	}
}

// Tables returns fresh host tables with two languages and one trader.
func Tables() *gamedata.Tables {
	return &gamedata.Tables{
		Templates: gamedata.Templates{
			Items: Templates(),
			Handbook: &gamedata.Handbook{
				Categories: []map[string]any{
					{"Id": WeaponCategoryID, "ParentId": nil, "Icon": "", "Color": "", "Order": "100"},
				},
				Items: []gamedata.HandbookEntry{
					{ID: WeaponID, ParentID: WeaponCategoryID, Price: 42000},
					{ID: MagazineID, ParentID: MagazineCategoryID, Price: 1200},
				},
			},
		},
		Locales: gamedata.Locales{
			Global: map[string]map[string]string{
				"en": {WeaponID + " Name": "Colt M4A1 5.56x45 assault rifle"},
				"ru": {WeaponID + " Name": "Штурмовая винтовка Colt M4A1 5.56x45"},
			},
		},
		Traders: map[string]*gamedata.Trader{
			TraderID: {
				Base: map[string]any{"_id": TraderID, "nickname": "Painter"},
				Assort: &gamedata.Assort{
					Items: []map[string]any{
						{"_id": "66a0f1c2e4b0c1a2b3c4d500", "_tpl": MagazineID, "parentId": "hideout", "slotId": "hideout"},
					},
					BarterScheme: map[string]any{
						"66a0f1c2e4b0c1a2b3c4d500": []any{[]any{map[string]any{"count": float64(1500), "_tpl": RoubleID}}},
					},
					LoyalLevelItems: map[string]any{"66a0f1c2e4b0c1a2b3c4d500": float64(1)},
					Extra:           map[string]any{"nextResupply": float64(0)},
				},
			},
		},
	}
}

// HostFiles returns the host database as it lies on disk.
func HostFiles() map[string][]byte {
	tables := Tables()
	files := map[string][]byte{
		"templates/items.json":    mustJSON(tables.Templates.Items),
		"templates/handbook.json": mustJSON(tables.Templates.Handbook),
		"globals.json":            mustJSON(map[string]any{"config": map[string]any{"Mastering": []any{}}}),
	}
	for lang, strs := range tables.Locales.Global {
		files["locales/global/"+lang+".json"] = mustJSON(strs)
	}
	for id, trader := range tables.Traders {
		files["traders/"+id+"/base.json"] = mustJSON(trader.Base)
		files["traders/"+id+"/assort.json"] = mustJSON(trader.Assort)
	}
	return files
}

// ModItems returns the mod item definitions keyed by new id.
func ModItems() map[string]any {
	return map[string]any{
		ModWeaponID: map[string]any{
			"clone":  WeaponID,
			"enable": true,
			"items": map[string]any{
				"_name": "weapon_whitecore_m4a1",
				"_props": map[string]any{
					"Weight":     float64(2.6),
					"Ergonomics": float64(58),
				},
			},
			"wcCompatibilities": map[string]any{
				"mod_magazine": []any{ModMagazineID},
			},
			"handbook": map[string]any{"ParentId": WeaponCategoryID, "Price": float64(56000)},
			"locales": map[string]any{
				"Name":        "White Core M4A1",
				"Shortname":   "WC M4A1",
				"Description": "A Colt M4A1 in arctic white.",
			},
		},
		ModMagazineID: map[string]any{
			"clone":  MagazineID,
			"enable": true,
			"items": map[string]any{
				"_props": map[string]any{"Weight": float64(0.11)},
			},
			"wcConflicts": []any{GripID},
			"handbook":    map[string]any{"ParentId": MagazineCategoryID, "Price": float64(1800)},
			"locales": map[string]any{
				"Name":        "White Core STANAG",
				"Shortname":   "WC STANAG",
				"Description": "A 30-round STANAG in arctic white.",
			},
		},
		ModDisabledID: map[string]any{
			"clone":    GripID,
			"enable":   false,
			"handbook": map[string]any{"ParentId": GripCategoryID, "Price": float64(900)},
			"locales": map[string]any{
				"Name":        "White Core A2 grip",
				"Shortname":   "WC A2",
				"Description": "Not released yet.",
			},
		},
	}
}

// ModAssort returns the mod assort for TraderID.
func ModAssort() map[string]any {
	return map[string]any{
		"items": []any{
			map[string]any{
				"_id":      ModOfferID,
				"_tpl":     ModWeaponID,
				"parentId": "hideout",
				"slotId":   "hideout",
				"upd":      map[string]any{"UnlimitedCount": true, "StackObjectsCount": float64(999999)},
			},
		},
		"barter_scheme": map[string]any{
			ModOfferID: []any{[]any{map[string]any{"count": float64(56000), "_tpl": RoubleID}}},
		},
		"loyal_level_items": map[string]any{ModOfferID: float64(2)},
	}
}

// ModTree returns the mod database as the importer loads it.
func ModTree() map[string]any {
	return map[string]any{
		"items": ModItems(),
		"traders": map[string]any{
			TraderID: map[string]any{"assort": ModAssort()},
		},
	}
}

// ModFiles returns the mod database as it lies on disk.
func ModFiles() map[string][]byte {
	return map[string][]byte{
		"items.json":                           mustJSON(ModItems()),
		"traders/" + TraderID + "/assort.json": mustJSON(ModAssort()),
	}
}

// WriteFiles stores files under root in fs.
func WriteFiles(fs afero.Fs, root string, files map[string][]byte) error {
	for name, data := range files {
		target := path.Join(root, name)
		if err := fs.MkdirAll(path.Dir(target), 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(fs, target, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
