package items_test

import (
	"testing"

	"whitecore/core/gamedata"
	"whitecore/core/gamedata/gamedatatest"
	"whitecore/feature/items"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modIDs(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestPropagateCompatibility(t *testing.T) {
	tables := gamedatatest.Tables()

	stats := items.PropagateCompatibility(tables, gamedatatest.MagazineID, gamedatatest.ModMagazineID, modIDs(gamedatatest.ModMagazineID))
	assert.Equal(t, items.Propagation{Filters: 1, Conflicts: 1}, stats)

	weapon, _ := tables.Template(gamedatatest.WeaponID)
	assert.Equal(t, []any{gamedatatest.MagazineID, gamedatatest.ModMagazineID}, slotFilter(t, weapon, "Slots", "mod_magazine"))
	// Other slots keep their filters.
	assert.Equal(t, []any{gamedatatest.GripID}, slotFilter(t, weapon, "Slots", "mod_pistol_grip"))

	handguard, _ := tables.Template(gamedatatest.HandguardID)
	props, _ := handguard.Props()
	assert.Equal(t, []any{gamedatatest.MagazineID, gamedatatest.ModMagazineID}, props["ConflictingItems"])
}

func TestPropagateCompatibility_ChambersAndCartridges(t *testing.T) {
	tables := gamedatatest.Tables()
	newAmmo := "66a0f1c2e4b0c1a2b3c4d507"

	stats := items.PropagateCompatibility(tables, gamedatatest.AmmoID, newAmmo, modIDs(newAmmo))
	assert.Equal(t, 2, stats.Filters)
	assert.Equal(t, 0, stats.Conflicts)

	weapon, _ := tables.Template(gamedatatest.WeaponID)
	assert.Equal(t, []any{gamedatatest.AmmoID, newAmmo}, slotFilter(t, weapon, "Chambers", "patron_in_weapon"))

	magazine, _ := tables.Template(gamedatatest.MagazineID)
	assert.Equal(t, []any{gamedatatest.AmmoID, newAmmo}, slotFilter(t, magazine, "Cartridges", "cartridges"))
}

func TestPropagateCompatibility_OncePerOccurrence(t *testing.T) {
	tables := gamedatatest.Tables()
	weapon := tables.Templates.Items[gamedatatest.WeaponID]
	props, _ := weapon.Props()
	props["Slots"] = []any{gamedatatest.Slot("mod_magazine", gamedatatest.MagazineID, gamedatatest.MagazineID)}

	stats := items.PropagateCompatibility(tables, gamedatatest.MagazineID, gamedatatest.ModMagazineID, nil)
	assert.Equal(t, 2, stats.Filters)
	assert.Equal(t, []any{
		gamedatatest.MagazineID, gamedatatest.MagazineID,
		gamedatatest.ModMagazineID, gamedatatest.ModMagazineID,
	}, slotFilter(t, weapon, "Slots", "mod_magazine"))
}

func TestPropagateCompatibility_SkipsModItems(t *testing.T) {
	cloner, tables, _ := newCloner(t)
	defs := fixtureDefinitions(t)

	_, err := cloner.Clone(gamedatatest.ModWeaponID, defs[gamedatatest.ModWeaponID])
	require.NoError(t, err)

	mod := modIDs(gamedatatest.ModWeaponID, gamedatatest.ModMagazineID, gamedatatest.ModDisabledID)
	stats := items.PropagateCompatibility(tables, gamedatatest.MagazineID, gamedatatest.ModMagazineID, mod)
	assert.Equal(t, 1, stats.Filters)

	// The clone already whitelists the new magazine and is not touched again.
	clone, _ := tables.Template(gamedatatest.ModWeaponID)
	assert.Equal(t, []any{gamedatatest.MagazineID, gamedatatest.ModMagazineID}, slotFilter(t, clone, "Slots", "mod_magazine"))
}

func TestPropagateCompatibility_NoReference(t *testing.T) {
	tables := gamedatatest.Tables()
	want := gamedatatest.Templates()

	stats := items.PropagateCompatibility(tables, "000000000000000000000000", gamedatatest.ModWeaponID, nil)
	assert.Equal(t, items.Propagation{}, stats)

	if diff := cmp.Diff(want, tables.Templates.Items); diff != "" {
		t.Fatalf("templates mutated (-want +got):\n%s", diff)
	}
}

func TestPropagateCompatibility_TemplateWithoutProps(t *testing.T) {
	tables := gamedatatest.Tables()
	tables.Templates.Items["bare"] = gamedata.Template{"_id": "bare"}

	assert.NotPanics(t, func() {
		items.PropagateCompatibility(tables, gamedatatest.MagazineID, gamedatatest.ModMagazineID, nil)
	})
}
