package items_test

import (
	"errors"
	"testing"

	"whitecore/core/gamedata"
	"whitecore/core/gamedata/gamedatatest"
	"whitecore/core/tree"
	"whitecore/feature/items"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newCloner(t *testing.T) (*items.Cloner, *gamedata.Tables, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	tables := gamedatatest.Tables()
	return items.NewCloner(tables, zap.New(core)), tables, logs
}

func slotFilter(t *testing.T, tpl gamedata.Template, kind, name string) []any {
	t.Helper()
	props, ok := tpl.Props()
	require.True(t, ok)
	for _, entry := range props[kind].([]any) {
		slot := entry.(map[string]any)
		if slot["_name"] != name {
			continue
		}
		filters := slot["_props"].(map[string]any)["filters"].([]any)
		return filters[0].(map[string]any)["Filter"].([]any)
	}
	t.Fatalf("slot %s not found in %s", name, kind)
	return nil
}

func TestCloner_Clone(t *testing.T) {
	cloner, tables, _ := newCloner(t)
	defs := fixtureDefinitions(t)
	handbookBefore := len(tables.Templates.Handbook.Items)

	result, err := cloner.Clone(gamedatatest.ModWeaponID, defs[gamedatatest.ModWeaponID])
	require.NoError(t, err)
	assert.Equal(t, gamedatatest.ModWeaponID, result.ID)
	assert.Equal(t, gamedatatest.WeaponID, result.Source)
	assert.Equal(t, 1, result.Whitelisted)
	assert.Empty(t, result.Issues)

	clone, ok := tables.Template(gamedatatest.ModWeaponID)
	require.True(t, ok)
	assert.Equal(t, gamedatatest.ModWeaponID, clone.ID())
	assert.Equal(t, "weapon_whitecore_m4a1", clone["_name"])

	props, _ := clone.Props()
	assert.Equal(t, float64(2.6), props["Weight"])
	assert.Equal(t, float64(58), props["Ergonomics"])
	assert.Equal(t, "weapon_colt_m4a1_556x45", props["Name"])
	assert.Equal(t, []any{gamedatatest.MagazineID, gamedatatest.ModMagazineID}, slotFilter(t, clone, "Slots", "mod_magazine"))

	// The source template is untouched.
	source, _ := tables.Template(gamedatatest.WeaponID)
	sourceProps, _ := source.Props()
	assert.Equal(t, float64(2.9), sourceProps["Weight"])
	assert.Equal(t, []any{gamedatatest.MagazineID}, slotFilter(t, source, "Slots", "mod_magazine"))

	require.Len(t, tables.Templates.Handbook.Items, handbookBefore+1)
	assert.Equal(t, gamedata.HandbookEntry{
		ID:       gamedatatest.ModWeaponID,
		ParentID: gamedatatest.WeaponCategoryID,
		Price:    56000,
	}, tables.Templates.Handbook.Items[handbookBefore])
}

func TestCloner_Clone_Conflicts(t *testing.T) {
	cloner, tables, _ := newCloner(t)
	defs := fixtureDefinitions(t)

	result, err := cloner.Clone(gamedatatest.ModMagazineID, defs[gamedatatest.ModMagazineID])
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)

	clone, _ := tables.Template(gamedatatest.ModMagazineID)
	props, _ := clone.Props()
	assert.Equal(t, []any{gamedatatest.HandguardID, gamedatatest.GripID}, props["ConflictingItems"])

	t.Run("CreatesMissingList", func(t *testing.T) {
		def := &items.Definition{
			Clone:     gamedatatest.AmmoID,
			Enable:    true,
			Conflicts: []string{gamedatatest.GripID},
			Handbook:  items.Handbook{ParentID: "ammo", Price: 10},
			Locales:   &items.Locales{Name: "WC M855"},
		}
		_, err := cloner.Clone("66a0f1c2e4b0c1a2b3c4d504", def)
		require.NoError(t, err)

		ammo, _ := tables.Template("66a0f1c2e4b0c1a2b3c4d504")
		ammoProps, _ := ammo.Props()
		assert.Equal(t, []any{gamedatatest.GripID}, ammoProps["ConflictingItems"])

		source, _ := tables.Template(gamedatatest.AmmoID)
		sourceProps, _ := source.Props()
		assert.NotContains(t, sourceProps, "ConflictingItems")
	})
}

func TestCloner_Clone_Disabled(t *testing.T) {
	cloner, tables, _ := newCloner(t)
	defs := fixtureDefinitions(t)
	want := gamedatatest.Tables()

	_, err := cloner.Clone(gamedatatest.ModDisabledID, defs[gamedatatest.ModDisabledID])
	assert.ErrorIs(t, err, items.ErrDisabled)

	_, exists := tables.Template(gamedatatest.ModDisabledID)
	assert.False(t, exists)
	assert.Equal(t, want.Templates.Handbook.Items, tables.Templates.Handbook.Items)
}

func TestCloner_Clone_MissingTemplate(t *testing.T) {
	cloner, tables, logs := newCloner(t)
	want := gamedatatest.Tables()

	def := &items.Definition{Clone: "000000000000000000000000", Enable: true}
	_, err := cloner.Clone(gamedatatest.ModWeaponID, def)
	assert.True(t, errors.Is(err, items.ErrTemplateNotFound))

	if diff := cmp.Diff(want.Templates.Items, tables.Templates.Items); diff != "" {
		t.Fatalf("templates mutated (-want +got):\n%s", diff)
	}
	assert.Equal(t, want.Templates.Handbook.Items, tables.Templates.Handbook.Items)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "Template item 000000000000000000000000 not found", errs[0].Message)
}

func TestCloner_Clone_InvalidArgs(t *testing.T) {
	cloner, _, logs := newCloner(t)

	_, err := cloner.Clone("", &items.Definition{Clone: gamedatatest.GripID, Enable: true})
	assert.ErrorIs(t, err, items.ErrInvalidArgs)

	_, err = cloner.Clone(gamedatatest.ModWeaponID, &items.Definition{Enable: true})
	assert.ErrorIs(t, err, items.ErrInvalidArgs)

	_, err = cloner.Clone(gamedatatest.ModWeaponID, nil)
	assert.ErrorIs(t, err, items.ErrInvalidArgs)

	assert.Equal(t, 3, logs.FilterMessage("Invalid parameters passed to cloneItem").Len())
}

func TestCloner_Clone_IDCollision(t *testing.T) {
	cloner, tables, _ := newCloner(t)
	defs := fixtureDefinitions(t)
	want := gamedatatest.Tables()

	_, err := cloner.Clone(gamedatatest.GripID, defs[gamedatatest.ModWeaponID])
	assert.ErrorIs(t, err, items.ErrIDCollision)

	grip, _ := tables.Template(gamedatatest.GripID)
	assert.Equal(t, want.Templates.Items[gamedatatest.GripID], grip)
}

func TestCloner_Clone_Validation(t *testing.T) {
	cloner, _, _ := newCloner(t)

	def := &items.Definition{
		Clone:    gamedatatest.GripID,
		Enable:   true,
		Handbook: items.Handbook{Price: -1},
	}
	_, err := cloner.Clone("66a0f1c2e4b0c1a2b3c4d505", def)
	require.ErrorIs(t, err, items.ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "Handbook.ParentID is required")
	assert.Contains(t, err.Error(), "Handbook.Price must be at least 0")
	assert.Contains(t, err.Error(), "Locales is required")
}

func TestCloner_Clone_MergeIssues(t *testing.T) {
	cloner, tables, logs := newCloner(t)

	def := &items.Definition{
		Clone:  gamedatatest.GripID,
		Enable: true,
		Overrides: map[string]any{
			"_props": map[string]any{
				"Ergonomics": float64(9),
				"Recoil":     float64(-2),
			},
		},
		Compatibilities: map[string][]string{"mod_scope": {gamedatatest.HandguardID}},
		Handbook:        items.Handbook{ParentID: gamedatatest.GripCategoryID, Price: 100},
		Locales:         &items.Locales{Name: "WC grip"},
	}

	result, err := cloner.Clone("66a0f1c2e4b0c1a2b3c4d506", def)
	require.NoError(t, err)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, tree.IssueMissingKey, result.Issues[0].Kind)
	assert.Equal(t, "_props.Recoil", result.Issues[0].Path)
	assert.Equal(t, "_props.Slots.mod_scope", result.Issues[1].Path)

	clone, _ := tables.Template("66a0f1c2e4b0c1a2b3c4d506")
	props, _ := clone.Props()
	assert.Equal(t, float64(9), props["Ergonomics"])
	assert.NotContains(t, props, "Recoil")

	assert.Equal(t, 1, logs.FilterMessage(`Error finding the attribute: "Recoil", default value is used instead.`).Len())
}

func TestCloner_Clone_SlotWithoutFilter(t *testing.T) {
	cloner, tables, logs := newCloner(t)
	handguard, _ := tables.Templates.Items[gamedatatest.HandguardID].Props()
	handguard["Slots"] = []any{
		map[string]any{"_name": "mod_foregrip", "_id": "mod_foregrip_slot", "_props": map[string]any{}},
	}

	def := &items.Definition{
		Clone:           gamedatatest.HandguardID,
		Enable:          true,
		Compatibilities: map[string][]string{"mod_foregrip": {gamedatatest.GripID}},
		Handbook:        items.Handbook{ParentID: gamedatatest.GripCategoryID, Price: 100},
		Locales:         &items.Locales{Name: "WC handguard"},
	}

	result, err := cloner.Clone("66a0f1c2e4b0c1a2b3c4d507", def)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Whitelisted)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, tree.IssueMissingKey, result.Issues[0].Kind)
	assert.Equal(t, "_props.Slots.mod_foregrip._props.filters", result.Issues[0].Path)

	assert.Equal(t, 1, logs.FilterMessage(`Slot "mod_foregrip" has no filter, compatibilities not added.`).Len())
	assert.Equal(t, 0, logs.FilterMessageSnippet("Error finding the slot").Len())
}
