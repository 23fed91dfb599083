package gamedata_test

import (
	"context"
	"testing"

	"whitecore/core/gamedata"
	"whitecore/core/gamedata/gamedatatest"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadHost(t *testing.T) *gamedata.Tables {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, gamedatatest.WriteFiles(fs, "database", gamedatatest.HostFiles()))

	raw, err := gamedata.NewImporter(zap.NewNop()).LoadRecursive(context.Background(), gamedata.NewFSSource(fs), "database")
	require.NoError(t, err)

	tables, err := gamedata.Decode(raw)
	require.NoError(t, err)
	return tables
}

func TestDecode(t *testing.T) {
	tables := loadHost(t)
	want := gamedatatest.Tables()

	if diff := cmp.Diff(want.Templates.Items, tables.Templates.Items); diff != "" {
		t.Fatalf("templates mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want.Templates.Handbook.Items, tables.Templates.Handbook.Items)
	assert.Len(t, tables.Templates.Handbook.Categories, 1)
	assert.Equal(t, []string{"en", "ru"}, tables.Languages())

	trader := tables.Traders[gamedatatest.TraderID]
	require.NotNil(t, trader)
	require.NotNil(t, trader.Assort)
	assert.Len(t, trader.Assort.Items, 1)
	assert.Equal(t, float64(0), trader.Assort.Extra["nextResupply"])
	assert.Equal(t, "Painter", trader.Base["nickname"])
	assert.True(t, trader.Assort.HasItem("66a0f1c2e4b0c1a2b3c4d500"))
	assert.False(t, trader.Assort.HasItem(gamedatatest.ModOfferID))
}

func TestDecode_Normalizes(t *testing.T) {
	tables, err := gamedata.Decode(map[string]any{})
	require.NoError(t, err)

	assert.NotNil(t, tables.Templates.Items)
	assert.NotNil(t, tables.Templates.Handbook)
	assert.NotNil(t, tables.Locales.Global)
	assert.NotNil(t, tables.Traders)
	assert.Empty(t, tables.Languages())
}

func TestDecode_WeakScalars(t *testing.T) {
	tables, err := gamedata.Decode(map[string]any{
		"templates": map[string]any{
			"handbook": map[string]any{
				"Items": []any{map[string]any{"Id": "a", "ParentId": "b", "Price": "150"}},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(150), tables.Templates.Handbook.Items[0].Price)
}

func TestTemplate_Accessors(t *testing.T) {
	tables := gamedatatest.Tables()

	tpl, ok := tables.Template(gamedatatest.WeaponID)
	require.True(t, ok)
	assert.Equal(t, gamedatatest.WeaponID, tpl.ID())

	props, ok := tpl.Props()
	require.True(t, ok)
	assert.Equal(t, float64(50), props["Ergonomics"])

	_, ok = tables.Template("missing")
	assert.False(t, ok)

	assert.Len(t, tables.HandbookEntries(gamedatatest.WeaponID), 1)
	assert.Empty(t, tables.HandbookEntries(gamedatatest.GripID))
}
